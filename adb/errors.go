package adb

import (
	"fmt"
	"strings"
	"time"
)

// ExecutionError reports that the bridge tool could not be located or started.
type ExecutionError struct {
	Path string
	Args []string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to execute %v %v: %v", e.Path, strings.Join(e.Args, " "), e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// TimeoutError reports that the bridge process exceeded its budget and was killed.
type TimeoutError struct {
	Args    []string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("adb %v timed out after %v", strings.Join(e.Args, " "), e.Timeout)
}

// UnreachableError reports that the bridge ran but could not reach the target device.
type UnreachableError struct {
	Serial string
	Reason string
}

func (e *UnreachableError) Error() string {
	target := e.Serial
	if target == "" {
		target = "default device"
	}
	return fmt.Sprintf("device %v not found or unreachable: %v", target, e.Reason)
}

// unreachableMarkers are the diagnostics adb prints when the target cannot be used.
var unreachableMarkers = []string{
	"no devices/emulators found",
	"device offline",
	"device unauthorized",
	"more than one device/emulator",
	"not found",
}

func detectUnreachable(serial string, stderr []byte) *UnreachableError {
	text := strings.TrimSpace(string(stderr))
	if !strings.HasPrefix(text, "error:") && !strings.HasPrefix(text, "adb: error:") {
		return nil
	}
	lower := strings.ToLower(text)
	for _, marker := range unreachableMarkers {
		if !strings.Contains(lower, marker) {
			continue
		}
		if marker == "not found" && !strings.Contains(lower, "device") {
			continue
		}
		line := text
		if i := strings.IndexByte(line, '\n'); i != -1 {
			line = line[:i]
		}
		return &UnreachableError{Serial: serial, Reason: line}
	}
	return nil
}
