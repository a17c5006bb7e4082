package adb

import (
	"bytes"
	"strings"
)

// Result represents an invocation outcome
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Succeeded returns true when the bridge exited with status 0
func (r *Result) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// Text returns stdout as a string
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Stdout)
}

// Trimmed returns stdout without leading and trailing white space
func (r *Result) Trimmed() string {
	return strings.TrimSpace(r.Text())
}

// Combined returns stdout followed by stderr, trimmed
func (r *Result) Combined() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(string(r.Stdout) + string(r.Stderr))
}

// normalizeText converts CRLF line endings produced by older device shells
func normalizeText(data []byte) []byte {
	if !bytes.Contains(data, []byte("\r\n")) {
		return data
	}
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}
