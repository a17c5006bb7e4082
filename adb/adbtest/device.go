package adbtest

import (
	"context"
	"encoding/base64"
	"regexp"
	"strings"
	"sync"

	"github.com/viant/android-mcp/adb"
)

var writeCommand = regexp.MustCompile(`^echo '([A-Za-z0-9+/=]*)' \| base64 -d > '(.*)'$`)

// Device emulates the on-device shell for file operations on top of a scripted Runner.
//
// It understands base64 writes (optionally wrapped in "su -c"), "cat" and "rm -f";
// every other invocation is delegated to the embedded Runner.
type Device struct {
	*Runner
	mux   sync.Mutex
	files map[string][]byte
}

// File returns stored file content
func (d *Device) File(path string) ([]byte, bool) {
	d.mux.Lock()
	defer d.mux.Unlock()
	data, ok := d.files[path]
	return data, ok
}

// Run interprets file commands or delegates to the Runner
func (d *Device) Run(ctx context.Context, path string, args []string) (*adb.Result, error) {
	if result, ok := d.interpret(args); ok {
		_, _ = d.Runner.Run(ctx, path, args)
		return result, nil
	}
	return d.Runner.Run(ctx, path, args)
}

func (d *Device) interpret(args []string) (*adb.Result, bool) {
	if len(args) >= 2 && args[0] == "-s" {
		args = args[2:]
	}
	if len(args) < 2 || args[0] != "shell" {
		return nil, false
	}
	d.mux.Lock()
	defer d.mux.Unlock()
	switch {
	case len(args) == 2:
		command := args[1]
		if inner, ok := strings.CutPrefix(command, "su -c "); ok {
			command = Unquote(inner)
		}
		match := writeCommand.FindStringSubmatch(command)
		if match == nil {
			return nil, false
		}
		data, err := base64.StdEncoding.DecodeString(match[1])
		if err != nil {
			return Exit(1, "base64: invalid input"), true
		}
		d.files[unescape(match[2])] = data
		return &adb.Result{}, true
	case len(args) == 3 && args[1] == "cat":
		data, ok := d.files[Unquote(args[2])]
		if !ok {
			return Exit(1, "cat: No such file or directory"), true
		}
		return Binary(append([]byte(nil), data...)), true
	case len(args) == 4 && args[1] == "rm" && args[2] == "-f":
		delete(d.files, Unquote(args[3]))
		return &adb.Result{}, true
	}
	return nil, false
}

// Unquote reverses single quote shell quoting of a whole word
func Unquote(value string) string {
	if len(value) < 2 || !strings.HasPrefix(value, "'") || !strings.HasSuffix(value, "'") {
		return value
	}
	return unescape(value[1 : len(value)-1])
}

func unescape(value string) string {
	return strings.ReplaceAll(value, `'\''`, `'`)
}

// NewDevice creates a device emulator
func NewDevice() *Device {
	return &Device{Runner: New(), files: map[string][]byte{}}
}
