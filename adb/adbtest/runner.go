// Package adbtest provides scripted bridge runners for tests.
package adbtest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/viant/android-mcp/adb"
)

// Reply produces the outcome of a scripted invocation
type Reply func(ctx context.Context, args []string) (*adb.Result, error)

// Call represents a recorded invocation
type Call struct {
	Path    string
	Args    []string
	Command string
}

type rule struct {
	command string
	reply   Reply
}

// Runner is a scripted adb.Runner recording every invocation.
//
// Rules match the invocation command (arguments joined by space, "-s <serial>"
// excluded) by prefix; the longest matching prefix wins. Unmatched invocations exit
// with status 0 and empty output.
type Runner struct {
	mux   sync.Mutex
	rules []*rule
	calls []*Call
}

// On replies with result to commands starting with command
func (r *Runner) On(command string, result *adb.Result) *Runner {
	return r.OnFunc(command, func(ctx context.Context, args []string) (*adb.Result, error) {
		return clone(result), nil
	})
}

// OnError fails commands starting with command
func (r *Runner) OnError(command string, err error) *Runner {
	return r.OnFunc(command, func(ctx context.Context, args []string) (*adb.Result, error) {
		return nil, err
	})
}

// OnFunc replies to commands starting with command using reply
func (r *Runner) OnFunc(command string, reply Reply) *Runner {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.rules = append(r.rules, &rule{command: command, reply: reply})
	sort.SliceStable(r.rules, func(i, j int) bool {
		return len(r.rules[i].command) > len(r.rules[j].command)
	})
	return r
}

// Run records the invocation and replies with the matching rule
func (r *Runner) Run(ctx context.Context, path string, args []string) (*adb.Result, error) {
	command := Command(args)
	r.mux.Lock()
	r.calls = append(r.calls, &Call{Path: path, Args: append([]string{}, args...), Command: command})
	var reply Reply
	for _, candidate := range r.rules {
		if strings.HasPrefix(command, candidate.command) {
			reply = candidate.reply
			break
		}
	}
	r.mux.Unlock()
	if reply == nil {
		return &adb.Result{}, nil
	}
	return reply(ctx, args)
}

// Calls returns recorded invocations
func (r *Runner) Calls() []*Call {
	r.mux.Lock()
	defer r.mux.Unlock()
	return append([]*Call{}, r.calls...)
}

// Commands returns recorded invocation commands
func (r *Runner) Commands() []string {
	var result []string
	for _, call := range r.Calls() {
		result = append(result, call.Command)
	}
	return result
}

// Invoked returns true if any recorded command starts with prefix
func (r *Runner) Invoked(prefix string) bool {
	for _, command := range r.Commands() {
		if strings.HasPrefix(command, prefix) {
			return true
		}
	}
	return false
}

// Command joins args, skipping the device selector
func Command(args []string) string {
	if len(args) >= 2 && args[0] == "-s" {
		args = args[2:]
	}
	return strings.Join(args, " ")
}

// Output returns a successful result with stdout
func Output(stdout string) *adb.Result {
	return &adb.Result{Stdout: []byte(stdout)}
}

// Binary returns a successful result with raw stdout
func Binary(data []byte) *adb.Result {
	return &adb.Result{Stdout: data}
}

// Exit returns a result with the exit code and stderr
func Exit(code int, stderr string) *adb.Result {
	return &adb.Result{ExitCode: code, Stderr: []byte(stderr)}
}

// New creates a runner
func New() *Runner {
	return &Runner{}
}

func clone(result *adb.Result) *adb.Result {
	if result == nil {
		return &adb.Result{}
	}
	return &adb.Result{
		ExitCode: result.ExitCode,
		Stdout:   append([]byte(nil), result.Stdout...),
		Stderr:   append([]byte(nil), result.Stderr...),
	}
}
