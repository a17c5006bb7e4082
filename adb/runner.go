package adb

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Runner spawns a single bridge process and waits for it.
//
// Run returns a Result for any process that started, including non-zero exits.
// It returns an error only when the process could not be started or was
// interrupted by ctx.
type Runner interface {
	Run(ctx context.Context, path string, args []string) (*Result, error)
}

// waitDelay bounds the wait for output pipes held open by descendants of the bridge,
// e.g. a server daemon started on first use
const waitDelay = time.Second

type processRunner struct{}

// Run runs path with args, killing the process and its descendants when ctx is done
func (processRunner) Run(ctx context.Context, path string, args []string) (*Result, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	killGroupOnCancel(cmd)
	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if errors.Is(err, exec.ErrWaitDelay) {
		err = nil
	}
	result := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, err
	}
	return result, nil
}

// ProcessRunner returns the Runner backed by os/exec
func ProcessRunner() Runner {
	return processRunner{}
}
