package adb

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/viant/android-mcp/internal/metrics"
	"go.uber.org/zap"
)

const (
	// DefaultPath is the bridge executable looked up on PATH
	DefaultPath = "adb"
	// DefaultTimeout is the budget applied to every invocation without an explicit one
	DefaultTimeout = 30 * time.Second
)

// Client represents a device command channel bound to one target device
type Client struct {
	serial  string
	path    string
	timeout time.Duration
	runner  Runner
	logger  *zap.Logger
}

// Serial returns the target device serial, empty for the default device
func (c *Client) Serial() string {
	return c.serial
}

// Timeout returns the default invocation budget
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Execute runs the bridge with args scoped to the target device.
//
// binary keeps stdout untouched; text mode normalizes line endings. A zero timeout
// applies the client default. A non-zero exit status is not an error: callers
// inspect the Result.
func (c *Client) Execute(ctx context.Context, args []string, binary bool, timeout time.Duration) (*Result, error) {
	if timeout <= 0 {
		timeout = c.timeout
	}
	var cmdArgs []string
	if c.serial != "" {
		cmdArgs = append(cmdArgs, "-s", c.serial)
	}
	cmdArgs = append(cmdArgs, args...)
	subcommand := ""
	if len(args) > 0 {
		subcommand = args[0]
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	started := time.Now()
	result, err := c.runner.Run(runCtx, c.path, cmdArgs)
	elapsed := time.Since(started)
	metrics.BridgeLatency.WithLabelValues(subcommand).Observe(elapsed.Seconds())

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			metrics.BridgeExecutions.WithLabelValues(subcommand, metrics.OutcomeTimeout).Inc()
			c.logger.Warn("adb invocation timed out", zap.Strings("args", cmdArgs), zap.Duration("timeout", timeout))
			return nil, &TimeoutError{Args: cmdArgs, Timeout: timeout}
		}
		metrics.BridgeExecutions.WithLabelValues(subcommand, metrics.OutcomeError).Inc()
		c.logger.Error("adb invocation failed to start", zap.Strings("args", cmdArgs), zap.Error(err))
		return nil, &ExecutionError{Path: c.path, Args: cmdArgs, Err: err}
	}
	if !binary {
		result.Stdout = normalizeText(result.Stdout)
	}
	if result.ExitCode != 0 {
		if unreachable := detectUnreachable(c.serial, result.Stderr); unreachable != nil {
			metrics.BridgeExecutions.WithLabelValues(subcommand, metrics.OutcomeUnreachable).Inc()
			return nil, unreachable
		}
		metrics.BridgeExecutions.WithLabelValues(subcommand, metrics.OutcomeNonZero).Inc()
	} else {
		metrics.BridgeExecutions.WithLabelValues(subcommand, metrics.OutcomeOK).Inc()
	}
	c.logger.Debug("adb invocation",
		zap.Strings("args", cmdArgs),
		zap.Int("exitCode", result.ExitCode),
		zap.Int("stdout", len(result.Stdout)),
		zap.Duration("elapsed", elapsed))
	return result, nil
}

// run executes a text invocation with the default budget
func (c *Client) run(ctx context.Context, args ...string) (*Result, error) {
	return c.Execute(ctx, args, false, 0)
}

// shell executes "adb shell args..." in text mode
func (c *Client) shell(ctx context.Context, args ...string) (*Result, error) {
	return c.run(ctx, append([]string{"shell"}, args...)...)
}

// succeeded runs args and reports exit status 0
func (c *Client) succeeded(ctx context.Context, args ...string) (bool, error) {
	result, err := c.run(ctx, args...)
	if err != nil {
		return false, err
	}
	return result.Succeeded(), nil
}

// shellSucceeded runs "adb shell args..." and reports exit status 0
func (c *Client) shellSucceeded(ctx context.Context, args ...string) (bool, error) {
	return c.succeeded(ctx, append([]string{"shell"}, args...)...)
}

// shellText runs "adb shell args..." and returns trimmed stdout, nil on non-zero exit
func (c *Client) shellText(ctx context.Context, args ...string) (*string, error) {
	result, err := c.shell(ctx, args...)
	if err != nil || !result.Succeeded() {
		return nil, err
	}
	text := result.Trimmed()
	return &text, nil
}

// New creates a client
func New(options ...Option) *Client {
	ret := &Client{
		path:    DefaultPath,
		timeout: DefaultTimeout,
		runner:  ProcessRunner(),
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

func quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
