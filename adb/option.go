package adb

import (
	"time"

	"go.uber.org/zap"
)

// Option represents a client option
type Option func(c *Client)

// WithSerial scopes every invocation to the device with the given serial
func WithSerial(serial string) Option {
	return func(c *Client) {
		c.serial = serial
	}
}

// WithPath sets the bridge executable location
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithTimeout sets the default per invocation budget
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRunner replaces the process runner
func WithRunner(runner Runner) Option {
	return func(c *Client) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
