package adb

import (
	"context"
	"strconv"
)

// DefaultLogLines is the number of logcat lines fetched by default
const DefaultLogLines = 100

// Shell runs command in the device shell and returns the combined output.
// asRoot wraps the command in "su -c" with single quotes escaped.
func (c *Client) Shell(ctx context.Context, command string, asRoot bool) (bool, string, error) {
	if asRoot {
		command = "su -c " + quote(command)
	}
	result, err := c.shell(ctx, command)
	if err != nil {
		return false, "", err
	}
	return result.Succeeded(), result.Combined(), nil
}

// Logcat dumps the last lines of the log buffer, optionally filtered by tag; nil on failure
func (c *Client) Logcat(ctx context.Context, lines int, tag string) (*string, error) {
	if lines <= 0 {
		lines = DefaultLogLines
	}
	args := []string{"logcat", "-d", "-t", strconv.Itoa(lines)}
	if tag != "" {
		args = append(args, "-s", tag)
	}
	result, err := c.run(ctx, args...)
	if err != nil || !result.Succeeded() {
		return nil, err
	}
	output := result.Text()
	return &output, nil
}

// ClearLogcat clears the log buffer
func (c *Client) ClearLogcat(ctx context.Context) (bool, error) {
	return c.succeeded(ctx, "logcat", "-c")
}

// Prop returns a system property, nil on failure
func (c *Client) Prop(ctx context.Context, name string) (*string, error) {
	return c.shellText(ctx, "getprop", name)
}
