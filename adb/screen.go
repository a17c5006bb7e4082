package adb

import (
	"context"

	"github.com/viant/android-mcp/adb/parse"
	"go.uber.org/zap"
)

// UIDumpPath is the on-device location of the transient hierarchy dump
const UIDumpPath = "/sdcard/window_dump.xml"

// Screenshot captures the screen as PNG; nil when capture failed or produced no bytes
func (c *Client) Screenshot(ctx context.Context) ([]byte, error) {
	result, err := c.Execute(ctx, []string{"exec-out", "screencap", "-p"}, true, 0)
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() || len(result.Stdout) == 0 {
		return nil, nil
	}
	return result.Stdout, nil
}

// UIHierarchy dumps the view hierarchy as XML.
//
// The dump file is read and then removed; nothing is read or removed when the dump
// itself fails. Removal is best effort.
func (c *Client) UIHierarchy(ctx context.Context) (*string, error) {
	dumped, err := c.shellSucceeded(ctx, "uiautomator", "dump", UIDumpPath)
	if err != nil || !dumped {
		return nil, err
	}
	result, readErr := c.shell(ctx, "cat", UIDumpPath)
	if _, err = c.shell(ctx, "rm", UIDumpPath); err != nil {
		c.logger.Debug("failed to remove ui dump", zap.String("path", UIDumpPath), zap.Error(err))
	}
	if readErr != nil || !result.Succeeded() {
		return nil, readErr
	}
	content := result.Text()
	return &content, nil
}

// CurrentApp returns the focused application, nil when it cannot be determined
func (c *Client) CurrentApp(ctx context.Context) (*parse.App, error) {
	result, err := c.shell(ctx, "dumpsys", "window", "windows")
	if err != nil || !result.Succeeded() {
		return nil, err
	}
	app, ok := parse.FocusedApp(result.Text())
	if !ok {
		return nil, nil
	}
	return app, nil
}
