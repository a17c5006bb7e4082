package adb

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/viant/android-mcp/adb/parse"
)

// DefaultDirectory is listed when no directory is given
const DefaultDirectory = "/sdcard"

// Push copies a host file to the device
func (c *Client) Push(ctx context.Context, localPath, devicePath string) (bool, error) {
	return c.succeeded(ctx, "push", localPath, devicePath)
}

// Pull copies a device file to the host
func (c *Client) Pull(ctx context.Context, devicePath, localPath string) (bool, error) {
	return c.succeeded(ctx, "pull", devicePath, localPath)
}

// ListFiles lists directory entries; listing failure yields an empty list
func (c *Client) ListFiles(ctx context.Context, directory string) ([]parse.File, error) {
	if directory == "" {
		directory = DefaultDirectory
	}
	result, err := c.shell(ctx, "ls", "-la", quote(directory))
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() {
		return []parse.File{}, nil
	}
	return parse.Files(result.Text()), nil
}

// FileExists reports whether path exists on the device
func (c *Client) FileExists(ctx context.Context, path string) (bool, error) {
	result, err := c.shell(ctx, "test", "-e", quote(path), "&&", "echo", "1")
	if err != nil {
		return false, err
	}
	return result.Succeeded() && strings.Contains(result.Text(), "1"), nil
}

// DeleteFile removes path
func (c *Client) DeleteFile(ctx context.Context, path string) (bool, error) {
	return c.shellSucceeded(ctx, "rm", "-f", quote(path))
}

// ReadFile returns text content of path, nil when it cannot be read
func (c *Client) ReadFile(ctx context.Context, path string) (*string, error) {
	result, err := c.shell(ctx, "cat", quote(path))
	if err != nil || !result.Succeeded() {
		return nil, err
	}
	content := result.Text()
	return &content, nil
}

// WriteFile replaces path with content. Content travels base64 encoded and is
// decoded on the device, so it is never interpreted by a shell.
func (c *Client) WriteFile(ctx context.Context, path, content string, asRoot bool) (bool, error) {
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	ok, _, err := c.Shell(ctx, "echo '"+encoded+"' | base64 -d > "+quote(path), asRoot)
	return ok, err
}

// Chmod changes mode of path, e.g. "755" or "+x"
func (c *Client) Chmod(ctx context.Context, path, mode string, recursive, asRoot bool) (bool, error) {
	ok, _, err := c.Shell(ctx, joinCommand("chmod", recursiveFlag(recursive), mode, quote(path)), asRoot)
	return ok, err
}

// Chown changes owner and optionally group of path
func (c *Client) Chown(ctx context.Context, path, owner, group string, recursive, asRoot bool) (bool, error) {
	if group != "" {
		owner += ":" + group
	}
	ok, _, err := c.Shell(ctx, joinCommand("chown", recursiveFlag(recursive), owner, quote(path)), asRoot)
	return ok, err
}

func recursiveFlag(recursive bool) string {
	if recursive {
		return "-R"
	}
	return ""
}

func joinCommand(parts ...string) string {
	var words []string
	for _, part := range parts {
		if part != "" {
			words = append(words, part)
		}
	}
	return strings.Join(words, " ")
}
