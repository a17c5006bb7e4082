package tool

import (
	"context"
	"fmt"

	"github.com/viant/android-mcp/adb"
)

func (a *android) fileOperations() []*Operation {
	return []*Operation{
		operation("list_files", "List files in a directory on the device.",
			func(ctx context.Context, args Args) (*Response, error) {
				files, err := a.client.ListFiles(ctx, args.String("path"))
				if err != nil {
					return nil, err
				}
				return NewData(files), nil
			},
			Optional("path", TypeString, "Directory path", adb.DefaultDirectory)),
		operation("read_file", "Read text file content from the device.",
			func(ctx context.Context, args Args) (*Response, error) {
				content, err := a.client.ReadFile(ctx, args.String("device_path"))
				if err != nil {
					return nil, err
				}
				if content == nil {
					return NewFailure(FailureOperation, "Failed to read file"), nil
				}
				return NewText(*content), nil
			},
			Required("device_path", TypeString, "Path to the file on device")),
		operation("write_file", "Write text content to a file on the device. Supports ROOT permission.",
			func(ctx context.Context, args Args) (*Response, error) {
				path := args.String("device_path")
				ok, err := a.client.WriteFile(ctx, path, args.String("content"), args.Bool("as_root"))
				if err != nil {
					return nil, err
				}
				return Status("Write file "+path, ok), nil
			},
			Required("device_path", TypeString, "Path to the file on device"),
			Required("content", TypeString, "Content to write"),
			Optional("as_root", TypeBoolean, "Execute as root (required for system/protected paths)", false)),
		operation("chmod", "Change file permissions.",
			func(ctx context.Context, args Args) (*Response, error) {
				path, mode := args.String("device_path"), args.String("mode")
				ok, err := a.client.Chmod(ctx, path, mode, args.Bool("recursive"), args.Bool("as_root"))
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Chmod %s %s", mode, path), ok), nil
			},
			Required("device_path", TypeString, "Path to the file/directory"),
			Required("mode", TypeString, "Permission mode (e.g., '755', '+x')"),
			Optional("recursive", TypeBoolean, "Apply to subdirectories", false),
			Optional("as_root", TypeBoolean, "Execute as root", false)),
		operation("chown", "Change file owner/group.",
			func(ctx context.Context, args Args) (*Response, error) {
				path, owner := args.String("device_path"), args.String("owner")
				ok, err := a.client.Chown(ctx, path, owner, args.String("group"), args.Bool("recursive"), args.Bool("as_root"))
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Chown %s %s", owner, path), ok), nil
			},
			Required("device_path", TypeString, "Path to the file/directory"),
			Required("owner", TypeString, "New owner (user)"),
			Optional("group", TypeString, "New group (optional)", nil),
			Optional("recursive", TypeBoolean, "Apply to subdirectories", false),
			Optional("as_root", TypeBoolean, "Execute as root", false)),
		operation("push_file", "Push a file from local to device. The local path may be any afs URL.",
			func(ctx context.Context, args Args) (*Response, error) {
				local, path := args.String("local_path"), args.String("device_path")
				action := fmt.Sprintf("Push %s -> %s", local, path)
				source, err := a.stage.Source(ctx, local)
				if err != nil {
					return NewFailuref(FailureOperation, "%s: Failed - %v", action, err), nil
				}
				defer source.Release(ctx)
				ok, err := a.client.Push(ctx, source.Path, path)
				if err != nil {
					return nil, err
				}
				return Status(action, ok), nil
			},
			Required("local_path", TypeString, "Local file path"),
			Required("device_path", TypeString, "Destination path on device")),
		operation("pull_file", "Pull a file from device to local. The local path may be any afs URL.",
			func(ctx context.Context, args Args) (*Response, error) {
				path, local := args.String("device_path"), args.String("local_path")
				action := fmt.Sprintf("Pull %s -> %s", path, local)
				destination := a.stage.Destination(local)
				defer destination.Release(ctx)
				ok, err := a.client.Pull(ctx, path, destination.Path)
				if err != nil {
					return nil, err
				}
				if !ok {
					return Status(action, false), nil
				}
				if err = destination.Commit(ctx); err != nil {
					return NewFailuref(FailureOperation, "%s: Failed - %v", action, err), nil
				}
				return Status(action, true), nil
			},
			Required("device_path", TypeString, "File path on device"),
			Required("local_path", TypeString, "Local destination path")),
		operation("delete_file", "Delete a file on the device.",
			func(ctx context.Context, args Args) (*Response, error) {
				path := args.String("device_path")
				ok, err := a.client.DeleteFile(ctx, path)
				if err != nil {
					return nil, err
				}
				return Status("Delete "+path, ok), nil
			},
			Required("device_path", TypeString, "Path to the file")),
		operation("file_exists", "Check whether a file or directory exists on the device.",
			func(ctx context.Context, args Args) (*Response, error) {
				path := args.String("device_path")
				exists, err := a.client.FileExists(ctx, path)
				if err != nil {
					return nil, err
				}
				return NewData(map[string]interface{}{"path": path, "exists": exists}), nil
			},
			Required("device_path", TypeString, "Path on device")),
	}
}
