package tool

import (
	"context"
	"strings"
	"time"

	"github.com/viant/android-mcp/adb"
)

func (a *android) shellOperations() []*Operation {
	return []*Operation{
		operation("shell_command", "Execute an arbitrary shell command on the device. Supports ROOT permission.",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, output, err := a.client.Shell(ctx, args.String("command"), args.Bool("as_root"))
				if err != nil {
					return nil, err
				}
				if !ok {
					return NewFailure(FailureOperation, "Failed:\n"+output), nil
				}
				return NewText("Success:\n" + output), nil
			},
			Required("command", TypeString, "The shell command to execute"),
			Optional("as_root", TypeBoolean, "Execute as root", false)),
		operation("get_logcat", "Get logcat output.",
			func(ctx context.Context, args Args) (*Response, error) {
				output, err := a.client.Logcat(ctx, args.Int("lines"), args.String("filter_tag"))
				if err != nil {
					return nil, err
				}
				if output == nil {
					return NewFailure(FailureOperation, "Failed to get logcat"), nil
				}
				return NewText(*output), nil
			},
			Optional("lines", TypeInteger, "Number of lines to retrieve", adb.DefaultLogLines),
			Optional("filter_tag", TypeString, "Optional tag filter", nil)),
		operation("clear_logcat", "Clear the logcat buffer.",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, err := a.client.ClearLogcat(ctx)
				if err != nil {
					return nil, err
				}
				return Status("Clear logcat", ok), nil
			}),
		operation("get_prop", "Get a system property value.",
			func(ctx context.Context, args Args) (*Response, error) {
				name := args.String("prop_name")
				value, err := a.client.Prop(ctx, name)
				if err != nil {
					return nil, err
				}
				if value == nil || *value == "" {
					return NewFailure(FailureOperation, "Property not found"), nil
				}
				return NewText(name + " = " + *value), nil
			},
			Required("prop_name", TypeString, "Property name (e.g., 'ro.product.model')")),
	}
}

func (a *android) controlOperations() []*Operation {
	return []*Operation{
		operation("reboot", "Reboot the device. Use with caution!",
			func(ctx context.Context, args Args) (*Response, error) {
				mode := args.String("mode")
				ok, err := a.client.Reboot(ctx, mode)
				if err != nil {
					return nil, err
				}
				return Status(strings.TrimSpace("Reboot "+mode), ok), nil
			},
			Optional("mode", TypeString, "'', 'recovery', 'bootloader'", "")),
		operation("screen_record", "Record the screen to a video file.",
			func(ctx context.Context, args Args) (*Response, error) {
				path := args.String("output_path")
				ok, err := a.client.ScreenRecord(ctx, path, args.Int("duration_seconds"))
				if err != nil {
					return nil, err
				}
				return Status("Screen record to "+path, ok), nil
			},
			Required("output_path", TypeString, "Output path on device"),
			Optional("duration_seconds", TypeInteger, "Recording duration", adb.DefaultRecordDuration)),
		operation("wait_for_device", "Wait until the device is online.",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, err := a.client.WaitForDevice(ctx, time.Duration(args.Int("timeout_seconds"))*time.Second)
				if err != nil {
					return nil, err
				}
				return Status("Wait for device", ok), nil
			},
			Optional("timeout_seconds", TypeInteger, "Maximum wait in seconds", int(adb.DefaultWaitTimeout/time.Second))),
	}
}
