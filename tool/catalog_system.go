package tool

import (
	"context"
	"fmt"
)

func (a *android) systemOperations() []*Operation {
	return []*Operation{
		operation("get_battery_info", "Get battery information (level, status, temperature, etc.).",
			func(ctx context.Context, args Args) (*Response, error) {
				info, err := a.client.Battery(ctx)
				if err != nil {
					return nil, err
				}
				return NewData(info), nil
			}),
		operation("get_wifi_info", "Get WiFi connection information.",
			func(ctx context.Context, args Args) (*Response, error) {
				info, err := a.client.Wifi(ctx)
				if err != nil {
					return nil, err
				}
				return NewData(info), nil
			}),
		operation("get_ip_address", "Get the device's IP address.",
			func(ctx context.Context, args Args) (*Response, error) {
				address, err := a.client.IPAddress(ctx)
				if err != nil {
					return nil, err
				}
				if address == nil {
					return NewFailure(FailureOperation, "Could not get IP"), nil
				}
				return NewText(*address), nil
			}),
		operation("get_running_processes", "Get list of running processes.",
			func(ctx context.Context, args Args) (*Response, error) {
				processes, err := a.client.Processes(ctx)
				if err != nil {
					return nil, err
				}
				return NewData(processes), nil
			}),
		operation("get_notifications", "Get current notifications on the device.",
			func(ctx context.Context, args Args) (*Response, error) {
				notifications, err := a.client.Notifications(ctx)
				if err != nil {
					return nil, err
				}
				return NewData(notifications), nil
			}),
		operation("open_notification_panel", "Open the notification panel.",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, err := a.client.OpenNotificationPanel(ctx)
				if err != nil {
					return nil, err
				}
				return Status("Open notification panel", ok), nil
			}),
		operation("close_notification_panel", "Close the notification panel.",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, err := a.client.CloseNotificationPanel(ctx)
				if err != nil {
					return nil, err
				}
				return Status("Close notification panel", ok), nil
			}),
		operation("open_settings", "Open settings app. Options: '', 'wifi', 'bluetooth', 'display', 'sound', 'apps', 'battery', 'location', 'security', 'date', 'developer'.",
			func(ctx context.Context, args Args) (*Response, error) {
				page := args.String("setting")
				ok, err := a.client.OpenSettings(ctx, page)
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Open settings '%s'", page), ok), nil
			},
			Optional("setting", TypeString, "Specific setting page", "")),
		operation("open_url", "Open a URL in the browser.",
			func(ctx context.Context, args Args) (*Response, error) {
				url := args.String("url")
				ok, err := a.client.OpenURL(ctx, url)
				if err != nil {
					return nil, err
				}
				return Status("Open URL "+url, ok), nil
			},
			Required("url", TypeString, "The URL to open")),
		operation("toggle_wifi", "Enable or disable WiFi.",
			func(ctx context.Context, args Args) (*Response, error) {
				enable := args.Bool("enable")
				ok, err := a.client.ToggleWifi(ctx, enable)
				if err != nil {
					return nil, err
				}
				return Status("WiFi "+enabled(enable), ok), nil
			},
			Required("enable", TypeBoolean, "True to enable, False to disable")),
		operation("toggle_airplane_mode", "Toggle airplane mode.",
			func(ctx context.Context, args Args) (*Response, error) {
				enable := args.Bool("enable")
				ok, err := a.client.ToggleAirplaneMode(ctx, enable)
				if err != nil {
					return nil, err
				}
				return Status("Airplane mode "+enabled(enable), ok), nil
			},
			Required("enable", TypeBoolean, "True to enable, False to disable")),
		operation("set_brightness", "Set screen brightness level.",
			func(ctx context.Context, args Args) (*Response, error) {
				level := args.Int("level")
				ok, err := a.client.SetBrightness(ctx, level)
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Set brightness to %d", level), ok), nil
			},
			Required("level", TypeInteger, "Brightness level (0-255)")),
		operation("set_volume", "Set volume level for a stream.",
			func(ctx context.Context, args Args) (*Response, error) {
				stream, level := args.String("stream"), args.Int("level")
				ok, err := a.client.SetVolume(ctx, stream, level)
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Set %s volume to %d", stream, level), ok), nil
			},
			Required("stream", TypeString, "'music', 'ring', 'alarm', 'notification'"),
			Required("level", TypeInteger, "Volume level (0-15)")),
		operation("get_clipboard", "Get clipboard text (requires the clipper broadcast receiver on the device).",
			func(ctx context.Context, args Args) (*Response, error) {
				text, err := a.client.Clipboard(ctx)
				if err != nil {
					return nil, err
				}
				if text == nil {
					return NewFailure(FailureOperation, "Failed to read clipboard"), nil
				}
				return NewText(*text), nil
			}),
		operation("set_clipboard", "Set clipboard text (requires the clipper broadcast receiver on the device).",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, err := a.client.SetClipboard(ctx, args.String("text"))
				if err != nil {
					return nil, err
				}
				return Status("Set clipboard", ok), nil
			},
			Required("text", TypeString, "Clipboard text")),
		operation("take_photo", "Open the camera with quick capture to take a photo.",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, err := a.client.TakePhoto(ctx)
				if err != nil {
					return nil, err
				}
				return Status("Take photo", ok), nil
			}),
	}
}

func enabled(enable bool) string {
	if enable {
		return "enabled"
	}
	return "disabled"
}
