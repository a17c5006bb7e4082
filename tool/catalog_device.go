package tool

import "context"

func (a *android) deviceOperations() []*Operation {
	return []*Operation{
		operation("list_devices", "List devices attached to the adb server with their state.",
			func(ctx context.Context, args Args) (*Response, error) {
				devices, err := a.client.Devices(ctx)
				if err != nil {
					return nil, err
				}
				return NewData(map[string]interface{}{"count": len(devices), "devices": devices}), nil
			}),
		operation("get_device_info", "Get information about the connected Android device including model, Android version, screen size, etc.",
			func(ctx context.Context, args Args) (*Response, error) {
				properties, err := a.client.DeviceInfo(ctx)
				if err != nil {
					return nil, err
				}
				response := NewData(properties.Values)
				response.Omitted = properties.Omitted
				return response, nil
			}),
		operation("get_screenshot", "Capture a screenshot of the current screen. Returns the image as base64 encoded PNG.",
			func(ctx context.Context, args Args) (*Response, error) {
				png, err := a.client.Screenshot(ctx)
				if err != nil {
					return nil, err
				}
				if png == nil {
					return NewFailure(FailureOperation, "Failed to capture screenshot"), nil
				}
				return NewBinary(png, "image/png"), nil
			}),
		operation("get_ui_hierarchy", "Get the UI hierarchy of the current screen as XML. This provides semantic information about UI elements including their text, content descriptions, bounds, and clickability.",
			func(ctx context.Context, args Args) (*Response, error) {
				hierarchy, err := a.client.UIHierarchy(ctx)
				if err != nil {
					return nil, err
				}
				if hierarchy == nil {
					return NewFailure(FailureOperation, "Failed to get UI hierarchy"), nil
				}
				return NewText(*hierarchy), nil
			}),
		operation("get_current_app", "Get information about the currently focused/foreground application.",
			func(ctx context.Context, args Args) (*Response, error) {
				app, err := a.client.CurrentApp(ctx)
				if err != nil {
					return nil, err
				}
				if app == nil {
					return NewFailure(FailureOperation, "Could not determine current app"), nil
				}
				return NewData(app), nil
			}),
	}
}
