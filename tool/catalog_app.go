package tool

import (
	"context"

	"github.com/viant/android-mcp/adb"
)

func (a *android) appOperations() []*Operation {
	return []*Operation{
		operation("start_app", "Launch an application by its package name.",
			func(ctx context.Context, args Args) (*Response, error) {
				name := args.String("package_name")
				ok, err := a.client.StartApp(ctx, name, args.String("activity"))
				if err != nil {
					return nil, err
				}
				return Status("Start app "+name, ok), nil
			},
			Required("package_name", TypeString, "The package name (e.g., 'com.android.settings')"),
			Optional("activity", TypeString, "Optional: specific activity to start", nil)),
		operation("stop_app", "Force stop an application.",
			func(ctx context.Context, args Args) (*Response, error) {
				name := args.String("package_name")
				ok, err := a.client.StopApp(ctx, name)
				if err != nil {
					return nil, err
				}
				return Status("Stop app "+name, ok), nil
			},
			Required("package_name", TypeString, "The package name")),
		operation("clear_app_data", "Clear app data and cache.",
			func(ctx context.Context, args Args) (*Response, error) {
				name := args.String("package_name")
				ok, err := a.client.ClearAppData(ctx, name)
				if err != nil {
					return nil, err
				}
				return Status("Clear data for "+name, ok), nil
			},
			Required("package_name", TypeString, "The package name")),
		operation("install_apk", "Install an APK file on the device. The path may be a local path or any afs URL (s3://, gs://, http://).",
			func(ctx context.Context, args Args) (*Response, error) {
				source, err := a.stage.Source(ctx, args.String("apk_path"))
				if err != nil {
					return NewFailuref(FailureOperation, "Install APK: Failed - %v", err), nil
				}
				defer source.Release(ctx)
				ok, message, err := a.client.InstallAPK(ctx, source.Path, args.Bool("replace"))
				if err != nil {
					return nil, err
				}
				if !ok {
					return NewFailure(FailureOperation, "Install APK: Failed - "+message), nil
				}
				return NewText("Install APK: Success - " + message), nil
			},
			Required("apk_path", TypeString, "Path to the APK file"),
			Optional("replace", TypeBoolean, "Replace existing app", true)),
		operation("uninstall_app", "Uninstall an application.",
			func(ctx context.Context, args Args) (*Response, error) {
				name := args.String("package_name")
				ok, err := a.client.UninstallApp(ctx, name)
				if err != nil {
					return nil, err
				}
				return Status("Uninstall "+name, ok), nil
			},
			Required("package_name", TypeString, "The package name")),
		operation("list_packages", "List installed packages on the device.",
			func(ctx context.Context, args Args) (*Response, error) {
				packages, err := a.client.ListPackages(ctx, args.String("filter_type"))
				if err != nil {
					return nil, err
				}
				return NewData(map[string]interface{}{"count": len(packages), "packages": packages}), nil
			},
			Optional("filter_type", TypeString, "'all', 'system', 'third_party', 'enabled', 'disabled'", adb.PackagesAll)),
		operation("get_app_info", "Get detailed information about an installed app.",
			func(ctx context.Context, args Args) (*Response, error) {
				info, err := a.client.AppInfo(ctx, args.String("package_name"))
				if err != nil {
					return nil, err
				}
				if info == nil {
					return NewFailure(FailureOperation, "App not found"), nil
				}
				return NewData(info), nil
			},
			Required("package_name", TypeString, "The package name")),
	}
}
