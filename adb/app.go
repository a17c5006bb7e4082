package adb

import (
	"context"

	"github.com/viant/android-mcp/adb/parse"
)

// Package filters accepted by ListPackages
const (
	PackagesAll        = "all"
	PackagesSystem     = "system"
	PackagesThirdParty = "third_party"
	PackagesEnabled    = "enabled"
	PackagesDisabled   = "disabled"
)

var packageFilterFlags = map[string]string{
	PackagesSystem:     "-s",
	PackagesThirdParty: "-3",
	PackagesEnabled:    "-e",
	PackagesDisabled:   "-d",
}

// StartApp launches activity of packageName, or its launcher activity when activity is empty
func (c *Client) StartApp(ctx context.Context, packageName, activity string) (bool, error) {
	if activity != "" {
		return c.shellSucceeded(ctx, "am", "start", "-n", packageName+"/"+activity)
	}
	return c.shellSucceeded(ctx, "monkey", "-p", packageName, "-c", "android.intent.category.LAUNCHER", "1")
}

// StopApp force stops packageName
func (c *Client) StopApp(ctx context.Context, packageName string) (bool, error) {
	return c.shellSucceeded(ctx, "am", "force-stop", packageName)
}

// ClearAppData clears data and cache of packageName
func (c *Client) ClearAppData(ctx context.Context, packageName string) (bool, error) {
	return c.shellSucceeded(ctx, "pm", "clear", packageName)
}

// InstallAPK installs a host side APK and returns the installer output
func (c *Client) InstallAPK(ctx context.Context, apkPath string, replace bool) (bool, string, error) {
	args := []string{"install"}
	if replace {
		args = append(args, "-r")
	}
	result, err := c.run(ctx, append(args, apkPath)...)
	if err != nil {
		return false, "", err
	}
	return result.Succeeded(), result.Combined(), nil
}

// UninstallApp removes packageName
func (c *Client) UninstallApp(ctx context.Context, packageName string) (bool, error) {
	return c.succeeded(ctx, "uninstall", packageName)
}

// ListPackages lists installed packages; unknown filters list all packages
func (c *Client) ListPackages(ctx context.Context, filter string) ([]string, error) {
	args := []string{"pm", "list", "packages"}
	if flag, ok := packageFilterFlags[filter]; ok {
		args = append(args, flag)
	}
	result, err := c.shell(ctx, args...)
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() {
		return []string{}, nil
	}
	return parse.Packages(result.Text()), nil
}

// AppInfo returns version and install details of packageName, nil when unavailable
func (c *Client) AppInfo(ctx context.Context, packageName string) (map[string]string, error) {
	result, err := c.shell(ctx, "dumpsys", "package", packageName)
	if err != nil || !result.Succeeded() {
		return nil, err
	}
	return parse.AppInfo(packageName, result.Text()), nil
}
