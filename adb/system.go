package adb

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/viant/android-mcp/adb/parse"
)

const (
	// MaxNotifications caps the listed notifications
	MaxNotifications = 20
	// MaxProcesses caps the listed processes
	MaxProcesses = 50
	// DefaultRecordDuration is the screen recording length in seconds
	DefaultRecordDuration = 10
	// DefaultWaitTimeout bounds WaitForDevice
	DefaultWaitTimeout = 30 * time.Second

	maxBrightness = 255
	recordMargin  = 15 * time.Second
)

// SettingsPages maps setting page names to intent actions
var SettingsPages = map[string]string{
	"":          "android.settings.SETTINGS",
	"wifi":      "android.settings.WIFI_SETTINGS",
	"bluetooth": "android.settings.BLUETOOTH_SETTINGS",
	"display":   "android.settings.DISPLAY_SETTINGS",
	"sound":     "android.settings.SOUND_SETTINGS",
	"apps":      "android.settings.APPLICATION_SETTINGS",
	"battery":   "android.intent.action.POWER_USAGE_SUMMARY",
	"location":  "android.settings.LOCATION_SOURCE_SETTINGS",
	"security":  "android.settings.SECURITY_SETTINGS",
	"date":      "android.settings.DATE_SETTINGS",
	"developer": "android.settings.APPLICATION_DEVELOPMENT_SETTINGS",
}

// VolumeStreams maps stream names to audio stream ids
var VolumeStreams = map[string]string{
	"music":        "3",
	"ring":         "2",
	"alarm":        "4",
	"notification": "5",
}

// Battery returns battery state keyed in snake case; empty on failure
func (c *Client) Battery(ctx context.Context) (map[string]string, error) {
	result, err := c.shell(ctx, "dumpsys", "battery")
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() {
		return map[string]string{}, nil
	}
	return parse.Battery(result.Text()), nil
}

// Wifi returns the current connection ssid, rssi and link speed; empty on failure
func (c *Client) Wifi(ctx context.Context) (map[string]string, error) {
	result, err := c.shell(ctx, "dumpsys", "wifi")
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() {
		return map[string]string{}, nil
	}
	return parse.Wifi(result.Text()), nil
}

// IPAddress returns the source address of the default route, nil when unknown
func (c *Client) IPAddress(ctx context.Context) (*string, error) {
	result, err := c.shell(ctx, "ip", "route", "get", "1")
	if err != nil || !result.Succeeded() {
		return nil, err
	}
	address, ok := parse.RouteSource(result.Text())
	if !ok {
		return nil, nil
	}
	return &address, nil
}

// Processes lists up to MaxProcesses running processes
func (c *Client) Processes(ctx context.Context) ([]parse.Process, error) {
	result, err := c.shell(ctx, "ps", "-A")
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() {
		return []parse.Process{}, nil
	}
	processes := parse.Processes(result.Text())
	if len(processes) > MaxProcesses {
		processes = processes[:MaxProcesses]
	}
	return processes, nil
}

// Notifications lists up to MaxNotifications posted notifications in dump order
func (c *Client) Notifications(ctx context.Context) ([]parse.Notification, error) {
	result, err := c.shell(ctx, "dumpsys", "notification", "--noredact")
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() {
		return []parse.Notification{}, nil
	}
	notifications := parse.Notifications(result.Text())
	if len(notifications) > MaxNotifications {
		notifications = notifications[:MaxNotifications]
	}
	return notifications, nil
}

// OpenNotificationPanel expands the notification shade
func (c *Client) OpenNotificationPanel(ctx context.Context) (bool, error) {
	return c.shellSucceeded(ctx, "cmd", "statusbar", "expand-notifications")
}

// CloseNotificationPanel collapses the notification shade
func (c *Client) CloseNotificationPanel(ctx context.Context) (bool, error) {
	return c.shellSucceeded(ctx, "cmd", "statusbar", "collapse")
}

// OpenSettings opens a settings page; unknown pages open the main settings
func (c *Client) OpenSettings(ctx context.Context, page string) (bool, error) {
	action, ok := SettingsPages[page]
	if !ok {
		action = SettingsPages[""]
	}
	return c.shellSucceeded(ctx, "am", "start", "-a", action)
}

// OpenURL opens url with the default viewer
func (c *Client) OpenURL(ctx context.Context, url string) (bool, error) {
	return c.shellSucceeded(ctx, "am", "start", "-a", "android.intent.action.VIEW", "-d", quote(url))
}

// ToggleWifi enables or disables wifi
func (c *Client) ToggleWifi(ctx context.Context, enable bool) (bool, error) {
	action := "disable"
	if enable {
		action = "enable"
	}
	return c.shellSucceeded(ctx, "svc", "wifi", action)
}

// ToggleAirplaneMode writes the airplane mode setting and broadcasts the change;
// the broadcast outcome is reported
func (c *Client) ToggleAirplaneMode(ctx context.Context, enable bool) (bool, error) {
	value := "0"
	if enable {
		value = "1"
	}
	if _, err := c.shell(ctx, "settings", "put", "global", "airplane_mode_on", value); err != nil {
		return false, err
	}
	return c.shellSucceeded(ctx, "am", "broadcast", "-a", "android.intent.action.AIRPLANE_MODE")
}

// SetBrightness sets the screen brightness clamped to 0..255
func (c *Client) SetBrightness(ctx context.Context, level int) (bool, error) {
	level = max(0, min(maxBrightness, level))
	return c.shellSucceeded(ctx, "settings", "put", "system", "screen_brightness", strconv.Itoa(level))
}

// SetVolume sets the level of a named stream; unknown streams set music volume
func (c *Client) SetVolume(ctx context.Context, stream string, level int) (bool, error) {
	id, ok := VolumeStreams[stream]
	if !ok {
		id = VolumeStreams["music"]
	}
	return c.shellSucceeded(ctx, "media", "volume", "--stream", id, "--set", strconv.Itoa(level))
}

// Reboot restarts the device, optionally into "recovery" or "bootloader"
func (c *Client) Reboot(ctx context.Context, mode string) (bool, error) {
	args := []string{"reboot"}
	if mode != "" {
		args = append(args, mode)
	}
	return c.succeeded(ctx, args...)
}

// ScreenRecord records the screen into an on-device file for seconds
func (c *Client) ScreenRecord(ctx context.Context, outputPath string, seconds int) (bool, error) {
	if seconds <= 0 {
		seconds = DefaultRecordDuration
	}
	timeout := max(c.timeout, time.Duration(seconds)*time.Second+recordMargin)
	result, err := c.Execute(ctx, []string{"shell", "screenrecord", "--time-limit", strconv.Itoa(seconds), quote(outputPath)}, false, timeout)
	if err != nil {
		return false, err
	}
	return result.Succeeded(), nil
}

// TakePhoto opens the camera with quick capture enabled
func (c *Client) TakePhoto(ctx context.Context) (bool, error) {
	return c.shellSucceeded(ctx, "am", "start", "-a", "android.media.action.IMAGE_CAPTURE",
		"--ez", "android.intent.extra.quickCapture", "true")
}

// SetClipboard sets clipboard text through the clipper broadcast receiver
func (c *Client) SetClipboard(ctx context.Context, text string) (bool, error) {
	return c.shellSucceeded(ctx, "am", "broadcast", "-a", "clipper.set", "-e", "text", quote(text))
}

// Clipboard returns the clipper broadcast output, nil on failure
func (c *Client) Clipboard(ctx context.Context) (*string, error) {
	return c.shellText(ctx, "am", "broadcast", "-a", "clipper.get")
}

// WaitForDevice blocks until the target is online or timeout elapses
func (c *Client) WaitForDevice(ctx context.Context, timeout time.Duration) (bool, error) {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	result, err := c.Execute(ctx, []string{"wait-for-device"}, false, timeout)
	if err != nil {
		var timeoutErr *TimeoutError
		if errors.As(err, &timeoutErr) {
			return false, nil
		}
		return false, err
	}
	return result.Succeeded(), nil
}
