package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestDevices(t *testing.T) {
	var testCases = []struct {
		description string
		fixture     string
		expect      []Device
	}{
		{
			description: "header and blank lines skipped",
			fixture:     "devices.txt",
			expect:      []Device{{Serial: "emulator-5554", State: "device"}, {Serial: "R58M123ABC", State: "unauthorized"}},
		},
		{
			description: "daemon notices skipped",
			fixture:     "devices_daemon.txt",
			expect:      []Device{{Serial: "emulator-5554", State: "device"}},
		},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Devices(fixture(t, testCase.fixture)), testCase.description)
	}
	assert.Empty(t, Devices("List of devices attached\n\n"))
}

func TestLastColonValue(t *testing.T) {
	value, ok := LastColonValue("Physical size: 1080x2400\n")
	require.True(t, ok)
	assert.Equal(t, "1080x2400", value)

	value, ok = LastColonValue("Override density: 420")
	require.True(t, ok)
	assert.Equal(t, "420", value)

	_, ok = LastColonValue("no separator")
	assert.False(t, ok)
}

func TestScreenSize(t *testing.T) {
	width, height, ok := ScreenSize("1080x2400")
	require.True(t, ok)
	assert.Equal(t, 1080, width)
	assert.Equal(t, 2400, height)

	for _, value := range []string{"", "1080", "axb", "1080x"} {
		_, _, ok = ScreenSize(value)
		assert.False(t, ok, value)
	}
}

func TestFocusedApp(t *testing.T) {
	app, ok := FocusedApp(fixture(t, "window.txt"))
	require.True(t, ok)
	assert.Equal(t, &App{Package: "com.android.settings", Activity: "com.android.settings.Settings"}, app)

	app, ok = FocusedApp(fixture(t, "window_fallback.txt"))
	require.True(t, ok)
	assert.Equal(t, "com.android.chrome", app.Package)
	assert.Equal(t, "org.chromium.chrome.browser.ChromeTabbedActivity", app.Activity)

	_, ok = FocusedApp("mCurrentFocus=null\n")
	assert.False(t, ok)
}

func TestNotifications(t *testing.T) {
	actual := Notifications(fixture(t, "notifications.txt"))
	assert.EqualValues(t, []Notification{
		{Package: "com.whatsapp", Title: "Alice", Text: "See you at 6"},
		{Package: "com.google.android.gm", Title: "New mail", Text: "Quarterly report"},
		{Package: "com.android.systemui", Title: "USB debugging connected"},
	}, actual)

	builder := strings.Builder{}
	for i := 0; i < 25; i++ {
		builder.WriteString(fmt.Sprintf("NotificationRecord(0x%x: pkg=app.n%d user=UserHandle{0})\n", i, i))
		builder.WriteString(fmt.Sprintf("  android.title=String (title %d)\n", i))
	}
	many := Notifications(builder.String())
	require.Len(t, many, 25)
	for i, item := range many {
		assert.Equal(t, fmt.Sprintf("app.n%d", i), item.Package)
		assert.Equal(t, fmt.Sprintf("title %d", i), item.Title)
	}
	assert.Empty(t, Notifications(""))
}

func TestPackages(t *testing.T) {
	assert.EqualValues(t, []string{"com.android.settings", "com.google.android.gm", "com.whatsapp"}, Packages(fixture(t, "packages.txt")))
}

func TestAppInfo(t *testing.T) {
	assert.EqualValues(t, map[string]string{
		"package":       "com.whatsapp",
		"version_code":  "231011",
		"version_name":  "2.23.10.11",
		"first_install": "2023-01-10 09:12:33",
		"last_update":   "2023-06-01 18:40:02",
	}, AppInfo("com.whatsapp", fixture(t, "app_info.txt")))
}

func TestFiles(t *testing.T) {
	actual := Files(fixture(t, "ls.txt"))
	require.Len(t, actual, 3)
	assert.Equal(t, File{Permissions: "drwxrwx--x", Size: "4096", Date: "2024-03-01 10:00", Name: "Download", IsDir: true}, actual[0])
	assert.Equal(t, "notes.txt", actual[1].Name)
	assert.False(t, actual[1].IsDir)
	assert.Equal(t, "my file.txt", actual[2].Name)
}

func TestBattery(t *testing.T) {
	info := Battery(fixture(t, "battery.txt"))
	assert.Equal(t, "87", info["level"])
	assert.Equal(t, "true", info["usb_powered"])
	assert.Equal(t, "false", info["ac_powered"])
	assert.Equal(t, "250", info["temperature"])
}

func TestWifi(t *testing.T) {
	assert.EqualValues(t, map[string]string{
		"ssid":       `"HomeNet"`,
		"rssi":       "-55",
		"link_speed": "433Mbps",
	}, Wifi(fixture(t, "wifi.txt")))
}

func TestRouteSource(t *testing.T) {
	address, ok := RouteSource("1.0.0.0 via 10.0.2.2 dev wlan0 table 1021 src 10.0.2.16 uid 0\n")
	require.True(t, ok)
	assert.Equal(t, "10.0.2.16", address)

	_, ok = RouteSource("RTNETLINK answers: Network is unreachable")
	assert.False(t, ok)
}

func TestProcesses(t *testing.T) {
	actual := Processes(fixture(t, "ps.txt"))
	assert.EqualValues(t, []Process{
		{User: "root", PID: "1", Name: "init"},
		{User: "system", PID: "560", Name: "system_server"},
		{User: "u0_a150", PID: "8123", Name: "com.whatsapp"},
	}, actual)
	assert.Empty(t, Processes("USER PID"))
}
