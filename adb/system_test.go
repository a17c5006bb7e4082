package adb_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/adb/adbtest"
)

func TestClient_Notifications(t *testing.T) {
	builder := strings.Builder{}
	for i := 0; i < 25; i++ {
		builder.WriteString(fmt.Sprintf("  NotificationRecord(0x%x: pkg=com.app%d user=UserHandle{0} id=%d)\n", i, i, i))
		builder.WriteString(fmt.Sprintf("    android.title=String (title %d)\n", i))
		builder.WriteString(fmt.Sprintf("    android.text=String (text %d)\n", i))
	}
	runner := adbtest.New().On("shell dumpsys notification --noredact", adbtest.Output(builder.String()))
	client := adb.New(adb.WithRunner(runner))
	actual, err := client.Notifications(context.Background())
	require.NoError(t, err)
	require.Len(t, actual, adb.MaxNotifications)
	for i, notification := range actual {
		assert.Equal(t, fmt.Sprintf("com.app%d", i), notification.Package)
		assert.Equal(t, fmt.Sprintf("title %d", i), notification.Title)
		assert.Equal(t, fmt.Sprintf("text %d", i), notification.Text)
	}
}

func TestClient_System(t *testing.T) {
	var testCases = []struct {
		description string
		run         func(ctx context.Context, client *adb.Client) (bool, error)
		expect      []string
	}{
		{
			description: "settings page",
			run:         func(ctx context.Context, c *adb.Client) (bool, error) { return c.OpenSettings(ctx, "wifi") },
			expect:      []string{"shell am start -a android.settings.WIFI_SETTINGS"},
		},
		{
			description: "unknown settings page",
			run:         func(ctx context.Context, c *adb.Client) (bool, error) { return c.OpenSettings(ctx, "nope") },
			expect:      []string{"shell am start -a android.settings.SETTINGS"},
		},
		{
			description: "brightness clamped",
			run:         func(ctx context.Context, c *adb.Client) (bool, error) { return c.SetBrightness(ctx, 400) },
			expect:      []string{"shell settings put system screen_brightness 255"},
		},
		{
			description: "volume",
			run:         func(ctx context.Context, c *adb.Client) (bool, error) { return c.SetVolume(ctx, "alarm", 7) },
			expect:      []string{"shell media volume --stream 4 --set 7"},
		},
		{
			description: "airplane mode",
			run:         func(ctx context.Context, c *adb.Client) (bool, error) { return c.ToggleAirplaneMode(ctx, true) },
			expect: []string{
				"shell settings put global airplane_mode_on 1",
				"shell am broadcast -a android.intent.action.AIRPLANE_MODE",
			},
		},
		{
			description: "wifi",
			run:         func(ctx context.Context, c *adb.Client) (bool, error) { return c.ToggleWifi(ctx, false) },
			expect:      []string{"shell svc wifi disable"},
		},
		{
			description: "reboot",
			run:         func(ctx context.Context, c *adb.Client) (bool, error) { return c.Reboot(ctx, "recovery") },
			expect:      []string{"reboot recovery"},
		},
		{
			description: "clipboard",
			run:         func(ctx context.Context, c *adb.Client) (bool, error) { return c.SetClipboard(ctx, "don't") },
			expect:      []string{`shell am broadcast -a clipper.set -e text 'don'\''t'`},
		},
		{
			description: "url",
			run: func(ctx context.Context, c *adb.Client) (bool, error) {
				return c.OpenURL(ctx, "https://example.com/?a=1&b=2")
			},
			expect: []string{"shell am start -a android.intent.action.VIEW -d 'https://example.com/?a=1&b=2'"},
		},
	}
	for _, testCase := range testCases {
		runner := adbtest.New()
		client := adb.New(adb.WithRunner(runner))
		ok, err := testCase.run(context.Background(), client)
		require.NoError(t, err, testCase.description)
		assert.True(t, ok, testCase.description)
		assert.Equal(t, testCase.expect, runner.Commands(), testCase.description)
	}
}

func TestClient_ScreenRecord(t *testing.T) {
	var deadline time.Time
	runner := adbtest.New().OnFunc("shell screenrecord", func(ctx context.Context, args []string) (*adb.Result, error) {
		deadline, _ = ctx.Deadline()
		return &adb.Result{}, nil
	})
	client := adb.New(adb.WithRunner(runner), adb.WithTimeout(time.Second))
	started := time.Now()
	ok, err := client.ScreenRecord(context.Background(), "/sdcard/demo.mp4", 60)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, deadline.After(started.Add(60*time.Second)))
	assert.Equal(t, []string{"shell screenrecord --time-limit 60 '/sdcard/demo.mp4'"}, runner.Commands())
}

func TestClient_WaitForDevice(t *testing.T) {
	runner := adbtest.New().OnFunc("wait-for-device", func(ctx context.Context, args []string) (*adb.Result, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	client := adb.New(adb.WithRunner(runner))
	ok, err := client.WaitForDevice(context.Background(), 20*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_Info(t *testing.T) {
	runner := adbtest.New().
		On("shell ip route get 1", adbtest.Output("1.0.0.0 via 192.168.1.1 dev wlan0 src 192.168.1.23 uid 2000\n")).
		On("shell dumpsys battery", adbtest.Output("Current Battery Service state:\n  level: 55\n")).
		On("shell ps -A", adbtest.Exit(1, ""))
	client := adb.New(adb.WithRunner(runner))

	address, err := client.IPAddress(context.Background())
	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, "192.168.1.23", *address)

	battery, err := client.Battery(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "55", battery["level"])

	processes, err := client.Processes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, processes)
}
