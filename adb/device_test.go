package adb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/adb/adbtest"
	"github.com/viant/android-mcp/adb/parse"
)

func TestClient_Devices(t *testing.T) {
	var testCases = []struct {
		description string
		result      *adb.Result
		expect      []parse.Device
	}{
		{
			description: "attached devices",
			result:      adbtest.Output("List of devices attached\nemulator-5554\tdevice\n\n"),
			expect:      []parse.Device{{Serial: "emulator-5554", State: "device"}},
		},
		{
			description: "no devices",
			result:      adbtest.Output("List of devices attached\n\n"),
			expect:      []parse.Device{},
		},
		{
			description: "listing failed",
			result:      adbtest.Exit(1, "cannot connect to daemon"),
			expect:      []parse.Device{},
		},
		{
			description: "target offline",
			result:      adbtest.Exit(1, "adb: error: device offline"),
			expect:      []parse.Device{},
		},
		{
			description: "no devices found",
			result:      adbtest.Exit(1, "error: no devices/emulators found"),
			expect:      []parse.Device{},
		},
	}
	for _, testCase := range testCases {
		client := adb.New(adb.WithRunner(adbtest.New().On("devices", testCase.result)), adb.WithSerial("emulator-5554"))
		actual, err := client.Devices(context.Background())
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestClient_DeviceInfo(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		runner := adbtest.New().
			On("shell getprop ro.product.model", adbtest.Output("Pixel 7\n")).
			On("shell getprop ro.build.version.release", adbtest.Output("14\n")).
			On("shell getprop ro.build.version.sdk", adbtest.Output("34\n")).
			On("shell getprop ro.product.manufacturer", adbtest.Output("Google\n")).
			On("shell wm size", adbtest.Output("Physical size: 1080x2400\n")).
			On("shell wm density", adbtest.Output("Physical density: 420\n"))
		client := adb.New(adb.WithRunner(runner))
		actual, err := client.DeviceInfo(context.Background())
		require.NoError(t, err)
		assert.Empty(t, actual.Omitted)
		assert.EqualValues(t, map[string]string{
			"model":           "Pixel 7",
			"android_version": "14",
			"sdk_version":     "34",
			"manufacturer":    "Google",
			"screen_size":     "1080x2400",
			"screen_density":  "420",
		}, actual.Values)
		assert.Len(t, runner.Calls(), 6)
	})

	t.Run("partial", func(t *testing.T) {
		runner := adbtest.New().
			On("shell getprop ro.product.model", adbtest.Output("Pixel 7\n")).
			On("shell getprop ro.product.manufacturer", adbtest.Exit(1, "")).
			On("shell wm size", adbtest.Output("unexpected\n"))
		client := adb.New(adb.WithRunner(runner))
		actual, err := client.DeviceInfo(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Pixel 7", actual.Values["model"])
		assert.NotContains(t, actual.Values, "manufacturer")
		assert.NotContains(t, actual.Values, "screen_size")
		assert.Equal(t, []string{"manufacturer", "screen_size", "screen_density"}, actual.Omitted)
	})

	t.Run("timeout propagates", func(t *testing.T) {
		runner := adbtest.New().OnFunc("shell getprop ro.product.model", func(ctx context.Context, args []string) (*adb.Result, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
		client := adb.New(adb.WithRunner(runner), adb.WithTimeout(20*time.Millisecond))
		_, err := client.DeviceInfo(context.Background())
		var timeout *adb.TimeoutError
		assert.ErrorAs(t, err, &timeout)
	})
}

func TestClient_ScreenSize(t *testing.T) {
	client := adb.New(adb.WithRunner(adbtest.New().On("shell wm size", adbtest.Output("Physical size: 1440x3040\n"))))
	size, err := client.ScreenSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &adb.Size{Width: 1440, Height: 3040}, size)

	client = adb.New(adb.WithRunner(adbtest.New().On("shell wm size", adbtest.Exit(1, ""))))
	size, err = client.ScreenSize(context.Background())
	require.NoError(t, err)
	assert.Nil(t, size)
}
