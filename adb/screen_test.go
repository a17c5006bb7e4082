package adb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/adb/adbtest"
)

func TestClient_Screenshot(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}
	var testCases = []struct {
		description string
		result      *adb.Result
		expect      []byte
	}{
		{description: "captured", result: adbtest.Binary(png), expect: png},
		{description: "empty output", result: adbtest.Binary(nil)},
		{description: "failed capture", result: &adb.Result{ExitCode: 1, Stdout: png}},
	}
	for _, testCase := range testCases {
		client := adb.New(adb.WithRunner(adbtest.New().On("exec-out screencap -p", testCase.result)))
		actual, err := client.Screenshot(context.Background())
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestClient_UIHierarchy(t *testing.T) {
	t.Run("dump read remove", func(t *testing.T) {
		xml := `<?xml version="1.0" encoding="UTF-8"?><hierarchy rotation="0"></hierarchy>`
		runner := adbtest.New().
			On("shell uiautomator dump", adbtest.Output("UI hierchary dumped to: /sdcard/window_dump.xml\n")).
			On("shell cat", adbtest.Output(xml))
		client := adb.New(adb.WithRunner(runner))
		actual, err := client.UIHierarchy(context.Background())
		require.NoError(t, err)
		require.NotNil(t, actual)
		assert.Equal(t, xml, *actual)
		assert.Equal(t, []string{
			"shell uiautomator dump " + adb.UIDumpPath,
			"shell cat " + adb.UIDumpPath,
			"shell rm " + adb.UIDumpPath,
		}, runner.Commands())
	})

	t.Run("dump failed", func(t *testing.T) {
		runner := adbtest.New().On("shell uiautomator dump", adbtest.Exit(1, "ERROR: could not get idle state."))
		client := adb.New(adb.WithRunner(runner))
		actual, err := client.UIHierarchy(context.Background())
		require.NoError(t, err)
		assert.Nil(t, actual)
		assert.False(t, runner.Invoked("shell cat"))
		assert.False(t, runner.Invoked("shell rm"))
	})

	t.Run("cleanup failure ignored", func(t *testing.T) {
		runner := adbtest.New().
			On("shell cat", adbtest.Output("<hierarchy/>")).
			On("shell rm", adbtest.Exit(1, "rm: Permission denied"))
		client := adb.New(adb.WithRunner(runner))
		actual, err := client.UIHierarchy(context.Background())
		require.NoError(t, err)
		require.NotNil(t, actual)
		assert.Equal(t, "<hierarchy/>", *actual)
	})

	t.Run("cleanup after failed read", func(t *testing.T) {
		runner := adbtest.New().On("shell cat", adbtest.Exit(1, "No such file"))
		client := adb.New(adb.WithRunner(runner))
		actual, err := client.UIHierarchy(context.Background())
		require.NoError(t, err)
		assert.Nil(t, actual)
		assert.True(t, runner.Invoked("shell rm "+adb.UIDumpPath))
	})
}

func TestClient_CurrentApp(t *testing.T) {
	runner := adbtest.New().On("shell dumpsys window windows", adbtest.Output(
		"  mCurrentFocus=Window{1a2b u0 com.android.settings/com.android.settings.Settings}\r\n"+
			"  mFocusedApp=ActivityRecord{3c4d u0 com.android.chrome/.Main t9}\r\n"))
	client := adb.New(adb.WithRunner(runner))
	actual, err := client.CurrentApp(context.Background())
	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.Equal(t, "com.android.settings", actual.Package)
	assert.Equal(t, "com.android.settings.Settings", actual.Activity)

	client = adb.New(adb.WithRunner(adbtest.New().On("shell dumpsys", adbtest.Output("mCurrentFocus=null\n"))))
	actual, err = client.CurrentApp(context.Background())
	require.NoError(t, err)
	assert.Nil(t, actual)
}
