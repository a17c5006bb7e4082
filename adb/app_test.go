package adb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/adb/adbtest"
)

func TestClient_StartApp(t *testing.T) {
	runner := adbtest.New()
	client := adb.New(adb.WithRunner(runner))
	_, err := client.StartApp(context.Background(), "com.android.settings", ".Settings")
	require.NoError(t, err)
	_, err = client.StartApp(context.Background(), "com.android.settings", "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"shell am start -n com.android.settings/.Settings",
		"shell monkey -p com.android.settings -c android.intent.category.LAUNCHER 1",
	}, runner.Commands())
}

func TestClient_InstallAPK(t *testing.T) {
	runner := adbtest.New().On("install", &adb.Result{ExitCode: 1, Stdout: []byte("Performing Streamed Install\n"), Stderr: []byte("adb: failed to install app.apk: INSTALL_FAILED_OLDER_SDK\n")})
	client := adb.New(adb.WithRunner(runner))
	ok, message, err := client.InstallAPK(context.Background(), "/tmp/app.apk", true)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Performing Streamed Install\nadb: failed to install app.apk: INSTALL_FAILED_OLDER_SDK", message)
	assert.Equal(t, []string{"install -r /tmp/app.apk"}, runner.Commands())
}

func TestClient_ListPackages(t *testing.T) {
	var testCases = []struct {
		description string
		filter      string
		command     string
	}{
		{description: "all", filter: adb.PackagesAll, command: "shell pm list packages"},
		{description: "system", filter: adb.PackagesSystem, command: "shell pm list packages -s"},
		{description: "third party", filter: adb.PackagesThirdParty, command: "shell pm list packages -3"},
		{description: "enabled", filter: adb.PackagesEnabled, command: "shell pm list packages -e"},
		{description: "disabled", filter: adb.PackagesDisabled, command: "shell pm list packages -d"},
		{description: "unknown", filter: "bogus", command: "shell pm list packages"},
	}
	for _, testCase := range testCases {
		runner := adbtest.New().On("shell pm list packages", adbtest.Output("package:com.a\r\npackage:com.b\r\n"))
		client := adb.New(adb.WithRunner(runner))
		actual, err := client.ListPackages(context.Background(), testCase.filter)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, []string{"com.a", "com.b"}, actual, testCase.description)
		assert.Equal(t, []string{testCase.command}, runner.Commands(), testCase.description)
	}
}

func TestClient_AppInfo(t *testing.T) {
	runner := adbtest.New().On("shell dumpsys package com.a", adbtest.Output("    versionCode=42 minSdk=24\n    versionName=1.4.2\n"))
	client := adb.New(adb.WithRunner(runner))
	info, err := client.AppInfo(context.Background(), "com.a")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"package": "com.a", "version_code": "42", "version_name": "1.4.2"}, info)

	client = adb.New(adb.WithRunner(adbtest.New().On("shell dumpsys", adbtest.Exit(1, ""))))
	info, err = client.AppInfo(context.Background(), "com.a")
	require.NoError(t, err)
	assert.Nil(t, info)
}
