package adb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/adb/adbtest"
)

func TestClient_Shell(t *testing.T) {
	runner := adbtest.New().On("shell", &adb.Result{Stdout: []byte("out\n"), Stderr: []byte("warn\n")})
	client := adb.New(adb.WithRunner(runner))

	ok, output, err := client.Shell(context.Background(), "echo 'hi'", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "out\nwarn", output)

	_, _, err = client.Shell(context.Background(), "id", false)
	require.NoError(t, err)

	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"shell", `su -c 'echo '\''hi'\'''`}, calls[0].Args)
	assert.Equal(t, "echo 'hi'", adbtest.Unquote(calls[0].Args[1][len("su -c "):]))
	assert.Equal(t, []string{"shell", "id"}, calls[1].Args)
}

func TestClient_Logcat(t *testing.T) {
	runner := adbtest.New().On("logcat -d", adbtest.Output("I/Tag: hello\n"))
	client := adb.New(adb.WithRunner(runner))
	output, err := client.Logcat(context.Background(), 0, "Tag")
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "I/Tag: hello\n", *output)
	assert.Equal(t, []string{"logcat -d -t 100 -s Tag"}, runner.Commands())
}
