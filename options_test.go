package androidmcp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

const testConfig = `
name: lab
device:
  serial: emulator-5554
  timeoutSec: 12
transport:
  type: streamable
  addr: 127.0.0.1:7000
  cors:
    allowOrigins: ["http://localhost:3000"]
log:
  level: debug
mqtt:
  broker: tcp://localhost:1883
  topicPrefix: lab
`

func uploadConfig(t *testing.T, URL string) {
	t.Helper()
	fs := afs.New()
	require.NoError(t, fs.Upload(context.Background(), URL, file.DefaultFileOsMode, strings.NewReader(testConfig)))
}

func TestLoadOptions(t *testing.T) {
	URL := "mem://localhost/android-mcp/load.yaml"
	uploadConfig(t, URL)
	options, err := LoadOptions(context.Background(), nil, URL)
	require.NoError(t, err)
	assert.Equal(t, "lab", options.Name)
	assert.Equal(t, "emulator-5554", options.Device.Serial)
	assert.Equal(t, 12, options.Device.TimeoutSec)
	assert.Equal(t, TransportStreamable, options.Transport.Type)
	require.NotNil(t, options.Transport.Cors)
	assert.Equal(t, []string{"http://localhost:3000"}, options.Transport.Cors.AllowOrigins)
	assert.Equal(t, "debug", options.Log.Level)
	assert.Equal(t, "lab", options.MQTT.TopicPrefix)

	_, err = LoadOptions(context.Background(), nil, "mem://localhost/android-mcp/missing.yaml")
	assert.Error(t, err)
}

func TestParseOptions(t *testing.T) {
	URL := "mem://localhost/android-mcp/parse.yaml"
	uploadConfig(t, URL)

	options, err := ParseOptions(context.Background(), []string{"-c", URL, "-s", "R58M", "--mqtt.device", "bench"})
	require.NoError(t, err)
	assert.Equal(t, "R58M", options.Device.Serial)
	assert.Equal(t, "bench", options.MQTT.Device)
	assert.Equal(t, "127.0.0.1:7000", options.Transport.Addr)
	assert.Equal(t, "tcp://localhost:1883", options.MQTT.Broker)

	options, err = ParseOptions(context.Background(), []string{"-T", "sse", "-a", ":5001", "--log.level", "warn"})
	require.NoError(t, err)
	assert.Equal(t, TransportSSE, options.Transport.Type)
	assert.Equal(t, ":5001", options.Transport.Addr)
	assert.Equal(t, "warn", options.Log.Level)

	_, err = ParseOptions(context.Background(), []string{"-T", "grpc"})
	assert.Error(t, err)
}

func TestOptions_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		options     *Options
		expectError bool
	}{
		{description: "defaults", options: &Options{}},
		{description: "http", options: &Options{Transport: TransportOption{Type: TransportSSE, Addr: ":5000"}}},
		{description: "stdio with addr", options: &Options{Transport: TransportOption{Addr: ":5000"}}, expectError: true},
		{description: "no transport", options: &Options{Transport: TransportOption{Type: TransportNone}}, expectError: true},
		{description: "unknown transport", options: &Options{Transport: TransportOption{Type: "ws"}}, expectError: true},
	}
	for _, testCase := range testCases {
		testCase.options.Init()
		err := testCase.options.Validate()
		if testCase.expectError {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}

	options := &Options{Device: DeviceOptions{Serial: "emulator-5554"}}
	options.Init()
	assert.Equal(t, "emulator-5554", options.MQTT.Device)
	assert.Equal(t, "adb", options.Device.ADBPath)
	assert.Equal(t, 30, options.Device.TimeoutSec)
}
