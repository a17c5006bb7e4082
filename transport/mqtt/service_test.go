package mqtt

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/adb/adbtest"
	"github.com/viant/android-mcp/tool"
)

type doneToken struct {
	err error
}

func (t *doneToken) Wait() bool                     { return true }
func (t *doneToken) WaitTimeout(time.Duration) bool { return true }
func (t *doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *doneToken) Error() error { return t.err }

type published struct {
	topic   string
	payload []byte
}

type recordingPublisher struct {
	mux      sync.Mutex
	messages []*published
}

func (p *recordingPublisher) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.messages = append(p.messages, &published{topic: topic, payload: payload.([]byte)})
	return &doneToken{}
}

type message struct {
	topic   string
	payload []byte
}

func (m *message) Duplicate() bool   { return false }
func (m *message) Qos() byte         { return 0 }
func (m *message) Retained() bool    { return false }
func (m *message) Topic() string     { return m.topic }
func (m *message) MessageID() uint16 { return 1 }
func (m *message) Payload() []byte   { return m.payload }
func (m *message) Ack()              {}

type subscription struct {
	topic    string
	qos      byte
	callback paho.MessageHandler
}

type fakeClient struct {
	recordingPublisher
	connects      int
	subscriptions []*subscription
	unsubscribed  []string
	disconnected  bool
}

func (c *fakeClient) IsConnected() bool      { return true }
func (c *fakeClient) IsConnectionOpen() bool { return true }
func (c *fakeClient) Connect() paho.Token {
	c.connects++
	return &doneToken{}
}
func (c *fakeClient) Disconnect(uint) { c.disconnected = true }
func (c *fakeClient) Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.subscriptions = append(c.subscriptions, &subscription{topic: topic, qos: qos, callback: callback})
	return &doneToken{}
}
func (c *fakeClient) SubscribeMultiple(map[string]byte, paho.MessageHandler) paho.Token {
	return &doneToken{}
}
func (c *fakeClient) Unsubscribe(topics ...string) paho.Token {
	c.unsubscribed = append(c.unsubscribed, topics...)
	return &doneToken{}
}
func (c *fakeClient) AddRoute(string, paho.MessageHandler)    {}
func (c *fakeClient) OptionsReader() paho.ClientOptionsReader { return paho.ClientOptionsReader{} }

func newTestService(t *testing.T, runner adb.Runner) *Service {
	t.Helper()
	registry, err := tool.NewAndroid(adb.New(adb.WithRunner(runner)))
	require.NoError(t, err)
	service, err := New(registry, &Config{Broker: "tcp://localhost:1883", Device: "pixel"})
	require.NoError(t, err)
	return service
}

func TestConfig(t *testing.T) {
	config := &Config{Broker: "tcp://localhost:1883", TopicPrefix: "/lab/"}
	config.Init()
	assert.Equal(t, "lab/default/command", config.CommandTopic())
	assert.Equal(t, "lab/default/response", config.ResponseTopic())
	assert.Equal(t, "android-mcp-default", config.ClientID)
	assert.NoError(t, config.Validate())

	assert.False(t, (&Config{}).Enabled())
	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Broker: "tcp://x:1883", QoS: 3}).Validate())
}

func TestService_Handle(t *testing.T) {
	service := newTestService(t, adbtest.New())

	var testCases = []struct {
		description   string
		payload       string
		expectID      string
		expectSuccess bool
		expectError   string
		expectText    string
		expectListed  bool
	}{
		{
			description:   "call",
			payload:       `{"id":"1","method":"call","name":"tap","arguments":{"x":10,"y":20}}`,
			expectID:      "1",
			expectSuccess: true,
			expectText:    "Tap at (10, 20): Success",
		},
		{
			description:   "default method",
			payload:       `{"id":"2","name":"press_key","arguments":{"keycode":"KEYCODE_HOME"}}`,
			expectID:      "2",
			expectSuccess: true,
		},
		{
			description:   "list",
			payload:       `{"id":"3","method":"list"}`,
			expectID:      "3",
			expectSuccess: true,
			expectListed:  true,
		},
		{
			description: "unknown operation",
			payload:     `{"id":"4","name":"fly"}`,
			expectID:    "4",
			expectText:  "unsupported operation: fly",
		},
		{
			description: "unknown method",
			payload:     `{"id":"5","method":"stream"}`,
			expectID:    "5",
			expectError: "unsupported method: stream",
		},
		{
			description: "invalid payload",
			payload:     `{`,
			expectError: "invalid request",
		},
		{
			description:   "generated id",
			payload:       `{"method":"list"}`,
			expectSuccess: true,
			expectListed:  true,
		},
	}

	for _, testCase := range testCases {
		reply := service.Handle(context.Background(), []byte(testCase.payload))
		if testCase.expectID != "" {
			assert.Equal(t, testCase.expectID, reply.ID, testCase.description)
		} else {
			assert.NotEmpty(t, reply.ID, testCase.description)
		}
		assert.Equal(t, testCase.expectSuccess, reply.Success, testCase.description)
		if testCase.expectError != "" {
			assert.Contains(t, reply.Error, testCase.expectError, testCase.description)
		}
		if testCase.expectText != "" {
			require.NotNil(t, reply.Response, testCase.description)
			assert.Equal(t, testCase.expectText, reply.Response.Text, testCase.description)
		}
		assert.Equal(t, testCase.expectListed, len(reply.Operations) > 0, testCase.description)
	}
}

func TestService_OnMessage(t *testing.T) {
	service := newTestService(t, adbtest.New().On("exec-out screencap -p", adbtest.Binary([]byte("png"))))
	publisher := &recordingPublisher{}
	service.publisher = publisher

	service.onMessage(nil, &message{topic: "android/pixel/command", payload: []byte(`{"id":"9","name":"get_screenshot"}`)})
	service.pending.Wait()

	require.Len(t, publisher.messages, 1)
	assert.Equal(t, "android/pixel/response", publisher.messages[0].topic)
	reply := &Reply{}
	require.NoError(t, json.Unmarshal(publisher.messages[0].payload, reply))
	assert.Equal(t, "9", reply.ID)
	assert.True(t, reply.Success)
	require.NotNil(t, reply.Response)
	assert.Equal(t, tool.KindBinary, reply.Response.Kind)
	assert.Equal(t, []byte("png"), reply.Response.Binary)
}

func TestNew(t *testing.T) {
	_, err := New(nil, &Config{Broker: "tcp://localhost:1883"})
	assert.Error(t, err)
	registry := tool.NewRegistry()
	_, err = New(registry, &Config{})
	assert.Error(t, err)
}

func TestService_ResubscribeOnReconnect(t *testing.T) {
	registry, err := tool.NewAndroid(adb.New(adb.WithRunner(adbtest.New())))
	require.NoError(t, err)
	service, err := New(registry, &Config{Broker: "tcp://localhost:1883", Device: "pixel", QoS: 1})
	require.NoError(t, err)
	assert.True(t, service.ownsClient)

	opts := service.clientOptions()
	require.NotNil(t, opts.OnConnect)
	assert.True(t, opts.AutoReconnect)

	client := &fakeClient{}
	service.publisher = client
	opts.OnConnect(client)
	opts.OnConnect(client)

	require.Len(t, client.subscriptions, 2)
	for _, sub := range client.subscriptions {
		assert.Equal(t, "android/pixel/command", sub.topic)
		assert.Equal(t, byte(1), sub.qos)
	}

	client.subscriptions[1].callback(client, &message{topic: "android/pixel/command", payload: []byte(`{"id":"r1","name":"tap","arguments":{"x":1,"y":2}}`)})
	service.pending.Wait()
	require.Len(t, client.messages, 1)
	reply := &Reply{}
	require.NoError(t, json.Unmarshal(client.messages[0].payload, reply))
	assert.Equal(t, "r1", reply.ID)
	assert.True(t, reply.Success)
}

func TestService_Serve_ProvidedClient(t *testing.T) {
	registry, err := tool.NewAndroid(adb.New(adb.WithRunner(adbtest.New())))
	require.NoError(t, err)
	client := &fakeClient{}
	service, err := New(registry, &Config{Broker: "tcp://localhost:1883", Device: "pixel"}, WithClient(client))
	require.NoError(t, err)
	assert.False(t, service.ownsClient)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- service.Serve(ctx) }()
	require.Eventually(t, func() bool {
		client.mux.Lock()
		defer client.mux.Unlock()
		return len(client.subscriptions) == 1
	}, time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, 1, client.connects)
	assert.Equal(t, []string{"android/pixel/command"}, client.unsubscribed)
	assert.True(t, client.disconnected)
}
