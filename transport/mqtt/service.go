package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/viant/android-mcp/tool"
	"go.uber.org/zap"
)

const operationTimeout = 10 * time.Second

// publisher is the subset of paho.Client replies are sent through
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// Service serves a registry over MQTT command/response topics
type Service struct {
	config     *Config
	registry   *tool.Registry
	client     paho.Client
	ownsClient bool
	publisher  publisher
	logger     *zap.Logger
	ctx        context.Context
	pending    sync.WaitGroup
}

// Handle decodes a request payload, dispatches it and returns the reply
func (s *Service) Handle(ctx context.Context, payload []byte) *Reply {
	started := time.Now()
	request := &Request{}
	reply := &Reply{}
	if err := json.Unmarshal(payload, request); err != nil {
		reply.ID = uuid.New().String()
		reply.Error = fmt.Sprintf("invalid request: %v", err)
		return s.finish(reply, started)
	}
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.Method == "" {
		request.Method = MethodCall
	}
	reply.ID, reply.Method, reply.Name = request.ID, request.Method, request.Name
	switch request.Method {
	case MethodList:
		reply.Operations = s.registry.Descriptors()
		reply.Success = true
	case MethodCall:
		reply.Response = s.registry.Invoke(ctx, request.Name, request.Arguments)
		reply.Success = reply.Response.Success()
	default:
		reply.Error = fmt.Sprintf("unsupported method: %v", request.Method)
	}
	return s.finish(reply, started)
}

func (s *Service) finish(reply *Reply, started time.Time) *Reply {
	reply.DurationMs = time.Since(started).Milliseconds()
	reply.Timestamp = time.Now().Unix()
	return reply
}

func (s *Service) onMessage(_ paho.Client, message paho.Message) {
	payload := message.Payload()
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx := s.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		reply := s.Handle(ctx, payload)
		if err := s.publish(reply); err != nil {
			s.logger.Error("failed to publish reply", zap.String("id", reply.ID), zap.Error(err))
			return
		}
		s.logger.Debug("mqtt request served",
			zap.String("id", reply.ID),
			zap.String("name", reply.Name),
			zap.Bool("success", reply.Success),
			zap.Int64("durationMs", reply.DurationMs))
	}()
}

func (s *Service) publish(reply *Reply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	token := s.publisher.Publish(s.config.ResponseTopic(), s.config.QoS, false, payload)
	if !token.WaitTimeout(operationTimeout) {
		return fmt.Errorf("publish to %v timed out", s.config.ResponseTopic())
	}
	return token.Error()
}

// subscribe subscribes the command topic; it runs on every (re)connect
func (s *Service) subscribe(client paho.Client) error {
	topic := s.config.CommandTopic()
	token := client.Subscribe(topic, s.config.QoS, s.onMessage)
	if !token.WaitTimeout(operationTimeout) {
		return fmt.Errorf("subscribe to %v timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to subscribe %v: %w", topic, err)
	}
	return nil
}

func (s *Service) onConnect(client paho.Client) {
	if err := s.subscribe(client); err != nil {
		s.logger.Error("mqtt subscription failed", zap.Error(err))
		return
	}
	s.logger.Info("mqtt subscribed", zap.String("broker", s.config.Broker), zap.String("topic", s.config.CommandTopic()))
}

// Serve connects to the broker and blocks until ctx is done.
// Clients built by New subscribe from their on-connect handler, so the
// subscription is restored after an automatic reconnect.
func (s *Service) Serve(ctx context.Context) error {
	s.ctx = ctx
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to %v: %w", s.config.Broker, token.Error())
	}
	if !s.ownsClient {
		if err := s.subscribe(s.client); err != nil {
			s.client.Disconnect(250)
			return err
		}
	}
	s.logger.Info("mqtt transport started", zap.String("broker", s.config.Broker), zap.String("topic", s.config.CommandTopic()))
	<-ctx.Done()
	s.client.Unsubscribe(s.config.CommandTopic()).WaitTimeout(operationTimeout)
	s.pending.Wait()
	s.client.Disconnect(250)
	return nil
}

func (s *Service) clientOptions() *paho.ClientOptions {
	opts := paho.NewClientOptions().AddBroker(s.config.Broker)
	opts.SetClientID(s.config.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(s.onConnect)
	if s.config.Username != "" {
		opts.SetUsername(s.config.Username)
		opts.SetPassword(s.config.Password)
	}
	return opts
}

// New creates an MQTT transport service
func New(registry *tool.Registry, config *Config, options ...Option) (*Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry was nil")
	}
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ret := &Service{config: config, registry: registry, logger: zap.NewNop()}
	for _, option := range options {
		option(ret)
	}
	if ret.client == nil {
		ret.client = paho.NewClient(ret.clientOptions())
		ret.ownsClient = true
	}
	if ret.publisher == nil {
		ret.publisher = ret.client
	}
	return ret, nil
}
