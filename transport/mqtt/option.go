package mqtt

import (
	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// Option configures the service
type Option func(s *Service)

// WithLogger sets the process logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClient sets a preconfigured paho client; Serve subscribes it once after connecting
func WithClient(client paho.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}
