package tool

import (
	"github.com/viant/android-mcp/internal/stage"
	"go.uber.org/zap"
)

// Option represents a registry option
type Option func(r *Registry)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStage sets the file staging service used by transfer operations
func WithStage(service *stage.Service) Option {
	return func(r *Registry) {
		if service != nil {
			r.stage = service
		}
	}
}
