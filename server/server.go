package server

import (
	"context"
	"errors"

	"github.com/viant/android-mcp/tool"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcp-protocol/syncmap"
	"go.uber.org/zap"
)

// Server represents MCP protocol front of an operation registry
type Server struct {
	registry        *tool.Registry
	info            schema.Implementation
	instructions    *string
	protocolVersion string
	loggerName      string
	logger          *zap.Logger

	httpServer
	stdioServer
}

// Registry returns the served registry
func (s *Server) Registry() *tool.Registry {
	return s.registry
}

// NewHandler creates a new handler instance for a transport session
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport)
}

func (s *Server) newHandler(_ context.Context, notifier transport.Notifier) *Handler {
	ret := &Handler{
		Server:         s,
		Notifier:       notifier,
		loggingLevel:   schema.Info,
		activeContexts: syncmap.NewMap[string, *activeContext](),
	}
	ret.Logger = NewLogger(s.loggerName, &ret.loggingLevel, notifier)
	return ret
}

// New creates a new Server instance
func New(registry *tool.Registry, options ...Option) (*Server, error) {
	if registry == nil {
		return nil, errors.New("registry was nil")
	}
	s := &Server{
		registry: registry,
		info: schema.Implementation{
			Name:    "android-mcp",
			Version: "0.1",
		},
		loggerName:      "android",
		protocolVersion: schema.LatestProtocolVersion,
		logger:          zap.NewNop(),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}
