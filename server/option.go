package server

import (
	"net/http"

	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithCORS adds a new CORS handler to the server.
func WithCORS(cors *Cors) Option {
	return func(s *Server) error {
		s.corsConfig = cors
		return nil
	}
}

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithProtocolVersion sets the protocol version announced on initialize.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		if version != "" {
			s.protocolVersion = version
		}
		return nil
	}
}

// WithInstructions sets instructions returned on initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		if instructions != "" {
			s.instructions = &instructions
		}
		return nil
	}
}

// WithLogger sets the process logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithLoggerName sets the name of the protocol logger.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithAddr sets the default HTTP listen address.
func WithAddr(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithStreamableHTTP selects streamable HTTP as the primary HTTP transport.
func WithStreamableHTTP(flag bool) Option {
	return func(s *Server) error {
		s.useStreamableHTTP = flag
		return nil
	}
}

// WithHTTPHandler mounts an extra handler on the HTTP router.
func WithHTTPHandler(path string, handler http.Handler) Option {
	return func(s *Server) error {
		if s.customHTTPHandlers == nil {
			s.customHTTPHandlers = map[string]http.Handler{}
		}
		s.customHTTPHandlers[path] = handler
		return nil
	}
}

// WithRootRedirect redirects "/" to the active HTTP transport.
func WithRootRedirect(flag bool) Option {
	return func(s *Server) error {
		s.rootRedirect = flag
		return nil
	}
}

// WithStdioOptions sets stdio transport options.
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) error {
		s.stdioServerOption = append(s.stdioServerOption, options...)
		return nil
	}
}
