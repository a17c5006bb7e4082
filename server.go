package androidmcp

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viant/android-mcp/server"
	"github.com/viant/android-mcp/tool"
	"github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// MetricsURI serves prometheus metrics on HTTP transports
const MetricsURI = "/metrics"

// NewServer creates an MCP server exposing registry with the given options
func NewServer(registry *tool.Registry, options *Options, logger *zap.Logger) (*server.Server, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry was nil")
	}
	if options == nil {
		options = &Options{}
	}
	serverOptions := []server.Option{
		server.WithLogger(logger),
		server.WithProtocolVersion(options.ProtocolVersion),
		server.WithInstructions(options.Instructions),
		server.WithLoggerName(options.Name),
	}
	if options.Name != "" || options.Version != "" {
		serverOptions = append(serverOptions, server.WithImplementation(schema.Implementation{
			Name:    options.Name,
			Version: options.Version,
		}))
	}
	transport := options.Transport
	if transport.HTTP() {
		serverOptions = append(serverOptions,
			server.WithAddr(transport.Addr),
			server.WithStreamableHTTP(transport.Type == TransportStreamable),
			server.WithRootRedirect(transport.RootRedirect),
			server.WithHTTPHandler(MetricsURI, promhttp.Handler()),
		)
		if transport.Cors != nil {
			serverOptions = append(serverOptions, server.WithCORS(transport.Cors))
		}
	}
	return server.New(registry, serverOptions...)
}
