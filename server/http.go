package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/viant/jsonrpc/transport/server/http/sse"
	"github.com/viant/jsonrpc/transport/server/http/streamable"
)

// Default HTTP settings
const (
	DefaultAddr          = "127.0.0.1:5000"
	DefaultSSEURI        = "/sse"
	DefaultMessageURI    = "/message"
	DefaultStreamableURI = "/mcp"
	HealthURI            = "/healthz"
)

type httpServer struct {
	useStreamableHTTP  bool
	addr               string
	corsConfig         *Cors
	customHTTPHandlers map[string]http.Handler
	rootRedirect       bool
}

// Router returns an HTTP router serving SSE and streamable MCP transports
func (s *Server) Router() *mux.Router {
	sseHandler := sse.New(s.NewHandler,
		sse.WithURI(DefaultSSEURI),
		sse.WithMessageURI(DefaultMessageURI),
	)
	streamingHandler := streamable.New(s.NewHandler,
		streamable.WithURI(DefaultStreamableURI),
	)
	middlewares := []Middleware{protocolVersionMiddleware()}
	if s.corsConfig != nil {
		middlewares = append(middlewares, (&corsHandler{Cors: s.corsConfig}).Middleware)
		middlewares = append(middlewares, originValidationMiddleware(s.corsConfig.AllowOrigins))
	}
	sseChain := ChainMiddlewareHandlers(sseHandler, middlewares...)
	streamChain := ChainMiddlewareHandlers(streamingHandler, middlewares...)

	router := mux.NewRouter()
	router.HandleFunc(HealthURI, s.health).Methods(http.MethodGet)
	for path, handler := range s.customHTTPHandlers {
		router.Handle(path, handler)
	}
	router.Handle(DefaultSSEURI, sseChain)
	router.Handle(DefaultMessageURI, sseChain)
	router.Handle(DefaultStreamableURI, streamChain)
	if s.rootRedirect {
		router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			target := DefaultSSEURI
			if s.useStreamableHTTP {
				target = DefaultStreamableURI
			}
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		})
	}
	return router
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// HTTP creates an HTTP server; an empty addr falls back to the configured one, then localhost
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	if addr == "" {
		addr = DefaultAddr
	}
	return &http.Server{Addr: addr, Handler: s.Router()}
}
