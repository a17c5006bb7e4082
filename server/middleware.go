package server

import "net/http"

// Middleware wraps an http.Handler
type Middleware func(next http.Handler) http.Handler

// ChainMiddlewareHandlers applies middlewares so that the first one is outermost
func ChainMiddlewareHandlers(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
