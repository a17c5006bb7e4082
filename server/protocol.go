package server

import (
	"net/http"

	"github.com/viant/mcp-protocol/schema"
)

const protocolVersionHeader = "MCP-Protocol-Version"

// protocolVersionMiddleware rejects requests announcing an unsupported protocol version
func protocolVersionMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if version := r.Header.Get(protocolVersionHeader); version != "" && version != schema.LatestProtocolVersion {
				http.Error(w, "invalid "+protocolVersionHeader, http.StatusBadRequest)
				return
			}
			w.Header().Set(protocolVersionHeader, schema.LatestProtocolVersion)
			next.ServeHTTP(w, r)
		})
	}
}
