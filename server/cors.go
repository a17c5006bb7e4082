package server

import (
	"net/http"
	"strconv"
	"strings"
)

// CORS headers
const (
	AllowOriginHeader      = "Access-Control-Allow-Origin"
	AllowHeadersHeader     = "Access-Control-Allow-Headers"
	AllowMethodsHeader     = "Access-Control-Allow-Methods"
	RequestMethodHeader    = "Access-Control-Request-Method"
	AllowCredentialsHeader = "Access-Control-Allow-Credentials"
	ExposeHeadersHeader    = "Access-Control-Expose-Headers"
	MaxAgeHeader           = "Access-Control-Max-Age"
)

// Cors represents CORS settings of the HTTP transport
type Cors struct {
	AllowCredentials *bool    `yaml:"allowCredentials,omitempty" json:"allowCredentials,omitempty"`
	AllowHeaders     []string `yaml:"allowHeaders,omitempty" json:"allowHeaders,omitempty"`
	AllowMethods     []string `yaml:"allowMethods,omitempty" json:"allowMethods,omitempty"`
	AllowOrigins     []string `yaml:"allowOrigins,omitempty" json:"allowOrigins,omitempty"`
	ExposeHeaders    []string `yaml:"exposeHeaders,omitempty" json:"exposeHeaders,omitempty"`
	MaxAge           *int64   `yaml:"maxAge,omitempty" json:"maxAge,omitempty"`
}

func (c *Cors) allowed(origin string) bool {
	for _, candidate := range c.AllowOrigins {
		if candidate == "*" || candidate == origin {
			return true
		}
	}
	return false
}

type corsHandler struct {
	*Cors
}

func (h *corsHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.Cors.setHeaders(w, r)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *Cors) setHeaders(writer http.ResponseWriter, request *http.Request) {
	if c == nil {
		return
	}
	header := writer.Header()
	origin := request.Header.Get("Origin")
	switch {
	case origin == "" && c.allowed("*"):
		header.Set(AllowOriginHeader, "*")
	case origin != "" && c.allowed(origin):
		header.Set(AllowOriginHeader, origin)
	}
	if requestMethod := request.Header.Get(RequestMethodHeader); request.Method == http.MethodOptions && requestMethod != "" {
		header.Set(AllowMethodsHeader, requestMethod)
	} else if len(c.AllowMethods) > 0 {
		header.Set(AllowMethodsHeader, request.Method)
	}
	if len(c.AllowHeaders) > 0 {
		allowedHeaders := strings.Join(c.AllowHeaders, ", ")
		if allowedHeaders == "*" {
			allowedHeaders = "Content-Type, Mcp-Session-Id, " + protocolVersionHeader
		}
		header.Set(AllowHeadersHeader, allowedHeaders)
	}
	if c.AllowCredentials != nil {
		header.Set(AllowCredentialsHeader, strconv.FormatBool(*c.AllowCredentials))
	}
	if c.MaxAge != nil {
		header.Set(MaxAgeHeader, strconv.FormatInt(*c.MaxAge, 10))
	}
	if len(c.ExposeHeaders) > 0 {
		exposedHeaders := strings.Join(c.ExposeHeaders, ", ")
		if exposedHeaders == "*" {
			exposedHeaders = "Mcp-Session-Id, " + protocolVersionHeader
		}
		header.Set(ExposeHeadersHeader, exposedHeaders)
	}
}

// DefaultCors allows any origin
func DefaultCors() *Cors {
	return &Cors{
		AllowCredentials: &[]bool{true}[0],
		AllowHeaders:     []string{"*"},
		AllowMethods:     []string{"*"},
		AllowOrigins:     []string{"*"},
		ExposeHeaders:    []string{"*"},
	}
}
