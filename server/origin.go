package server

import "net/http"

// originValidationMiddleware rejects browser requests whose Origin is not allowed; "*" allows any
func originValidationMiddleware(allowed []string) Middleware {
	allowedMap := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		allowedMap[origin] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || allowedMap["*"] || allowedMap[origin] {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "origin not allowed", http.StatusForbidden)
		})
	}
}
