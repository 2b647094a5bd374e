package handlers

import (
	"net/http"
	"strings"
)

// CORS applies the configured origin allowlist to submit routes and
// answers preflight requests. Allowed origins are echoed back; a
// configured "*" allows any storefront.
func (h *Handlers) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		allowed := h.allowOrigin(origin)

		headers := w.Header()
		if allowed != "" {
			headers.Set("Access-Control-Allow-Origin", allowed)
		}
		headers.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		headers.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		headers.Set("Access-Control-Max-Age", "86400")
		headers.Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) allowOrigin(origin string) string {
	for _, entry := range h.config.CORSOrigins {
		entry = strings.TrimSpace(entry)
		if entry == "*" {
			return "*"
		}
		if origin != "" && strings.EqualFold(entry, origin) {
			return origin
		}
	}
	return ""
}
