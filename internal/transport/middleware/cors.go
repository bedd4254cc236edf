package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/coursereg-backend/internal/config"
)

// exposedHeaders lets the browser read the request ID and the export
// filename on cross-origin responses.
var exposedHeaders = strings.Join([]string{RequestIDHeader, "Content-Disposition"}, ", ")

// CORS handles cross-origin requests from the portal front end. Allowed
// origins are echoed back so cookies work with credentials enabled.
// Preflights from other origins are refused with 403.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && isAllowedOrigin(origin, origins)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				writeJSONError(w, http.StatusForbidden, "origin not allowed")
				return
			}
			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func isAllowedOrigin(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}
