package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, user_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			if sw.userID != "" {
				attrs = append(attrs, slog.String("user_id", sw.userID))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code
// and the authenticated user reported by inner middleware.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	userID      string
}

// userReporter is implemented by writers that record the request's user.
type userReporter interface {
	reportUser(id string)
}

func (w *statusWriter) reportUser(id string) { w.userID = id }

// reportUser tells an enclosing Logger which user served the request.
func reportUser(w http.ResponseWriter, id string) {
	if ur, ok := w.(userReporter); ok {
		ur.reportUser(id)
	}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
