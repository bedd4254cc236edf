package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/coursereg-backend/internal/auth"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

type sessionResolver interface {
	ResolveSession(ctx context.Context, token string) (ctxutil.Identity, error)
}

type adminVerifier interface {
	VerifyAdmin(ctx context.Context, token string) error
}

// EmployeeAuth requires a valid employee session, read from the session
// cookie or a Bearer header, and stores the identity in the context.
func EmployeeAuth(resolver sessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, auth.SessionCookie)
			if token == "" {
				writeUnauthorized(w)
				return
			}

			identity, err := resolver.ResolveSession(r.Context(), token)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			reportUser(w, identity.ID)
			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuth requires a valid admin token and marks the context as admin.
func AdminAuth(verifier adminVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, auth.AdminCookie)
			if token == "" || verifier.VerifyAdmin(r.Context(), token) != nil {
				writeUnauthorized(w)
				return
			}

			reportUser(w, "admin")
			next.ServeHTTP(w, r.WithContext(ctxutil.WithAdmin(r.Context())))
		})
	}
}

// tokenFromRequest prefers the named cookie and falls back to a Bearer header.
func tokenFromRequest(r *http.Request, cookie string) string {
	if c, err := r.Cookie(cookie); err == nil && c.Value != "" {
		return c.Value
	}
	return extractBearerToken(r)
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
}
