package ctxutil

import "context"

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
)

// Identity is the authenticated employee attached to a request.
type Identity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Programme  string `json:"programme"`
}

// WithIdentity stores the employee identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the employee identity from the context.
// Returns false if the value is missing, has an empty ID, or is the wrong type.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.ID == "" {
		return Identity{}, false
	}
	return id, true
}

// UserIDFromCtx returns the employee ID of the identity in ctx, or "".
func UserIDFromCtx(ctx context.Context) string {
	id, _ := IdentityFromCtx(ctx)
	return id.ID
}

// WithAdmin marks the context as belonging to an authenticated admin.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

// IsAdminCtx reports whether the context carries an admin session.
func IsAdminCtx(ctx context.Context) bool {
	ok, _ := ctx.Value(adminKey).(bool)
	return ok
}

// ActorFromCtx names who is acting in ctx for audit purposes: "admin" for an
// admin session, the employee ID for an employee session, "system" otherwise.
func ActorFromCtx(ctx context.Context) string {
	if IsAdminCtx(ctx) {
		return "admin"
	}
	if id := UserIDFromCtx(ctx); id != "" {
		return id
	}
	return "system"
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
