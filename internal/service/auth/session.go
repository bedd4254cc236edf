package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// ResolveSession turns an employee session token into an identity.
// Returns ErrUnauthorized if the token is missing, invalid, or expired.
func (s *Service) ResolveSession(ctx context.Context, token string) (ctxutil.Identity, error) {
	id, err := s.sessions.Parse(token)
	if err != nil {
		s.log.DebugContext(ctx, "session rejected", slog.String("error", err.Error()))
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

// SessionTTL is the lifetime of employee sessions in seconds.
func (s *Service) SessionTTL() int {
	return int(s.sessions.TTL().Seconds())
}
