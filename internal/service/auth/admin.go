package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// AdminLogin checks the admin credentials and opens an admin session.
// Returns ErrUnauthorized on mismatch or when no admin is configured.
func (s *Service) AdminLogin(ctx context.Context, input AdminLoginInput) (*AdminSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !s.adminCred.Match(input.Username, input.Password) {
		s.log.WarnContext(ctx, "admin login rejected", slog.String("username", input.Username))
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	token, err := s.admin.Issue(now)
	if err != nil {
		return nil, fmt.Errorf("auth.AdminLogin: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in")

	return &AdminSession{Token: token, ExpiresAt: now.Add(s.admin.TTL())}, nil
}

// VerifyAdmin checks an admin session token.
// Returns ErrUnauthorized if the token is missing, forged, or expired.
func (s *Service) VerifyAdmin(ctx context.Context, token string) error {
	if err := s.admin.Verify(token, s.now()); err != nil {
		s.log.DebugContext(ctx, "admin token rejected", slog.String("error", err.Error()))
		return domain.ErrUnauthorized
	}
	return nil
}

// AdminSessionTTL is the lifetime of admin sessions in seconds.
func (s *Service) AdminSessionTTL() int {
	return int(s.admin.TTL().Seconds())
}
