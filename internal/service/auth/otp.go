package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/coursereg-backend/internal/auth"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// RequestCode issues a fresh login code for the employee, replacing any
// previous one, and emails it. Exactly one email is sent per call.
func (s *Service) RequestCode(ctx context.Context, input RequestCodeInput) (*CodeRequestResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.resolveEmployee(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth.RequestCode: %w", err)
	}

	code, err := s.newCode()
	if err != nil {
		return nil, fmt.Errorf("auth.RequestCode: %w", err)
	}
	hash, err := s.hasher.Hash(code)
	if err != nil {
		return nil, fmt.Errorf("auth.RequestCode: %w", err)
	}

	now := s.now()
	rec := &domain.OTPRecord{
		EmployeeID: emp.EmployeeID,
		HashedOTP:  hash,
		ExpiresAt:  now.Add(s.otpTTL),
		CreatedAt:  now,
	}
	if err := s.otps.Replace(ctx, rec); err != nil {
		return nil, fmt.Errorf("auth.RequestCode store: %w", err)
	}

	// A failed send leaves the stored code in place; the next request replaces it.
	err = s.sender.SendCode(ctx, domain.OTPMessage{
		To:         emp.Email,
		Name:       emp.Name,
		EmployeeID: emp.EmployeeID,
		Code:       code,
		TTL:        s.otpTTL,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "otp email failed",
			slog.String("employee_id", emp.EmployeeID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("auth.RequestCode send: %w", err)
	}

	s.log.InfoContext(ctx, "otp issued",
		slog.String("employee_id", emp.EmployeeID),
		slog.Time("expires_at", rec.ExpiresAt))

	return &CodeRequestResult{
		MaskedEmail: auth.MaskEmail(emp.Email),
		EmployeeID:  emp.EmployeeID,
	}, nil
}

// VerifyCode checks a login code and, on success, consumes it and opens an
// employee session. The code can be consumed at most once.
func (s *Service) VerifyCode(ctx context.Context, input VerifyCodeInput) (*SessionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.resolveEmployee(ctx, input.EmployeeID)
	if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("auth.VerifyCode: %w", err)
	}

	otpKey := strings.TrimSpace(input.EmployeeID)
	if emp != nil {
		otpKey = emp.EmployeeID
	}

	rec, err := s.otps.Get(ctx, otpKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrOTPNotFound
		}
		return nil, fmt.Errorf("auth.VerifyCode get: %w", err)
	}

	if rec.IsExpired(s.now()) {
		if err := s.otps.Delete(ctx, otpKey); err != nil {
			s.log.WarnContext(ctx, "delete expired otp failed",
				slog.String("employee_id", otpKey),
				slog.String("error", err.Error()))
		}
		return nil, domain.ErrOTPExpired
	}

	ok, err := s.hasher.Compare(rec.HashedOTP, strings.TrimSpace(input.Code))
	if err != nil {
		return nil, fmt.Errorf("auth.VerifyCode compare: %w", err)
	}
	if !ok {
		return nil, domain.ErrOTPInvalid
	}

	consumed, err := s.otps.Consume(ctx, otpKey, rec.HashedOTP)
	if err != nil {
		return nil, fmt.Errorf("auth.VerifyCode consume: %w", err)
	}
	if !consumed {
		// A concurrent verify or a newer request got there first.
		return nil, domain.ErrOTPNotFound
	}

	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	identity := identityOf(emp)
	token, err := s.sessions.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("auth.VerifyCode issue session: %w", err)
	}

	s.log.InfoContext(ctx, "employee logged in", slog.String("employee_id", emp.EmployeeID))

	return &SessionResult{
		Token:     token,
		ExpiresAt: s.now().Add(s.sessions.TTL()),
		Identity:  identity,
	}, nil
}

// CleanupExpiredCodes removes expired codes. This is a maintenance operation
// run on a schedule; reads also check expiry, so it only reclaims space.
func (s *Service) CleanupExpiredCodes(ctx context.Context) (int64, error) {
	count, err := s.otps.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "otp cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredCodes: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired otps", slog.Int64("count", count))
	}

	return count, nil
}
