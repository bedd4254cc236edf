package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/coursereg-backend/internal/auth"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// employeeRepo defines the employee lookups needed by auth service.
type employeeRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

// otpRepo defines the OTP ledger operations needed by auth service.
type otpRepo interface {
	Replace(ctx context.Context, rec *domain.OTPRecord) error
	Get(ctx context.Context, employeeID string) (*domain.OTPRecord, error)
	Consume(ctx context.Context, employeeID, hashedOTP string) (bool, error)
	Delete(ctx context.Context, employeeID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// codeSender delivers a login code to an employee.
type codeSender interface {
	SendCode(ctx context.Context, m domain.OTPMessage) error
}

// codeHasher hashes and compares login codes.
type codeHasher interface {
	Hash(code string) (string, error)
	Compare(hash, code string) (bool, error)
}

// sessionManager issues and parses employee session tokens.
type sessionManager interface {
	Issue(id ctxutil.Identity) (string, error)
	Parse(token string) (ctxutil.Identity, error)
	TTL() time.Duration
}

// adminTokens issues and verifies admin session tokens.
type adminTokens interface {
	Issue(now time.Time) (string, error)
	Verify(token string, now time.Time) error
	TTL() time.Duration
}

// Service implements employee OTP login and admin authentication.
type Service struct {
	log       *slog.Logger
	employees employeeRepo
	otps      otpRepo
	sender    codeSender
	hasher    codeHasher
	sessions  sessionManager
	admin     adminTokens
	adminCred auth.AdminCredentials
	otpTTL    time.Duration

	newCode func() (string, error)
	now     func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	employees employeeRepo,
	otps otpRepo,
	sender codeSender,
	hasher codeHasher,
	sessions sessionManager,
	admin adminTokens,
	adminCred auth.AdminCredentials,
	otpTTL time.Duration,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		employees: employees,
		otps:      otps,
		sender:    sender,
		hasher:    hasher,
		sessions:  sessions,
		admin:     admin,
		adminCred: adminCred,
		otpTTL:    otpTTL,
		newCode:   auth.GenerateCode,
		now:       time.Now,
	}
}

// resolveEmployee tries every accepted form of raw in order and returns the
// first employee found. Returns domain.ErrEmployeeNotFound if none resolves.
func (s *Service) resolveEmployee(ctx context.Context, raw string) (*domain.Employee, error) {
	for _, candidate := range domain.EmployeeIDCandidates(raw) {
		emp, err := s.employees.GetByID(ctx, candidate)
		if err == nil {
			return emp, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("lookup employee %q: %w", candidate, err)
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func identityOf(emp *domain.Employee) ctxutil.Identity {
	return ctxutil.Identity{
		ID:         emp.EmployeeID,
		Name:       emp.Name,
		Email:      emp.Email,
		Department: emp.Department,
		Programme:  emp.Programme,
	}
}
