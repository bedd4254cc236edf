package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

type employeeRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	Upsert(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

// identityStore is a registration store whose identity snapshots follow
// employee edits.
type identityStore interface {
	UpdateIdentity(ctx context.Context, userID string, patch domain.IdentityPatch) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin management of the employee credential store.
type Service struct {
	log        *slog.Logger
	employees  employeeRepo
	identities []identityStore
	audit      auditLogger
	tx         txManager
}

// NewService creates a new user service. Every identity store receives the
// name, department and programme changes made through Update and Upsert.
func NewService(
	logger *slog.Logger,
	employees employeeRepo,
	audit auditLogger,
	tx txManager,
	identities ...identityStore,
) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		employees:  employees,
		identities: identities,
		audit:      audit,
		tx:         tx,
	}
}
