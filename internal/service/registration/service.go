package registration

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// store defines the persistence operations for one registration collection.
type store interface {
	Get(ctx context.Context, draftID uuid.UUID, userID string) (*domain.Registration, error)
	List(ctx context.Context, f domain.RegistrationFilter) ([]domain.Registration, error)
	Save(ctx context.Context, reg *domain.Registration, expectedVersion int) (*domain.Registration, error)
	Delete(ctx context.Context, draftID uuid.UUID, userID string) error
}

// draftRepo defines the draft lookups needed to gate writes.
type draftRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
}

// employeeRepo defines the employee lookups needed for identity snapshots.
type employeeRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service reconciles and stores per-user registrations of one collection.
// The same implementation backs submitted registrations and in-progress
// user drafts; only the store differs.
type Service struct {
	log       *slog.Logger
	store     store
	drafts    draftRepo
	employees employeeRepo
	audit     auditLogger
	tx        txManager
	name      string
	now       func() time.Time
}

// NewService creates a registration service over the given store. name tags
// the service logger and audit records ("registration", "user_draft").
func NewService(
	logger *slog.Logger,
	name string,
	store store,
	drafts draftRepo,
	employees employeeRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", name),
		store:     store,
		drafts:    drafts,
		employees: employees,
		audit:     audit,
		tx:        tx,
		name:      name,
		now:       time.Now,
	}
}
