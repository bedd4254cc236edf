package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

type courseRepo interface {
	List(ctx context.Context, draftID uuid.UUID) ([]domain.Course, error)
	ReplaceAll(ctx context.Context, draftID uuid.UUID, courses []domain.Course) error
	DeleteAll(ctx context.Context, draftID uuid.UUID) (int64, error)
}

type draftRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the per-draft course catalogs.
type Service struct {
	courses courseRepo
	drafts  draftRepo
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	courses courseRepo,
	drafts draftRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		courses: courses,
		drafts:  drafts,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "catalog"),
	}
}
