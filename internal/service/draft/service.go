package draft

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

type draftRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	List(ctx context.Context, status *domain.DraftStatus) ([]domain.Draft, error)
	Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	Update(ctx context.Context, id uuid.UUID, p domain.DraftPatch) (*domain.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages registration periods.
type Service struct {
	drafts draftRepo
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new draft service.
func NewService(
	log *slog.Logger,
	drafts draftRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		drafts: drafts,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "draft"),
	}
}
