package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// UploadInput is a raw catalog upload for one draft.
type UploadInput struct {
	DraftID     uuid.UUID
	ContentType string
	Body        []byte
}

// List returns the catalog of a draft in upload order.
func (s *Service) List(ctx context.Context, draftID uuid.UUID) ([]domain.Course, error) {
	if draftID == uuid.Nil {
		return nil, domain.NewValidationError("draftId", "required")
	}

	courses, err := s.courses.List(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("catalog.List: %w", err)
	}
	return courses, nil
}

// Upload parses the body and replaces the draft's whole catalog with the
// parsed rows. Returns the number of courses stored.
func (s *Service) Upload(ctx context.Context, input UploadInput) (int, error) {
	if input.DraftID == uuid.Nil {
		return 0, domain.NewValidationError("draftId", "required")
	}

	courses, err := ParseCatalog(input.ContentType, input.Body)
	if err != nil {
		return 0, err
	}
	if len(courses) == 0 {
		return 0, domain.NewValidationError("file", "no rows parsed")
	}

	for i := range courses {
		courses[i].ID = uuid.New()
		courses[i].DraftID = input.DraftID
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.drafts.GetByID(txCtx, input.DraftID); err != nil {
			return fmt.Errorf("get draft: %w", err)
		}

		if err := s.courses.ReplaceAll(txCtx, input.DraftID, courses); err != nil {
			return fmt.Errorf("replace catalog: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeCatalog,
			EntityID:   input.DraftID.String(),
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"count": len(courses)},
		})
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "catalog uploaded",
		slog.String("draft_id", input.DraftID.String()),
		slog.Int("count", len(courses)),
	)

	return len(courses), nil
}

// Clear removes every course of the draft. Returns the number removed.
func (s *Service) Clear(ctx context.Context, draftID uuid.UUID) (int64, error) {
	if draftID == uuid.Nil {
		return 0, domain.NewValidationError("draftId", "required")
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.courses.DeleteAll(txCtx, draftID)
		if err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeCatalog,
			EntityID:   draftID.String(),
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"count": removed},
		})
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "catalog cleared",
		slog.String("draft_id", draftID.String()),
		slog.Int64("count", removed),
	)

	return removed, nil
}
