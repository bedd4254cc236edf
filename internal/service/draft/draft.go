package draft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// List returns every draft, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Draft, error) {
	drafts, err := s.drafts.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("draft.List: %w", err)
	}
	return drafts, nil
}

// ListOpen returns the drafts employees can currently register in.
func (s *Service) ListOpen(ctx context.Context) ([]domain.Draft, error) {
	open := domain.DraftStatusOpen
	drafts, err := s.drafts.List(ctx, &open)
	if err != nil {
		return nil, fmt.Errorf("draft.ListOpen: %w", err)
	}
	return drafts, nil
}

// Get returns a draft by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	d, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("draft.Get: %w", err)
	}
	return d, nil
}

// Create opens a new registration period. A duplicate name is reported as
// domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateDraftInput) (*domain.Draft, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var created *domain.Draft
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.drafts.Create(txCtx, &domain.Draft{
			ID:        uuid.New(),
			Name:      name,
			YearStart: domain.YearStartOf(input.YearStart),
			YearEnd:   domain.YearEndOf(input.YearEnd),
			Status:    domain.DraftStatusOpen,
		})
		if createErr != nil {
			return fmt.Errorf("create draft: %w", createErr)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeDraft,
			EntityID:   created.ID.String(),
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":      map[string]any{"new": name},
				"yearStart": map[string]any{"new": input.YearStart},
				"yearEnd":   map[string]any{"new": input.YearEnd},
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "draft created",
		slog.String("draft_id", created.ID.String()),
		slog.String("name", name),
	)

	return created, nil
}

// Update changes the given fields of a draft. Renaming onto an existing name
// is reported as domain.ErrAlreadyExists.
func (s *Service) Update(ctx context.Context, input UpdateDraftInput) (*domain.Draft, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Draft
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.drafts.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get draft: %w", err)
		}

		patch := domain.DraftPatch{Status: input.Status}
		changes := map[string]any{}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			patch.Name = &name
			changes["name"] = map[string]any{"old": current.Name, "new": name}
		}
		if input.Status != nil {
			changes["status"] = map[string]any{"old": current.Status.String(), "new": input.Status.String()}
		}

		startYear, endYear := current.YearStart.Year(), current.YearEnd.Year()
		if input.YearStart != nil {
			start := domain.YearStartOf(*input.YearStart)
			patch.YearStart = &start
			changes["yearStart"] = map[string]any{"old": startYear, "new": *input.YearStart}
			startYear = *input.YearStart
		}
		if input.YearEnd != nil {
			end := domain.YearEndOf(*input.YearEnd)
			patch.YearEnd = &end
			changes["yearEnd"] = map[string]any{"old": endYear, "new": *input.YearEnd}
			endYear = *input.YearEnd
		}
		if startYear > endYear {
			return domain.NewValidationError("yearEnd", "must not be before yearStart")
		}

		updated, err = s.drafts.Update(txCtx, input.ID, patch)
		if err != nil {
			return fmt.Errorf("update draft: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeDraft,
			EntityID:   input.ID.String(),
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "draft updated",
		slog.String("draft_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// Delete removes a draft together with its catalog, registrations and
// in-progress user drafts.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.drafts.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get draft: %w", err)
		}

		if err := s.drafts.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete draft: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeDraft,
			EntityID:   id.String(),
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": current.Name},
			},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "draft deleted", slog.String("draft_id", id.String()))
	return nil
}
