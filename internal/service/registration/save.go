package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// Save reconciles a submission with the current user's stored registration
// for the draft and writes the result in a single versioned upsert. If the
// stored registration changed since it was read, nothing is written and
// domain.ErrConflict is returned.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Registration, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	submitted, err := ParseEntries(input.Entries)
	if err != nil {
		return nil, err
	}

	if err := s.requireOpenDraft(ctx, input.DraftID); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByID(ctx, identity.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("registration.Save employee: %w", err)
		}
		emp = nil
	}

	prior, err := s.store.Get(ctx, input.DraftID, identity.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("registration.Save get: %w", err)
		}
		prior = nil
	}

	entries := submitted
	if input.Merge {
		var priorEntries []domain.RegistrationEntry
		if prior != nil {
			priorEntries = prior.Entries
		}
		entries = Merge(priorEntries, submitted)
	}

	status := input.Status
	if status == "" {
		status = domain.RegistrationStatusDraft
	}

	now := s.now().UTC()
	snap := SnapshotIdentity(identity, emp)
	reg := &domain.Registration{
		ID:         uuid.New(),
		DraftID:    input.DraftID,
		UserID:     identity.ID,
		UserName:   snap.UserName,
		Department: snap.Department,
		Programme:  snap.Programme,
		Entries:    entries,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	expected := 0
	if prior != nil {
		reg.ID = prior.ID
		reg.CreatedAt = prior.CreatedAt
		expected = prior.Version
	}

	saved, err := s.store.Save(ctx, reg, expected)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.log.WarnContext(ctx, "concurrent registration update",
				slog.String("draft_id", input.DraftID.String()),
				slog.String("user_id", identity.ID))
			return nil, err
		}
		return nil, fmt.Errorf("registration.Save: %w", err)
	}

	s.log.InfoContext(ctx, "registration saved",
		slog.String("draft_id", input.DraftID.String()),
		slog.String("user_id", identity.ID),
		slog.String("status", status.String()),
		slog.Bool("merge", input.Merge),
		slog.Int("entries", len(entries)))

	return saved, nil
}

// requireOpenDraft returns ErrNotFound for a missing draft and a
// ValidationError for a closed one.
func (s *Service) requireOpenDraft(ctx context.Context, draftID uuid.UUID) error {
	d, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("registration: get draft: %w", err)
	}
	if !d.IsOpen() {
		return domain.NewValidationError("draftId", "draft is closed")
	}
	return nil
}
