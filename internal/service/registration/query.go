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

// Get returns the current user's registration for the draft, or nil when
// there is none.
func (s *Service) Get(ctx context.Context, draftID uuid.UUID) (*domain.Registration, error) {
	userID := ctxutil.UserIDFromCtx(ctx)
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if draftID == uuid.Nil {
		return nil, domain.NewValidationError("draftId", "required")
	}

	reg, err := s.store.Get(ctx, draftID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("registration.Get: %w", err)
	}
	return reg, nil
}

// List returns the registrations matching f, sorted by user name.
func (s *Service) List(ctx context.Context, f domain.RegistrationFilter) ([]domain.Registration, error) {
	if f.DraftID == uuid.Nil {
		return nil, domain.NewValidationError("draftId", "required")
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be draft or submitted")
	}

	regs, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("registration.List: %w", err)
	}
	return regs, nil
}

// Delete removes a user's whole registration for the draft.
func (s *Service) Delete(ctx context.Context, draftID uuid.UUID, userID string) error {
	if draftID == uuid.Nil || userID == "" {
		return domain.NewValidationErrors([]domain.FieldError{
			{Field: "draftId", Message: "required"},
			{Field: "userId", Message: "required"},
		})
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.store.Delete(txCtx, draftID, userID); err != nil {
			return err
		}
		return s.audit.Log(txCtx, s.auditRecord(ctx, draftID, userID, domain.AuditActionDelete, nil))
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("registration.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "registration deleted",
		slog.String("draft_id", draftID.String()),
		slog.String("user_id", userID))
	return nil
}

// DeleteEntry removes one entry, by position, from a user's registration.
// An index past the end is a ValidationError and leaves the registration
// unchanged.
func (s *Service) DeleteEntry(ctx context.Context, input DeleteEntryInput) (*domain.Registration, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Registration
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.store.Get(txCtx, input.DraftID, input.UserID)
		if err != nil {
			return err
		}

		if input.EntryIdx >= len(reg.Entries) {
			return domain.NewValidationError("entryIdx", "out of range")
		}
		removed := reg.Entries[input.EntryIdx]

		entries := make([]domain.RegistrationEntry, 0, len(reg.Entries)-1)
		entries = append(entries, reg.Entries[:input.EntryIdx]...)
		entries = append(entries, reg.Entries[input.EntryIdx+1:]...)

		next := *reg
		next.Entries = entries
		next.UpdatedAt = s.now().UTC()

		if saved, err = s.store.Save(txCtx, &next, reg.Version); err != nil {
			return err
		}

		return s.audit.Log(txCtx, s.auditRecord(ctx, input.DraftID, input.UserID, domain.AuditActionUpdate, map[string]any{
			"entryIdx":   input.EntryIdx,
			"courseCode": removed.CourseCode,
		}))
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("registration.DeleteEntry: %w", err)
	}

	s.log.InfoContext(ctx, "registration entry deleted",
		slog.String("draft_id", input.DraftID.String()),
		slog.String("user_id", input.UserID),
		slog.Int("entry_idx", input.EntryIdx))

	return saved, nil
}

// auditRecord describes an admin change to one user's registration. The
// entity id is "<draftId>/<userId>".
func (s *Service) auditRecord(ctx context.Context, draftID uuid.UUID, userID string, action domain.AuditAction, changes map[string]any) domain.AuditRecord {
	if changes == nil {
		changes = map[string]any{}
	}
	changes["collection"] = s.name
	return domain.AuditRecord{
		Actor:      ctxutil.ActorFromCtx(ctx),
		EntityType: domain.EntityTypeRegistration,
		EntityID:   draftID.String() + "/" + userID,
		Action:     action,
		Changes:    changes,
	}
}
