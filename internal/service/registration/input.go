package registration

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// SaveInput holds a submission for the current user.
type SaveInput struct {
	DraftID uuid.UUID
	// Entries is the raw submitted array; see ParseEntries.
	Entries json.RawMessage
	Status  domain.RegistrationStatus
	// Merge overlays the submission onto the stored entries instead of
	// replacing them.
	Merge bool
}

// Validate checks the fields that can be rejected before any lookup.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draftId", Message: "required"})
	}
	if len(i.Entries) == 0 {
		errs = append(errs, domain.FieldError{Field: "entries", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be draft or submitted"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteEntryInput identifies one entry of a user's registration.
type DeleteEntryInput struct {
	DraftID  uuid.UUID
	UserID   string
	EntryIdx int
}

// Validate validates the delete-entry input. The index upper bound is
// checked against the stored registration.
func (i DeleteEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draftId", Message: "required"})
	}
	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.EntryIdx < 0 {
		errs = append(errs, domain.FieldError{Field: "entryIdx", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
