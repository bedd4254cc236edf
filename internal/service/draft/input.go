package draft

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

const (
	maxNameLength = 200
	minYear       = 1900
	maxYear       = 2200
)

// CreateDraftInput holds parameters for opening a registration period.
type CreateDraftInput struct {
	Name      string
	YearStart int
	YearEnd   int
}

// Validate validates the create input.
func (i CreateDraftInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = append(errs, validateYear("yearStart", i.YearStart)...)
	errs = append(errs, validateYear("yearEnd", i.YearEnd)...)

	if len(errs) == 0 && i.YearStart > i.YearEnd {
		errs = append(errs, domain.FieldError{Field: "yearEnd", Message: "must not be before yearStart"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDraftInput holds a partial update. Nil fields are left untouched.
type UpdateDraftInput struct {
	ID        uuid.UUID
	Name      *string
	Status    *domain.DraftStatus
	YearStart *int
	YearEnd   *int
}

// Validate validates the update input. Year ordering is checked against the
// stored draft.
func (i UpdateDraftInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be open or closed"})
	}
	if i.YearStart != nil {
		errs = append(errs, validateYear("yearStart", *i.YearStart)...)
	}
	if i.YearEnd != nil {
		errs = append(errs, validateYear("yearEnd", *i.YearEnd)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateYear(field string, year int) []domain.FieldError {
	if year == 0 {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if year < minYear || year > maxYear {
		return []domain.FieldError{{Field: field, Message: "out of range"}}
	}
	return nil
}
