package user

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and converts failures into a
// domain.ValidationError keyed by JSON field name.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email"
	case "max":
		return "too long"
	default:
		return "invalid"
	}
}

// UpsertInput holds a full employee record.
type UpsertInput struct {
	EmployeeID string `json:"employeeId" validate:"required,max=64"`
	Name       string `json:"name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email,max=320"`
	Department string `json:"department" validate:"max=255"`
	Programme  string `json:"programme" validate:"max=255"`
}

func (i *UpsertInput) normalize() {
	i.EmployeeID = strings.TrimSpace(i.EmployeeID)
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Department = strings.TrimSpace(i.Department)
	i.Programme = strings.TrimSpace(i.Programme)
}

// Validate validates the upsert input.
func (i UpsertInput) Validate() error {
	return validateStruct(i)
}

// UpdateInput holds a partial employee update. Nil fields are left as is.
type UpdateInput struct {
	EmployeeID string  `json:"employeeId" validate:"required"`
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Email      *string `json:"email" validate:"omitempty,email,max=320"`
	Department *string `json:"department" validate:"omitempty,max=255"`
	Programme  *string `json:"programme" validate:"omitempty,max=255"`
}

func (i *UpdateInput) normalize() {
	i.EmployeeID = strings.TrimSpace(i.EmployeeID)
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(i.Name)
	trim(i.Department)
	trim(i.Programme)
	if i.Email != nil {
		*i.Email = strings.ToLower(strings.TrimSpace(*i.Email))
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	if err := validateStruct(i); err != nil {
		return err
	}

	var errs []domain.FieldError
	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Email != nil && *i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Name == nil && i.Email == nil && i.Department == nil && i.Programme == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) patch() domain.EmployeePatch {
	return domain.EmployeePatch{
		Name:       i.Name,
		Email:      i.Email,
		Department: i.Department,
		Programme:  i.Programme,
	}
}
