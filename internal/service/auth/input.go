package auth

import (
	"strings"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// RequestCodeInput holds parameters for requesting a login code.
type RequestCodeInput struct {
	EmployeeID string
}

// Validate validates the request-code input.
func (i RequestCodeInput) Validate() error {
	if strings.TrimSpace(i.EmployeeID) == "" {
		return domain.NewValidationError("employeeId", "required")
	}
	if len(i.EmployeeID) > 64 {
		return domain.NewValidationError("employeeId", "too long")
	}
	return nil
}

// VerifyCodeInput holds parameters for verifying a login code.
type VerifyCodeInput struct {
	EmployeeID string
	Code       string
}

// Validate validates the verify-code input.
func (i VerifyCodeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.EmployeeID) == "" {
		errs = append(errs, domain.FieldError{Field: "employeeId", Message: "required"})
	}
	if strings.TrimSpace(i.Code) == "" {
		errs = append(errs, domain.FieldError{Field: "otp", Message: "required"})
	} else if len(i.Code) > 16 {
		errs = append(errs, domain.FieldError{Field: "otp", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdminLoginInput holds admin credentials.
type AdminLoginInput struct {
	Username string
	Password string
}

// Validate validates the admin login input.
func (i AdminLoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
