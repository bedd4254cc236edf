package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeFilter narrows employee listings. Zero values mean "no filter".
type EmployeeFilter struct {
	Department string
	// Search matches employee id, name or email, case-insensitively.
	Search string
}

// EmployeePatch lists the employee fields an update may change.
// Nil fields are left untouched.
type EmployeePatch struct {
	Name       *string
	Email      *string
	Department *string
	Programme  *string
}

// DraftPatch lists the draft fields an update may change.
// Nil fields are left untouched.
type DraftPatch struct {
	Name      *string
	Status    *DraftStatus
	YearStart *time.Time
	YearEnd   *time.Time
}

// RegistrationFilter narrows registration listings. DraftID is required.
type RegistrationFilter struct {
	DraftID uuid.UUID
	UserID  string
	Status  *RegistrationStatus
}

// IdentityPatch lists the snapshot fields to rewrite on every registration
// of a user.
type IdentityPatch struct {
	UserName   *string
	Department *string
	Programme  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p IdentityPatch) IsEmpty() bool {
	return p.UserName == nil && p.Department == nil && p.Programme == nil
}
