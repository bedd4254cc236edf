package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus distinguishes saved work from a final submission.
type RegistrationStatus string

const (
	RegistrationStatusDraft     RegistrationStatus = "draft"
	RegistrationStatusSubmitted RegistrationStatus = "submitted"
)

func (s RegistrationStatus) String() string { return string(s) }

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusDraft, RegistrationStatusSubmitted:
		return true
	}
	return false
}

// RegistrationEntry is one course offering inside a Registration. It has no
// identity of its own; within a registration it is identified by Key().
type RegistrationEntry struct {
	CourseCode      string
	CourseName      string
	Credits         float64
	Group           string
	StudentStrength int
	FNSlots         int
	ANSlots         int
	// TotalSlots always equals FNSlots + ANSlots; it is derived, never set directly.
	TotalSlots      int
	StudentsPerSlot *int
	FacultySchool   string
	Batch           string
	Prerequisites   []string
	Basket          string
	Remarks         string
	L               Hours
	T               Hours
	P               Hours
	J               Hours
}

// Key returns the merge key of the entry: "<courseCode>-<batch>".
func (e *RegistrationEntry) Key() string {
	return e.CourseCode + "-" + e.Batch
}

// Registration is the per-(draft, user) aggregate of submitted entries.
// UserName, Department and Programme are snapshots taken at write time.
type Registration struct {
	ID         uuid.UUID
	DraftID    uuid.UUID
	UserID     string
	UserName   string
	Department string
	Programme  string
	Entries    []RegistrationEntry
	Status     RegistrationStatus
	// Version increments on every write and guards read-merge-write cycles.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IdentitySnapshot holds the denormalized employee fields copied onto a
// registration at write time.
type IdentitySnapshot struct {
	UserName   string
	Department string
	Programme  string
}
