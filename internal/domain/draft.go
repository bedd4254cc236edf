package domain

import (
	"time"

	"github.com/google/uuid"
)

// DraftStatus is the lifecycle state of a registration period.
type DraftStatus string

const (
	DraftStatusOpen   DraftStatus = "open"
	DraftStatusClosed DraftStatus = "closed"
)

func (s DraftStatus) String() string { return string(s) }

func (s DraftStatus) IsValid() bool {
	switch s {
	case DraftStatusOpen, DraftStatusClosed:
		return true
	}
	return false
}

// Draft is a registration period. All courses and registrations are scoped
// to one draft.
type Draft struct {
	ID        uuid.UUID
	Name      string
	YearStart time.Time
	YearEnd   time.Time
	Status    DraftStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether employees may still register in the draft.
func (d *Draft) IsOpen() bool {
	return d.Status == DraftStatusOpen
}

// YearStartOf returns January 1st (UTC) of the given year.
func YearStartOf(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// YearEndOf returns December 31st (UTC) of the given year.
func YearEndOf(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// BatchYears lists the admission years a draft spans, oldest first.
func (d *Draft) BatchYears() []int {
	var years []int
	for y := d.YearStart.Year(); y <= d.YearEnd.Year(); y++ {
		years = append(years, y)
	}
	return years
}
