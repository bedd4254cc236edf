package domain

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// HoursNotApplicable is the stored marker for an hour component the catalog
// did not supply.
const HoursNotApplicable = "NA"

// Hours is one lecture/tutorial/practical/project hour component.
// The zero value is "not applicable".
type Hours struct {
	Value float64
	Set   bool
}

// HoursOf returns a supplied hour component.
func HoursOf(v float64) Hours {
	return Hours{Value: v, Set: true}
}

func (h Hours) String() string {
	if !h.Set {
		return HoursNotApplicable
	}
	return strconv.FormatFloat(h.Value, 'f', -1, 64)
}

// MarshalJSON renders a supplied component as a number and the rest as "NA".
func (h Hours) MarshalJSON() ([]byte, error) {
	if !h.Set {
		return json.Marshal(HoursNotApplicable)
	}
	return json.Marshal(h.Value)
}

// UnmarshalJSON accepts a number or a numeric string. Anything else,
// including "NA" and null, decodes to "not applicable".
func (h *Hours) UnmarshalJSON(data []byte) error {
	*h = ParseHours(data)
	return nil
}

// ParseHours decodes a raw JSON value into Hours without failing.
func ParseHours(raw json.RawMessage) Hours {
	if t := strings.TrimSpace(string(raw)); t == "" || t == "null" {
		return Hours{}
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return HoursOf(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseHoursString(s)
	}
	return Hours{}
}

// ParseHoursString parses a spreadsheet or CSV cell.
func ParseHoursString(s string) Hours {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, HoursNotApplicable) {
		return Hours{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Hours{}
	}
	return HoursOf(v)
}

// Course is an offerable course of a draft's catalog. CourseCode is only
// unique within a draft.
type Course struct {
	ID         uuid.UUID
	DraftID    uuid.UUID
	CourseCode string
	CourseName string
	Credits    float64
	Group      string
	L          Hours
	T          Hours
	P          Hours
	J          Hours
}
