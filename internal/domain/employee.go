package domain

import (
	"strings"
	"time"
)

// Employee is a record from the credential store. EmployeeID is unique and
// may be numeric ("7") or EMP-prefixed ("EMP007").
type Employee struct {
	EmployeeID string
	Name       string
	Email      string
	Department string
	Programme  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// employeeIDPad is the minimum digit width of the EMP-prefixed form.
const employeeIDPad = 3

// EmployeeIDCandidates returns the ids to try, in priority order, when
// resolving a user-typed employee id:
//   - the input as given (trimmed)
//   - "EMP" + digits zero-padded to 3, when the input is all digits
//   - the bare number with leading zeros stripped, when the input is EMP<digits>
//
// Duplicates are removed; an empty input yields nil.
func EmployeeIDCandidates(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	candidates := []string{raw}
	add := func(id string) {
		if id == "" {
			return
		}
		for _, c := range candidates {
			if c == id {
				return
			}
		}
		candidates = append(candidates, id)
	}

	if isDigits(raw) {
		padded := raw
		if len(padded) < employeeIDPad {
			padded = strings.Repeat("0", employeeIDPad-len(padded)) + padded
		}
		add("EMP" + padded)
	}

	if num, ok := strings.CutPrefix(raw, "EMP"); ok && isDigits(num) {
		stripped := strings.TrimLeft(num, "0")
		if stripped == "" {
			stripped = "0"
		}
		add(stripped)
	}

	return candidates
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
