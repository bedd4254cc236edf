package registration

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// ParseEntries decodes a submitted entries payload. The payload must be a
// JSON array of objects; everything inside an object is coerced leniently
// by NormalizeEntry.
func ParseEntries(raw json.RawMessage) ([]domain.RegistrationEntry, error) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, domain.NewValidationError("entries", "must be an array")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.NewValidationError("entries", "must be an array")
	}

	entries := make([]domain.RegistrationEntry, 0, len(items))
	for i, item := range items {
		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			return nil, domain.NewValidationError(fmt.Sprintf("entries[%d]", i), "must be an object")
		}
		entries = append(entries, NormalizeEntry(obj))
	}
	return entries, nil
}

// NormalizeEntry coerces one submitted entry into its stored shape.
// Missing or malformed numbers become 0, missing strings become "",
// hour components that are not numeric become "NA", and TotalSlots is
// always recomputed from the FN and AN slots.
func NormalizeEntry(raw map[string]any) domain.RegistrationEntry {
	fn := toInt(raw["fnSlots"])
	an := toInt(raw["anSlots"])

	return domain.RegistrationEntry{
		CourseCode:      toString(raw["courseCode"]),
		CourseName:      toString(raw["courseName"]),
		Credits:         toFloat(raw["credits"]),
		Group:           toString(raw["group"]),
		StudentStrength: toInt(raw["studentStrength"]),
		FNSlots:         fn,
		ANSlots:         an,
		TotalSlots:      fn + an,
		StudentsPerSlot: toOptionalInt(raw["studentsPerSlot"]),
		FacultySchool:   toString(raw["facultySchool"]),
		Batch:           toString(raw["batch"]),
		Prerequisites:   toStrings(raw["prerequisites"]),
		Basket:          toString(raw["basket"]),
		Remarks:         toString(raw["remarks"]),
		L:               toHours(raw["L"]),
		T:               toHours(raw["T"]),
		P:               toHours(raw["P"]),
		J:               toHours(raw["J"]),
	}
}

// Merge overlays submitted entries onto prior ones by Key. A submitted entry
// replaces the prior entry with the same key as a whole. The result lists
// prior keys in their original order followed by new keys in submission
// order; a key submitted twice keeps its last value.
func Merge(prior, submitted []domain.RegistrationEntry) []domain.RegistrationEntry {
	index := make(map[string]int, len(prior)+len(submitted))
	out := make([]domain.RegistrationEntry, 0, len(prior)+len(submitted))

	put := func(e domain.RegistrationEntry) {
		k := e.Key()
		if i, ok := index[k]; ok {
			out[i] = e
			return
		}
		index[k] = len(out)
		out = append(out, e)
	}

	for _, e := range prior {
		put(e)
	}
	for _, e := range submitted {
		put(e)
	}
	return out
}

// SnapshotIdentity returns the identity fields copied onto a registration at
// write time. Name and department come from the session. Programme comes
// from the current employee record, even when it is empty; the session value
// is used only when the employee no longer exists.
func SnapshotIdentity(id ctxutil.Identity, emp *domain.Employee) domain.IdentitySnapshot {
	snap := domain.IdentitySnapshot{
		UserName:   id.Name,
		Department: id.Department,
		Programme:  id.Programme,
	}
	if emp != nil {
		snap.Programme = emp.Programme
	}
	return snap
}

// ---------------------------------------------------------------------------
// Coercion helpers
// ---------------------------------------------------------------------------

func toFloat(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if t {
			f = 1
		}
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// maxCount bounds slot and strength values. Anything larger is treated as
// invalid input.
const maxCount = math.MaxInt32

func toInt(v any) int {
	return clampCount(toFloat(v))
}

func clampCount(f float64) int {
	if f > maxCount || f < -maxCount {
		return 0
	}
	return int(f)
}

func toOptionalInt(v any) *int {
	switch t := v.(type) {
	case float64:
		n := toInt(t)
		return &n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		n := clampCount(f)
		return &n
	}
	return nil
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func toStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, toString(item))
	}
	return out
}

func toHours(v any) domain.Hours {
	switch t := v.(type) {
	case float64:
		return domain.HoursOf(t)
	case string:
		return domain.ParseHoursString(t)
	}
	return domain.Hours{}
}
