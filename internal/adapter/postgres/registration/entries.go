package registration

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// entryJSON is the stored shape of one registration entry.
// Domain types have no json tags, so the repo layer handles serialization.
type entryJSON struct {
	CourseCode      string       `json:"courseCode"`
	CourseName      string       `json:"courseName"`
	Credits         float64      `json:"credits"`
	Group           string       `json:"group"`
	StudentStrength int          `json:"studentStrength"`
	FNSlots         int          `json:"fnSlots"`
	ANSlots         int          `json:"anSlots"`
	TotalSlots      int          `json:"totalSlots"`
	StudentsPerSlot *int         `json:"studentsPerSlot,omitempty"`
	FacultySchool   string       `json:"facultySchool"`
	Batch           string       `json:"batch"`
	Prerequisites   []string     `json:"prerequisites"`
	Basket          string       `json:"basket"`
	Remarks         string       `json:"remarks"`
	L               domain.Hours `json:"L"`
	T               domain.Hours `json:"T"`
	P               domain.Hours `json:"P"`
	J               domain.Hours `json:"J"`
}

func marshalEntries(entries []domain.RegistrationEntry) ([]byte, error) {
	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		prereq := e.Prerequisites
		if prereq == nil {
			prereq = []string{}
		}
		out[i] = entryJSON{
			CourseCode:      e.CourseCode,
			CourseName:      e.CourseName,
			Credits:         e.Credits,
			Group:           e.Group,
			StudentStrength: e.StudentStrength,
			FNSlots:         e.FNSlots,
			ANSlots:         e.ANSlots,
			TotalSlots:      e.FNSlots + e.ANSlots,
			StudentsPerSlot: e.StudentsPerSlot,
			FacultySchool:   e.FacultySchool,
			Batch:           e.Batch,
			Prerequisites:   prereq,
			Basket:          e.Basket,
			Remarks:         e.Remarks,
			L:               e.L,
			T:               e.T,
			P:               e.P,
			J:               e.J,
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal entries: %w", err)
	}
	return b, nil
}

func unmarshalEntries(data []byte) ([]domain.RegistrationEntry, error) {
	if len(data) == 0 {
		return []domain.RegistrationEntry{}, nil
	}

	var in []entryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}

	out := make([]domain.RegistrationEntry, len(in))
	for i, j := range in {
		out[i] = domain.RegistrationEntry{
			CourseCode:      j.CourseCode,
			CourseName:      j.CourseName,
			Credits:         j.Credits,
			Group:           j.Group,
			StudentStrength: j.StudentStrength,
			FNSlots:         j.FNSlots,
			ANSlots:         j.ANSlots,
			TotalSlots:      j.TotalSlots,
			StudentsPerSlot: j.StudentsPerSlot,
			FacultySchool:   j.FacultySchool,
			Batch:           j.Batch,
			Prerequisites:   j.Prerequisites,
			Basket:          j.Basket,
			Remarks:         j.Remarks,
			L:               j.L,
			T:               j.T,
			P:               j.P,
			J:               j.J,
		}
		if out[i].Prerequisites == nil {
			out[i].Prerequisites = []string{}
		}
	}
	return out, nil
}
