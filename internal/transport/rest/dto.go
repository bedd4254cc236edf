package rest

import (
	"time"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

type draftResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	YearStart  time.Time `json:"yearStart"`
	YearEnd    time.Time `json:"yearEnd"`
	BatchYears []int     `json:"batchYears"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toDraftResponse(d *domain.Draft) draftResponse {
	return draftResponse{
		ID:         d.ID.String(),
		Name:       d.Name,
		YearStart:  d.YearStart,
		YearEnd:    d.YearEnd,
		BatchYears: d.BatchYears(),
		Status:     d.Status.String(),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDraftResponses(drafts []domain.Draft) []draftResponse {
	out := make([]draftResponse, 0, len(drafts))
	for i := range drafts {
		out = append(out, toDraftResponse(&drafts[i]))
	}
	return out
}

type courseResponse struct {
	ID         string       `json:"id"`
	DraftID    string       `json:"draftId"`
	CourseCode string       `json:"courseCode"`
	CourseName string       `json:"courseName"`
	Credits    float64      `json:"credits"`
	Group      string       `json:"group"`
	L          domain.Hours `json:"L"`
	T          domain.Hours `json:"T"`
	P          domain.Hours `json:"P"`
	J          domain.Hours `json:"J"`
}

func toCourseResponses(courses []domain.Course) []courseResponse {
	out := make([]courseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseResponse{
			ID:         c.ID.String(),
			DraftID:    c.DraftID.String(),
			CourseCode: c.CourseCode,
			CourseName: c.CourseName,
			Credits:    c.Credits,
			Group:      c.Group,
			L:          c.L,
			T:          c.T,
			P:          c.P,
			J:          c.J,
		})
	}
	return out
}

type entryResponse struct {
	CourseCode      string       `json:"courseCode"`
	CourseName      string       `json:"courseName"`
	Credits         float64      `json:"credits"`
	Group           string       `json:"group"`
	StudentStrength int          `json:"studentStrength"`
	FNSlots         int          `json:"fnSlots"`
	ANSlots         int          `json:"anSlots"`
	TotalSlots      int          `json:"totalSlots"`
	StudentsPerSlot *int         `json:"studentsPerSlot"`
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

type registrationResponse struct {
	ID         string          `json:"id"`
	DraftID    string          `json:"draftId"`
	UserID     string          `json:"userId"`
	UserName   string          `json:"userName"`
	Department string          `json:"department"`
	Programme  string          `json:"programme"`
	Entries    []entryResponse `json:"entries"`
	Status     string          `json:"status"`
	Version    int             `json:"version"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func toRegistrationResponse(reg *domain.Registration) *registrationResponse {
	if reg == nil {
		return nil
	}

	entries := make([]entryResponse, 0, len(reg.Entries))
	for _, e := range reg.Entries {
		prereqs := e.Prerequisites
		if prereqs == nil {
			prereqs = []string{}
		}
		entries = append(entries, entryResponse{
			CourseCode:      e.CourseCode,
			CourseName:      e.CourseName,
			Credits:         e.Credits,
			Group:           e.Group,
			StudentStrength: e.StudentStrength,
			FNSlots:         e.FNSlots,
			ANSlots:         e.ANSlots,
			TotalSlots:      e.TotalSlots,
			StudentsPerSlot: e.StudentsPerSlot,
			FacultySchool:   e.FacultySchool,
			Batch:           e.Batch,
			Prerequisites:   prereqs,
			Basket:          e.Basket,
			Remarks:         e.Remarks,
			L:               e.L,
			T:               e.T,
			P:               e.P,
			J:               e.J,
		})
	}

	return &registrationResponse{
		ID:         reg.ID.String(),
		DraftID:    reg.DraftID.String(),
		UserID:     reg.UserID,
		UserName:   reg.UserName,
		Department: reg.Department,
		Programme:  reg.Programme,
		Entries:    entries,
		Status:     reg.Status.String(),
		Version:    reg.Version,
		CreatedAt:  reg.CreatedAt,
		UpdatedAt:  reg.UpdatedAt,
	}
}

type employeeResponse struct {
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Programme  string    `json:"programme"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Programme:  e.Programme,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

type auditResponse struct {
	ID         string         `json:"id"`
	Actor      string         `json:"actor"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
