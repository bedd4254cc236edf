package registration

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/adapter/spreadsheet"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

var exportColumns = []spreadsheet.Column{
	{Header: "User ID", Width: 15},
	{Header: "User Name", Width: 25},
	{Header: "Department", Width: 15},
	{Header: "Programme", Width: 15},
	{Header: "Batch", Width: 10},
	{Header: "Course Code", Width: 15},
	{Header: "Course Name", Width: 40},
	{Header: "Credits", Width: 10},
	{Header: "Student Strength", Width: 15},
	{Header: "FN Slots", Width: 12},
	{Header: "AN Slots", Width: 12},
	{Header: "Total Slots", Width: 12},
	{Header: "Faculty School", Width: 15},
	{Header: "Status", Width: 12},
	{Header: "Submitted Date", Width: 15},
}

// ExportSubmitted renders the submitted registrations of a draft, optionally
// narrowed to one user, as an xlsx workbook with one row per entry.
// Returns ErrNotFound when nothing has been submitted.
func (s *Service) ExportSubmitted(ctx context.Context, draftID uuid.UUID, userID string) (*bytes.Buffer, error) {
	submitted := domain.RegistrationStatusSubmitted
	regs, err := s.List(ctx, domain.RegistrationFilter{
		DraftID: draftID,
		UserID:  userID,
		Status:  &submitted,
	})
	if err != nil {
		return nil, err
	}
	if len(regs) == 0 {
		return nil, fmt.Errorf("registration.ExportSubmitted: no submitted registrations: %w", domain.ErrNotFound)
	}

	table := spreadsheet.Table{Sheet: "Registrations", Columns: exportColumns}
	for _, reg := range regs {
		for _, e := range reg.Entries {
			table.Rows = append(table.Rows, []any{
				reg.UserID,
				reg.UserName,
				reg.Department,
				reg.Programme,
				e.Batch,
				e.CourseCode,
				e.CourseName,
				e.Credits,
				e.StudentStrength,
				e.FNSlots,
				e.ANSlots,
				e.TotalSlots,
				e.FacultySchool,
				reg.Status.String(),
				reg.UpdatedAt.Format("2006-01-02"),
			})
		}
	}

	buf, err := spreadsheet.Write(table)
	if err != nil {
		return nil, fmt.Errorf("registration.ExportSubmitted: %w", err)
	}

	s.log.InfoContext(ctx, "registrations exported",
		slog.String("draft_id", draftID.String()),
		slog.Int("registrations", len(regs)),
		slog.Int("rows", len(table.Rows)))

	return buf, nil
}
