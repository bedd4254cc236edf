package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEmployee inserts an employee with a unique ID and returns it.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool) domain.Employee {
	t.Helper()
	return SeedEmployeeWithID(t, pool, "T"+uniqueSuffix())
}

// SeedEmployeeWithID inserts an employee with the given ID.
func SeedEmployeeWithID(t *testing.T, pool *pgxpool.Pool, employeeID string) domain.Employee {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	emp := domain.Employee{
		EmployeeID: employeeID,
		Name:       "Employee " + employeeID,
		Email:      "emp-" + employeeID + "@example.com",
		Department: "CSE",
		Programme:  "BTech",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO employees (employee_id, name, email, department, programme, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		emp.EmployeeID, emp.Name, emp.Email, emp.Department, emp.Programme, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployee insert: %v", err)
	}

	return emp
}

// SeedDraft inserts an open draft spanning 2022..2025 with a unique name.
func SeedDraft(t *testing.T, pool *pgxpool.Pool) domain.Draft {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Draft{
		ID:        uuid.New(),
		Name:      "Draft " + uniqueSuffix(),
		YearStart: domain.YearStartOf(2022),
		YearEnd:   domain.YearEndOf(2025),
		Status:    domain.DraftStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO drafts (id, name, year_start, year_end, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Name, d.YearStart, d.YearEnd, string(d.Status), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDraft insert: %v", err)
	}

	return d
}
