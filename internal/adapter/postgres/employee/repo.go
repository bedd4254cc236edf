// Package employee implements the employee credential store using PostgreSQL.
package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new employee repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var employeeColumns = []string{"employee_id", "name", "email", "department", "programme", "created_at", "updated_at"}

const getByIDSQL = `
SELECT employee_id, name, email, department, programme, created_at, updated_at
FROM employees
WHERE employee_id = $1`

const upsertSQL = `
INSERT INTO employees (employee_id, name, email, department, programme, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (employee_id) DO UPDATE
SET name = EXCLUDED.name,
    email = EXCLUDED.email,
    department = EXCLUDED.department,
    programme = EXCLUDED.programme,
    updated_at = EXCLUDED.updated_at
RETURNING employee_id, name, email, department, programme, created_at, updated_at`

const deleteSQL = `DELETE FROM employees WHERE employee_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the employee whose stored ID equals id exactly.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)

	emp, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}
	return emp, nil
}

// List returns employees ordered by ID.
func (r *Repo) List(ctx context.Context, f domain.EmployeeFilter) ([]domain.Employee, error) {
	qb := postgres.Builder().
		Select(employeeColumns...).
		From("employees").
		OrderBy("employee_id ASC")

	if f.Department != "" {
		qb = qb.Where(sq.Eq{"department": f.Department})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + s + "%"
		qb = qb.Where(sq.Or{
			sq.ILike{"employee_id": pattern},
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list employees query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	return employees, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the employee or overwrites every mutable field of an
// existing one. created_at is preserved on update.
func (r *Repo) Upsert(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSQL,
		e.EmployeeID, e.Name, e.Email, e.Department, e.Programme, now,
	)

	saved, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", e.EmployeeID)
	}
	return saved, nil
}

// Update applies a partial update and returns the updated employee.
func (r *Repo) Update(ctx context.Context, id string, p domain.EmployeePatch) (*domain.Employee, error) {
	ub := postgres.Builder().
		Update("employees").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"employee_id": id}).
		Suffix("RETURNING " + strings.Join(employeeColumns, ", "))

	if p.Name != nil {
		ub = ub.Set("name", *p.Name)
	}
	if p.Email != nil {
		ub = ub.Set("email", *p.Email)
	}
	if p.Department != nil {
		ub = ub.Set("department", *p.Department)
	}
	if p.Programme != nil {
		ub = ub.Set("programme", *p.Programme)
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update employee query: %w", err)
	}

	emp, err := scanEmployee(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}
	return emp, nil
}

// Delete removes the employee. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "employee", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	if err := row.Scan(&e.EmployeeID, &e.Name, &e.Email, &e.Department, &e.Programme, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
