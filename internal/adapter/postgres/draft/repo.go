// Package draft implements the registration-period registry using PostgreSQL.
package draft

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// Repo provides draft persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new draft repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var draftColumns = []string{"id", "name", "year_start", "year_end", "status", "created_at", "updated_at"}

const createSQL = `
INSERT INTO drafts (id, name, year_start, year_end, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id, name, year_start, year_end, status, created_at, updated_at`

const getByIDSQL = `
SELECT id, name, year_start, year_end, status, created_at, updated_at
FROM drafts
WHERE id = $1`

// Children first, so the cascade does not depend on FK actions.
var deleteCascadeSQL = []string{
	`DELETE FROM user_drafts WHERE draft_id = $1`,
	`DELETE FROM registrations WHERE draft_id = $1`,
	`DELETE FROM courses WHERE draft_id = $1`,
}

const deleteSQL = `DELETE FROM drafts WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a draft by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	d, err := scanDraft(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "draft", id.String())
	}
	return d, nil
}

// List returns drafts newest first, optionally only those with status.
func (r *Repo) List(ctx context.Context, status *domain.DraftStatus) ([]domain.Draft, error) {
	qb := postgres.Builder().
		Select(draftColumns...).
		From("drafts").
		OrderBy("created_at DESC", "name ASC")
	if status != nil {
		qb = qb.Where(sq.Eq{"status": string(*status)})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list drafts query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	drafts := []domain.Draft{}
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	return drafts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a draft. A duplicate name yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanDraft(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		d.ID, d.Name, d.YearStart.UTC(), d.YearEnd.UTC(), string(d.Status), now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "draft", d.Name)
	}
	return created, nil
}

// Update applies a partial update and returns the updated draft.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.DraftPatch) (*domain.Draft, error) {
	ub := postgres.Builder().
		Update("drafts").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(draftColumns, ", "))

	if p.Name != nil {
		ub = ub.Set("name", *p.Name)
	}
	if p.Status != nil {
		ub = ub.Set("status", string(*p.Status))
	}
	if p.YearStart != nil {
		ub = ub.Set("year_start", p.YearStart.UTC())
	}
	if p.YearEnd != nil {
		ub = ub.Set("year_end", p.YearEnd.UTC())
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update draft query: %w", err)
	}

	d, err := scanDraft(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "draft", id.String())
	}
	return d, nil
}

// Delete removes the draft together with its courses, registrations and
// user drafts. Callers run it inside a transaction.
// Returns domain.ErrNotFound if the draft does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	for _, stmt := range deleteCascadeSQL {
		if _, err := q.Exec(ctx, stmt, id); err != nil {
			return postgres.MapError(err, "draft", id.String())
		}
	}

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "draft", id.String())
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanDraft(row pgx.Row) (*domain.Draft, error) {
	var (
		d      domain.Draft
		status string
	)
	if err := row.Scan(&d.ID, &d.Name, &d.YearStart, &d.YearEnd, &status, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.Status = domain.DraftStatus(status)
	d.YearStart = d.YearStart.UTC()
	d.YearEnd = d.YearEnd.UTC()
	return &d, nil
}
