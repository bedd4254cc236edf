// Package registration implements per-(draft, user) registration documents
// using PostgreSQL. The same repository serves submitted registrations and
// in-progress user drafts; they differ only in the backing table.
package registration

import (
	"context"
	"errors"
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

// Table selects the backing table of a Repo.
type Table string

const (
	TableRegistrations Table = "registrations"
	TableUserDrafts    Table = "user_drafts"
)

// Repo provides registration persistence backed by PostgreSQL.
type Repo struct {
	pool  *pgxpool.Pool
	table Table
}

// New creates a repository over the given table.
func New(pool *pgxpool.Pool, table Table) *Repo {
	if table != TableRegistrations && table != TableUserDrafts {
		panic(fmt.Sprintf("registration: unknown table %q", table))
	}
	return &Repo{pool: pool, table: table}
}

var columns = []string{
	"id", "draft_id", "user_id", "user_name", "department", "programme",
	"entries", "status", "version", "created_at", "updated_at",
}

func (r *Repo) entity() string {
	return strings.TrimSuffix(string(r.table), "s")
}

func key(draftID uuid.UUID, userID string) string {
	return draftID.String() + "/" + userID
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the document of userID in draftID.
// Returns domain.ErrNotFound if absent.
func (r *Repo) Get(ctx context.Context, draftID uuid.UUID, userID string) (*domain.Registration, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(string(r.table)).
		Where(sq.Eq{"draft_id": draftID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s query: %w", r.entity(), err)
	}

	reg, err := scanRegistration(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, r.entity(), key(draftID, userID))
	}
	return reg, nil
}

// List returns documents of a draft ordered by user name.
func (r *Repo) List(ctx context.Context, f domain.RegistrationFilter) ([]domain.Registration, error) {
	qb := postgres.Builder().
		Select(columns...).
		From(string(r.table)).
		Where(sq.Eq{"draft_id": f.DraftID}).
		OrderBy("user_name ASC", "user_id ASC")

	if f.UserID != "" {
		qb = qb.Where(sq.Eq{"user_id": f.UserID})
	}
	if f.Status != nil {
		qb = qb.Where(sq.Eq{"status": string(*f.Status)})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s query: %w", r.entity(), err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()

	regs := []domain.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.entity(), err)
		}
		regs = append(regs, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}

	return regs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save writes reg if the stored version still equals expectedVersion.
// expectedVersion 0 means the document must not exist yet. On success the
// stored version is expectedVersion+1. A lost race yields domain.ErrConflict
// and nothing is written.
func (r *Repo) Save(ctx context.Context, reg *domain.Registration, expectedVersion int) (*domain.Registration, error) {
	entries, err := marshalEntries(reg.Entries)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.entity(), key(reg.DraftID, reg.UserID), err)
	}

	updatedAt := reg.UpdatedAt.UTC()
	if reg.UpdatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	updatedAt = updatedAt.Truncate(time.Microsecond)
	createdAt := reg.CreatedAt
	if createdAt.IsZero() {
		createdAt = updatedAt
	}

	var query string
	var args []any
	if expectedVersion == 0 {
		id := reg.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		query, args, err = postgres.Builder().
			Insert(string(r.table)).
			Columns(columns...).
			Values(id, reg.DraftID, reg.UserID, reg.UserName, reg.Department, reg.Programme,
				entries, string(reg.Status), 1, createdAt.UTC(), updatedAt).
			Suffix("ON CONFLICT (draft_id, user_id) DO NOTHING RETURNING " + strings.Join(columns, ", ")).
			ToSql()
	} else {
		query, args, err = postgres.Builder().
			Update(string(r.table)).
			Set("user_name", reg.UserName).
			Set("department", reg.Department).
			Set("programme", reg.Programme).
			Set("entries", entries).
			Set("status", string(reg.Status)).
			Set("version", sq.Expr("version + 1")).
			Set("updated_at", updatedAt).
			Where(sq.Eq{"draft_id": reg.DraftID, "user_id": reg.UserID, "version": expectedVersion}).
			Suffix("RETURNING " + strings.Join(columns, ", ")).
			ToSql()
	}
	if err != nil {
		return nil, fmt.Errorf("build save %s query: %w", r.entity(), err)
	}

	saved, err := scanRegistration(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s %s changed concurrently: %w", r.entity(), key(reg.DraftID, reg.UserID), domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, r.entity(), key(reg.DraftID, reg.UserID))
	}
	return saved, nil
}

// Delete removes the document. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, draftID uuid.UUID, userID string) error {
	query, args, err := postgres.Builder().
		Delete(string(r.table)).
		Where(sq.Eq{"draft_id": draftID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", r.entity(), err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, r.entity(), key(draftID, userID))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", r.entity(), key(draftID, userID), domain.ErrNotFound)
	}
	return nil
}

// UpdateIdentity rewrites the identity snapshot on every document of userID
// and reports how many were touched. Versions are bumped so in-flight
// read-merge-write cycles notice the change.
func (r *Repo) UpdateIdentity(ctx context.Context, userID string, p domain.IdentityPatch) (int64, error) {
	if p.UserName == nil && p.Department == nil && p.Programme == nil {
		return 0, nil
	}

	ub := postgres.Builder().
		Update(string(r.table)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"user_id": userID})

	if p.UserName != nil {
		ub = ub.Set("user_name", *p.UserName)
	}
	if p.Department != nil {
		ub = ub.Set("department", *p.Department)
	}
	if p.Programme != nil {
		ub = ub.Set("programme", *p.Programme)
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update %s identity query: %w", r.entity(), err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, r.entity(), userID)
	}
	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRegistration(row pgx.Row) (*domain.Registration, error) {
	var (
		reg         domain.Registration
		entriesJSON []byte
		status      string
	)
	err := row.Scan(&reg.ID, &reg.DraftID, &reg.UserID, &reg.UserName, &reg.Department, &reg.Programme,
		&entriesJSON, &status, &reg.Version, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	reg.Status = domain.RegistrationStatus(status)

	entries, err := unmarshalEntries(entriesJSON)
	if err != nil {
		return nil, fmt.Errorf("registration %s: %w", reg.ID, err)
	}
	reg.Entries = entries

	return &reg, nil
}
