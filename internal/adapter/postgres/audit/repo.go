// Package audit implements the audit log repository using PostgreSQL.
// It provides append-only operations for audit records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO audit_log (id, actor, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, actor, entity_type, entity_id, action, changes, created_at`

var auditColumns = []string{"id", "actor", "entity_type", "entity_id", "action", "changes", "created_at"}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted record.
// A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		record.ID, record.Actor, string(record.EntityType), record.EntityID,
		string(record.Action), changesJSON, record.CreatedAt,
	)

	saved, err := scanRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID.String())
	}
	return saved, nil
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the draft, catalog and user services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns audit records newest first. A non-empty entityType narrows the
// result to that type and a non-empty entityID to that entity.
func (r *Repo) List(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.AuditRecord, error) {
	qb := postgres.Builder().
		Select(auditColumns...).
		From("audit_log").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if entityType != "" {
		qb = qb.Where(sq.Eq{"entity_type": string(entityType)})
	}
	if entityID != "" {
		qb = qb.Where(sq.Eq{"entity_id": entityID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&rec.ID, &rec.Actor, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		rec.Changes = make(map[string]any)
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}
	return rec, nil
}
