// Package otp implements the one-time code ledger using PostgreSQL.
// At most one row exists per employee; the primary key enforces it.
package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// Repo provides OTP persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new OTP repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const replaceSQL = `
INSERT INTO otps (employee_id, hashed_otp, expires_at, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (employee_id) DO UPDATE
SET hashed_otp = EXCLUDED.hashed_otp,
    expires_at = EXCLUDED.expires_at,
    created_at = EXCLUDED.created_at`

const getSQL = `
SELECT employee_id, hashed_otp, expires_at, created_at
FROM otps
WHERE employee_id = $1`

const consumeSQL = `DELETE FROM otps WHERE employee_id = $1 AND hashed_otp = $2`

const deleteSQL = `DELETE FROM otps WHERE employee_id = $1`

const deleteExpiredSQL = `DELETE FROM otps WHERE expires_at < $1`

// Replace stores rec as the only live code of its employee, discarding any
// previous one in the same statement.
func (r *Repo) Replace(ctx context.Context, rec *domain.OTPRecord) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, replaceSQL,
		rec.EmployeeID,
		rec.HashedOTP,
		rec.ExpiresAt.UTC(),
		rec.CreatedAt.UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "otp", rec.EmployeeID)
	}
	return nil
}

// Get returns the live code record. Returns domain.ErrNotFound if none exists.
func (r *Repo) Get(ctx context.Context, employeeID string) (*domain.OTPRecord, error) {
	var rec domain.OTPRecord
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, employeeID).
		Scan(&rec.EmployeeID, &rec.HashedOTP, &rec.ExpiresAt, &rec.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "otp", employeeID)
	}
	return &rec, nil
}

// Consume deletes the record only if it still holds hashedOTP. It reports
// whether this call removed it, so two concurrent verifications of the same
// code cannot both succeed.
func (r *Repo) Consume(ctx context.Context, employeeID, hashedOTP string) (bool, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, consumeSQL, employeeID, hashedOTP)
	if err != nil {
		return false, postgres.MapError(err, "otp", employeeID)
	}
	return ct.RowsAffected() == 1, nil
}

// Delete removes the employee's record, if any.
func (r *Repo) Delete(ctx context.Context, employeeID string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, employeeID); err != nil {
		return postgres.MapError(err, "otp", employeeID)
	}
	return nil
}

// DeleteExpired removes every record that expired before now.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteExpiredSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired otps: %w", err)
	}
	return ct.RowsAffected(), nil
}
