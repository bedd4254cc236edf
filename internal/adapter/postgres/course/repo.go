// Package course implements the per-draft course catalog using PostgreSQL.
package course

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// Repo provides course persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new course repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO courses (id, draft_id, course_code, course_name, credits, course_group, hours, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listSQL = `
SELECT id, draft_id, course_code, course_name, credits, course_group, hours
FROM courses
WHERE draft_id = $1
ORDER BY position ASC`

const deleteAllSQL = `DELETE FROM courses WHERE draft_id = $1`

// List returns the catalog of a draft in upload order.
func (r *Repo) List(ctx context.Context, draftID uuid.UUID) ([]domain.Course, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL, draftID)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		var (
			c         domain.Course
			hoursJSON []byte
		)
		if err := rows.Scan(&c.ID, &c.DraftID, &c.CourseCode, &c.CourseName, &c.Credits, &c.Group, &hoursJSON); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		if err := unmarshalHours(hoursJSON, &c); err != nil {
			return nil, fmt.Errorf("course %s: %w", c.ID, err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	return courses, nil
}

// ReplaceAll swaps the whole catalog of a draft for courses. Callers run it
// inside a transaction so readers never see a partial catalog.
func (r *Repo) ReplaceAll(ctx context.Context, draftID uuid.UUID, courses []domain.Course) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteAllSQL, draftID); err != nil {
		return postgres.MapError(err, "courses of draft", draftID.String())
	}
	if len(courses) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range courses {
		c := &courses[i]
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		c.DraftID = draftID

		hours, err := marshalHours(c)
		if err != nil {
			return fmt.Errorf("course %s: %w", c.CourseCode, err)
		}
		batch.Queue(insertSQL, c.ID, draftID, c.CourseCode, c.CourseName, c.Credits, c.Group, hours, i)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range courses {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "courses of draft", draftID.String())
		}
	}
	return nil
}

// DeleteAll removes the catalog of a draft and reports how many rows went.
func (r *Repo) DeleteAll(ctx context.Context, draftID uuid.UUID) (int64, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteAllSQL, draftID)
	if err != nil {
		return 0, postgres.MapError(err, "courses of draft", draftID.String())
	}
	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for the L/T/P/J hour components
// ---------------------------------------------------------------------------

type hoursJSON struct {
	L domain.Hours `json:"L"`
	T domain.Hours `json:"T"`
	P domain.Hours `json:"P"`
	J domain.Hours `json:"J"`
}

func marshalHours(c *domain.Course) ([]byte, error) {
	return json.Marshal(hoursJSON{L: c.L, T: c.T, P: c.P, J: c.J})
}

func unmarshalHours(data []byte, c *domain.Course) error {
	if len(data) == 0 {
		return nil
	}
	var h hoursJSON
	if err := json.Unmarshal(data, &h); err != nil {
		return fmt.Errorf("unmarshal hours: %w", err)
	}
	c.L, c.T, c.P, c.J = h.L, h.T, h.P, h.J
	return nil
}
