package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies all pending goose migrations from fsys using pool's
// connection settings. It returns the number of applied migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) (int, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	return len(results), nil
}

// SchemaCheck reports whether the database schema is behind the embedded
// migrations. It backs the "schema" readiness component.
type SchemaCheck struct {
	pool *pgxpool.Pool
	fsys fs.FS
}

// NewSchemaCheck creates a SchemaCheck over fsys.
func NewSchemaCheck(pool *pgxpool.Pool, fsys fs.FS) *SchemaCheck {
	return &SchemaCheck{pool: pool, fsys: fsys}
}

// Ping returns an error while any migration is still pending.
func (c *SchemaCheck) Ping(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(c.pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, c.fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("goose pending: %w", err)
	}
	if pending {
		return errors.New("pending migrations")
	}
	return nil
}
