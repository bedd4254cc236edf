package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs service-level units of work in one transaction. Every
// registration write, catalog replace and admin mutation pairs its change
// with an audit record inside RunInTx.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx runs fn in a Read Committed transaction and commits when fn
// returns nil. An error or panic from fn rolls back; the panic is re-raised.
// A call nested inside another RunInTx joins the outer transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	var fnErr error
	err := pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		fnErr = fn(context.WithValue(ctx, txCtxKey{}, tx))
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("tx: %w", err)
	}
	return nil
}
