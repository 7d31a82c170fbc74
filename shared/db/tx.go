package db

import (
	"context"
	"database/sql"
	"fmt"
)

// txKey is the context key for an in-flight transaction
type txKey struct{}

// Executor is the subset of *sql.DB and *sql.Tx that repositories need.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx returns a new context carrying the given transaction
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFrom retrieves the transaction from the context if one is present
func TxFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// GetExecutor returns the context's transaction when one exists, falling
// back to the pool. Statements issued through the result join the enclosing
// transaction automatically.
func GetExecutor(ctx context.Context, db *sql.DB) Executor {
	if tx, ok := TxFrom(ctx); ok {
		return tx
	}
	return db
}

// RunInTransaction executes fn inside a transaction. A transaction already
// present in the context is reused, and commit/rollback is left to the
// outermost caller. Otherwise a new transaction is started, committed when
// fn returns nil and rolled back when it returns an error.
func RunInTransaction(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	if _, ok := TxFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction after error %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
