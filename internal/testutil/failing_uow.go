package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/projects/internal/db"
)

// FailingUoW injects Err into the Nth statement issued inside the
// transaction, counting ExecContext and QueryRowContext calls from 1.
// Because a *sql.Row cannot carry an injected error, a failing
// QueryRowContext is rewritten into a query that SQLite rejects.
type FailingUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingTx{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	count  int
	failOn int
	err    error
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.count++
	if f.count == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func (f *failingTx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	f.count++
	if f.count == f.failOn {
		return f.DBTX.QueryRowContext(ctx, `SELECT injected_failure FROM missing_table`)
	}
	return f.DBTX.QueryRowContext(ctx, query, args...)
}

// ErrorUoW fails every transaction with Err before fn runs.
type ErrorUoW struct {
	Err error
}

func (u ErrorUoW) WithinTx(context.Context, func(ctx context.Context, tx db.DBTX) error) error {
	return u.Err
}
