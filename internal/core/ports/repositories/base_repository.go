package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes the pgx transaction a symbol store runs its catalog
// upsert in. InsertSymbols commits every row or none of them.
type TransactionManager interface {
	// Begin opens the transaction a catalog upsert is written through.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit makes a finished upsert visible.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback discards a partial upsert. Rolling back a closed tx is not an error.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
