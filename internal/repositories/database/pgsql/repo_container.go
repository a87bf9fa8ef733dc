package pgsql

import (
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewSymbolRepository returns the PostgreSQL-backed symbol store.
func NewSymbolRepository(dbPool *pgxpool.Pool) portsrepo.SymbolRepositoryWithTx {
	return newPgxSymbolRepository(dbPool)
}
