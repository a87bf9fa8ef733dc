package repositories

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// SymbolReader defines read operations for the persisted symbol catalog
type SymbolReader interface {
	// HasAnySymbols reports whether at least one symbol row exists.
	HasAnySymbols(ctx context.Context) (bool, error)

	// GetAllSymbols retrieves every stored symbol.
	GetAllSymbols(ctx context.Context) ([]domain.Symbol, error)

	// IsFavorite returns the stored favorite flag for a code.
	// Returns apperrors.ErrNotFound when the code is unknown.
	IsFavorite(ctx context.Context, code string) (bool, error)

	// GetAllFavorites retrieves every symbol flagged as favorite, ordered by name.
	GetAllFavorites(ctx context.Context) ([]domain.Symbol, error)
}

// SymbolWriter defines write operations for the persisted symbol catalog
type SymbolWriter interface {
	// InsertSymbols upserts all symbols atomically. Existing favorite flags are kept.
	InsertSymbols(ctx context.Context, symbols []domain.Symbol) error

	// SetFavorite sets the favorite flag for a code.
	// Returns apperrors.ErrNotFound when the code is unknown.
	SetFavorite(ctx context.Context, code string, isFavorite bool) error
}

// SymbolRepositoryFacade combines all symbol-related repository interfaces
// This is a facade for clients that need access to all operations
type SymbolRepositoryFacade interface {
	SymbolReader
	SymbolWriter
}

// SymbolRepositoryWithTx is a symbol repository backed by a transactional database
type SymbolRepositoryWithTx interface {
	SymbolRepositoryFacade
	TransactionManager
}
