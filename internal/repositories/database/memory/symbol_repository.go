package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
)

// SymbolRepository keeps the symbol catalog in process memory.
// It backs the "memory" store driver and tests.
type SymbolRepository struct {
	mu   sync.RWMutex
	rows map[string]domain.Symbol

	// FailWrites makes every write return the given error. Used to simulate a broken store.
	FailWrites error
}

// NewSymbolRepository creates an empty in-memory repository.
func NewSymbolRepository() *SymbolRepository {
	return &SymbolRepository{rows: make(map[string]domain.Symbol)}
}

// Ensure implementation matches interface
var _ portsrepo.SymbolRepositoryFacade = (*SymbolRepository)(nil)

func (r *SymbolRepository) HasAnySymbols(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows) > 0, nil
}

func (r *SymbolRepository) GetAllSymbols(ctx context.Context) ([]domain.Symbol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Symbol, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	return domain.SortSymbolsByName(out), nil
}

func (r *SymbolRepository) InsertSymbols(ctx context.Context, symbols []domain.Symbol) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWrites != nil {
		return r.FailWrites
	}
	for _, s := range symbols {
		if existing, ok := r.rows[s.Code]; ok {
			s.IsFavorite = existing.IsFavorite
		}
		r.rows[s.Code] = s
	}
	return nil
}

func (r *SymbolRepository) IsFavorite(ctx context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rows[code]
	if !ok {
		return false, apperrors.ErrNotFound
	}
	return s.IsFavorite, nil
}

func (r *SymbolRepository) GetAllFavorites(ctx context.Context) ([]domain.Symbol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Symbol, 0)
	for _, s := range r.rows {
		if s.IsFavorite {
			out = append(out, s)
		}
	}
	return domain.SortSymbolsByName(out), nil
}

func (r *SymbolRepository) SetFavorite(ctx context.Context, code string, isFavorite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWrites != nil {
		return r.FailWrites
	}
	s, ok := r.rows[code]
	if !ok {
		return apperrors.ErrNotFound
	}
	s.IsFavorite = isFavorite
	r.rows[code] = s
	return nil
}
