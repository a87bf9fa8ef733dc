package services

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// SymbolBootstrapperSvc populates the symbol catalog once per session
type SymbolBootstrapperSvc interface {
	// EnsureSymbolsLoaded loads symbols from the cache, falling back to the network.
	// It is a no-op when the state already holds symbols.
	EnsureSymbolsLoaded(ctx context.Context) (domain.BootstrapSource, error)
}

// RateRefresherSvc replaces the rate table from the network
type RateRefresherSvc interface {
	// RefreshRates fetches rates against base and replaces the table wholesale on success.
	RefreshRates(ctx context.Context, base string) error
}

// FavoritesSvc toggles persisted favorite flags
type FavoritesSvc interface {
	// ToggleFavorite flips the favorite flag for code, re-projects content and returns the new flag.
	ToggleFavorite(ctx context.Context, code string) (bool, error)
}

// ContentProjectorSvc derives the display lists from symbols, rates and favorite flags
type ContentProjectorSvc interface {
	// Project rebuilds FavoriteContent when favoritesOnly is set, FullContent otherwise.
	Project(ctx context.Context, favoritesOnly bool) error

	// ProjectAll rebuilds both lists and publishes them together.
	ProjectAll(ctx context.Context) error

	// ProjectView marks the chosen list as active and rebuilds it in the same publish.
	ProjectView(ctx context.Context, favoritesOnly bool) error
}

// SorterSvc reorders the derived display lists
type SorterSvc interface {
	// ApplySort orders both lists by code when byAlphabet is set, by numeric rate otherwise.
	ApplySort(ctx context.Context, byAlphabet bool) error
}
