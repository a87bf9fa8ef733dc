package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/SscSPs/currency_board/internal/core/state"
	"golang.org/x/sync/singleflight"
)

// SymbolBootstrapper fills the symbol catalog once per session, preferring the local
// cache over the remote service.
type SymbolBootstrapper struct {
	BaseService
	store   *state.Store
	symbols portsrepo.SymbolRepositoryFacade
	source  portsrepo.RateSource
	group   singleflight.Group
}

// NewSymbolBootstrapper creates a new SymbolBootstrapper.
func NewSymbolBootstrapper(store *state.Store, symbols portsrepo.SymbolRepositoryFacade, source portsrepo.RateSource, options ...ServiceOption) *SymbolBootstrapper {
	b := &SymbolBootstrapper{store: store, symbols: symbols, source: source}
	applyOptions(&b.BaseService, options)
	return b
}

// EnsureSymbolsLoaded populates the symbol fields of the state, together with the content
// derived from them. Concurrent calls share one load.
// A network or empty-catalog failure leaves the state empty so a later call can retry.
func (b *SymbolBootstrapper) EnsureSymbolsLoaded(ctx context.Context) (domain.BootstrapSource, error) {
	if b.store.Snapshot().HasSymbols() {
		return domain.BootstrapAlreadyLoaded, nil
	}

	v, err, _ := b.group.Do("symbols", func() (any, error) {
		return b.load(ctx)
	})
	source, _ := v.(domain.BootstrapSource)
	if source == "" {
		source = domain.BootstrapUnavailable
	}
	return source, err
}

func (b *SymbolBootstrapper) load(ctx context.Context) (domain.BootstrapSource, error) {
	// Another caller may have finished loading while we waited on the group.
	if b.store.Snapshot().HasSymbols() {
		return domain.BootstrapAlreadyLoaded, nil
	}

	cached, err := b.symbols.HasAnySymbols(ctx)
	if err != nil {
		b.LogError(ctx, err, "Failed to check symbol cache")
		return domain.BootstrapUnavailable, fmt.Errorf("failed to check symbol cache: %w", err)
	}

	if cached {
		rows, err := b.symbols.GetAllSymbols(ctx)
		if err != nil {
			b.LogError(ctx, err, "Failed to read cached symbols")
			return domain.BootstrapUnavailable, fmt.Errorf("failed to read cached symbols: %w", err)
		}
		ordered := domain.SortSymbolsByName(rows)
		b.store.Update(func(s domain.ViewState) domain.ViewState {
			return seedContent(s.WithSymbols(ordered))
		})
		b.LogInfo(ctx, "Symbols loaded from cache", slog.Int("count", len(ordered)))
		return domain.BootstrapCache, nil
	}

	catalog, err := b.source.FetchSymbolsCatalog(ctx)
	if err != nil {
		b.LogWarn(ctx, err, "Symbol catalog fetch failed, state left empty")
		return domain.BootstrapUnavailable, fmt.Errorf("failed to fetch symbol catalog: %w", err)
	}
	if len(catalog) == 0 {
		b.LogWarn(ctx, apperrors.ErrEmptyCatalog, "Symbol catalog was empty, state left empty")
		return domain.BootstrapUnavailable, apperrors.ErrEmptyCatalog
	}

	ordered := domain.SortSymbolsByName(domain.SymbolsFromCatalog(catalog))

	// Persist first: if the write fails nothing reaches the state either.
	if err := b.symbols.InsertSymbols(ctx, ordered); err != nil {
		b.LogError(ctx, err, "Failed to persist symbol catalog", slog.Int("count", len(ordered)))
		return domain.BootstrapUnavailable, fmt.Errorf("%w: persisting %d symbols: %w", apperrors.ErrPersistence, len(ordered), err)
	}

	b.store.Update(func(s domain.ViewState) domain.ViewState {
		return seedContent(s.WithSymbols(ordered))
	})
	b.LogInfo(ctx, "Symbols loaded from network and cached", slog.Int("count", len(ordered)))
	return domain.BootstrapNetwork, nil
}
