package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/SscSPs/currency_board/internal/core/state"
)

// ContentProjector rebuilds the display lists from symbols, rates and the stored favorite flags.
// Flags are read before the store is touched; rates and sort order are taken inside the
// single update that commits the lists, so every published state is already consistent.
type ContentProjector struct {
	BaseService
	store   *state.Store
	symbols portsrepo.SymbolReader
}

// NewContentProjector creates a new ContentProjector.
func NewContentProjector(store *state.Store, symbols portsrepo.SymbolReader, options ...ServiceOption) *ContentProjector {
	p := &ContentProjector{store: store, symbols: symbols}
	applyOptions(&p.BaseService, options)
	return p
}

// Project replaces FavoriteContent when favoritesOnly is set, FullContent otherwise.
// Both are full rebuilds. Favorite flags are read from the store per symbol rather
// than from the cached Symbol so concurrent toggles are picked up.
func (p *ContentProjector) Project(ctx context.Context, favoritesOnly bool) error {
	return p.project(ctx, projection{full: !favoritesOnly, favorites: favoritesOnly})
}

// ProjectAll rebuilds both lists and publishes them together.
func (p *ContentProjector) ProjectAll(ctx context.Context) error {
	return p.project(ctx, projection{full: true, favorites: true})
}

// ProjectView makes the chosen list the active one and rebuilds it in the same update.
func (p *ContentProjector) ProjectView(ctx context.Context, favoritesOnly bool) error {
	return p.project(ctx, projection{full: !favoritesOnly, favorites: favoritesOnly, setMode: true, favoritesOnly: favoritesOnly})
}

type projection struct {
	full          bool
	favorites     bool
	setMode       bool
	favoritesOnly bool
}

func (p *ContentProjector) project(ctx context.Context, req projection) error {
	var full, favorites []domain.Symbol
	var err error
	if req.full {
		if full, err = p.readFullFlags(ctx); err != nil {
			return err
		}
	}
	if req.favorites {
		if favorites, err = p.readFavorites(ctx); err != nil {
			return err
		}
	}

	p.store.Update(func(s domain.ViewState) domain.ViewState {
		if req.full {
			s.FullContent = buildCards(full, s, func(sym domain.Symbol) bool { return sym.IsFavorite })
		}
		if req.favorites {
			s.FavoriteContent = buildCards(favorites, s, func(domain.Symbol) bool { return true })
		}
		if req.setMode {
			s.FavoritesOnly = req.favoritesOnly
		}
		return s
	})

	if req.full {
		p.LogDebug(ctx, "Full content projected", slog.Int("count", len(full)))
	}
	if req.favorites {
		p.LogDebug(ctx, "Favorite content projected", slog.Int("count", len(favorites)))
	}
	return nil
}

// readFullFlags returns the current symbols with IsFavorite taken from the symbol store.
func (p *ContentProjector) readFullFlags(ctx context.Context) ([]domain.Symbol, error) {
	ordered := p.store.Snapshot().SymbolsOrdered
	out := make([]domain.Symbol, 0, len(ordered))
	for _, sym := range ordered {
		fav, err := p.symbols.IsFavorite(ctx, sym.Code)
		if err != nil {
			p.LogError(ctx, err, "Failed to read favorite flag", slog.String("code", sym.Code))
			return nil, fmt.Errorf("failed to read favorite flag for %s: %w", sym.Code, err)
		}
		sym.IsFavorite = fav
		out = append(out, sym)
	}
	return out, nil
}

func (p *ContentProjector) readFavorites(ctx context.Context) ([]domain.Symbol, error) {
	favorites, err := p.symbols.GetAllFavorites(ctx)
	if err != nil {
		p.LogError(ctx, err, "Failed to list favorites")
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// buildCards derives cards for symbols against the rates and sort mode of v.
// Symbols v no longer knows about are skipped.
func buildCards(symbols []domain.Symbol, v domain.ViewState, isFavorite func(domain.Symbol) bool) []domain.CardContent {
	content := make([]domain.CardContent, 0, len(symbols))
	for _, sym := range symbols {
		if _, ok := v.SymbolsByCode[sym.Code]; !ok {
			continue
		}
		content = append(content, newCard(sym, v.Rates, isFavorite(sym)))
	}
	return SortContent(content, v.SortMode)
}

// seedContent builds both lists from symbols that already carry their stored flags.
func seedContent(v domain.ViewState) domain.ViewState {
	v.FullContent = buildCards(v.SymbolsOrdered, v, func(sym domain.Symbol) bool { return sym.IsFavorite })
	favorites := make([]domain.Symbol, 0)
	for _, sym := range v.SymbolsOrdered {
		if sym.IsFavorite {
			favorites = append(favorites, sym)
		}
	}
	v.FavoriteContent = buildCards(favorites, v, func(domain.Symbol) bool { return true })
	return v
}

// rerate points every card at v.Rates and restores v.SortMode on both lists.
func rerate(v domain.ViewState) domain.ViewState {
	v.FullContent = rerateCards(v.FullContent, v)
	v.FavoriteContent = rerateCards(v.FavoriteContent, v)
	return v
}

func rerateCards(content []domain.CardContent, v domain.ViewState) []domain.CardContent {
	out := make([]domain.CardContent, len(content))
	for i, c := range content {
		c.Rate, c.HasRate = v.Rates.Lookup(c.Code)
		out[i] = c
	}
	return SortContent(out, v.SortMode)
}

func newCard(sym domain.Symbol, rates domain.RateTable, isFavorite bool) domain.CardContent {
	rate, ok := rates.Lookup(sym.Code)
	return domain.CardContent{
		Code:       sym.Code,
		Name:       sym.Name,
		Rate:       rate,
		HasRate:    ok,
		IsFavorite: isFavorite,
		IconRef:    IconRef(sym.Code),
	}
}

// IconRef returns the display glyph for a currency code, falling back to the code itself.
func IconRef(code string) string {
	if c := money.GetCurrency(code); c != nil && c.Grapheme != "" {
		return c.Grapheme
	}
	return code
}
