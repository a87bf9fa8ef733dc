package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/SscSPs/currency_board/internal/core/state"
)

// Session maps rendering intents onto the component operations and owns the
// lifecycle of one State Store. Mutating operations run one at a time; the
// network half of a rate refresh runs outside that lock. Each component commits
// a complete state in a single update, so readers that skip opMu never see a
// half-applied intent.
type Session struct {
	BaseService
	store        *state.Store
	bootstrapper portssvc.SymbolBootstrapperSvc
	refresher    portssvc.RateRefresherSvc
	favorites    portssvc.FavoritesSvc
	projector    portssvc.ContentProjectorSvc
	sorter       portssvc.SorterSvc
	defaultBase  string

	opMu sync.Mutex
}

// SessionDeps lists the collaborators a Session drives.
type SessionDeps struct {
	Store        *state.Store
	Bootstrapper portssvc.SymbolBootstrapperSvc
	Refresher    portssvc.RateRefresherSvc
	Favorites    portssvc.FavoritesSvc
	Projector    portssvc.ContentProjectorSvc
	Sorter       portssvc.SorterSvc
	DefaultBase  string
}

// NewSession creates a new Session.
func NewSession(deps SessionDeps, options ...ServiceOption) *Session {
	s := &Session{
		store:        deps.Store,
		bootstrapper: deps.Bootstrapper,
		refresher:    deps.Refresher,
		favorites:    deps.Favorites,
		projector:    deps.Projector,
		sorter:       deps.Sorter,
		defaultBase:  strings.ToUpper(deps.DefaultBase),
	}
	applyOptions(&s.BaseService, options)
	return s
}

// Start loads symbols, fetches rates for the default base currency and projects both lists.
func (s *Session) Start(ctx context.Context) error {
	s.LogInfo(ctx, "Starting session", slog.String("default_base", s.defaultBase))
	if s.defaultBase != "" {
		return s.SelectBaseCurrency(ctx, s.defaultBase)
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()
	if err := s.ensureSymbols(ctx); err != nil {
		return err
	}
	return s.reproject(ctx)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() domain.ViewState {
	return s.store.Snapshot()
}

// Subscribe registers an observer of every published state.
func (s *Session) Subscribe() (<-chan domain.ViewState, func()) {
	return s.store.Subscribe()
}

// Close ends the session and every subscription.
func (s *Session) Close() {
	s.store.Close()
}

// SelectBaseCurrency refreshes rates against code and re-projects. A failed or
// superseded fetch keeps the rates already on screen.
func (s *Session) SelectBaseCurrency(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return apperrors.NewValidationError("currency code must be 3 letters")
	}

	s.opMu.Lock()
	err := s.ensureSymbols(ctx)
	s.opMu.Unlock()
	if err != nil {
		return err
	}

	if err := s.absorb(ctx, s.refresher.RefreshRates(ctx, code), "Rate refresh absorbed", slog.String("base", code)); err != nil {
		return err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.reproject(ctx)
}

// ToggleFavorite flips the favorite flag of code and keeps the current sort order.
func (s *Session) ToggleFavorite(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	s.opMu.Lock()
	defer s.opMu.Unlock()

	_, err := s.favorites.ToggleFavorite(ctx, code)
	return err
}

// SetSortMode orders both lists by code or by rate.
func (s *Session) SetSortMode(ctx context.Context, byAlphabet bool) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.sorter.ApplySort(ctx, byAlphabet)
}

// SetContentMode switches between the full catalog and the favorites view and rebuilds the chosen list.
func (s *Session) SetContentMode(ctx context.Context, favoritesOnly bool) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.projector.ProjectView(ctx, favoritesOnly)
}

// ensureSymbols retries the bootstrap while the catalog is still empty. Callers hold opMu.
func (s *Session) ensureSymbols(ctx context.Context) error {
	if s.store.Snapshot().HasSymbols() {
		return nil
	}
	source, err := s.bootstrapper.EnsureSymbolsLoaded(ctx)
	if err != nil {
		return s.absorb(ctx, err, "Symbol bootstrap absorbed")
	}
	s.LogDebug(ctx, "Symbols ready", slog.String("source", string(source)))
	return nil
}

// reproject rebuilds both lists in the current sort order. Callers hold opMu.
func (s *Session) reproject(ctx context.Context) error {
	return s.projector.ProjectAll(ctx)
}

// absorb swallows failures that should leave stale data on screen rather than surface.
func (s *Session) absorb(ctx context.Context, err error, msg string, keyvals ...any) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAbsorbable(err) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return nil
	}
	return err
}
