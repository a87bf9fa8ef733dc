package services

import (
	"log/slog"

	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/SscSPs/currency_board/internal/core/state"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// All services share one State Store, which is returned with the container so the caller
// controls its lifetime.
func NewServiceContainer(repos portsrepo.RepositoryProvider, defaultBase string, logger *slog.Logger) (*portssvc.ServiceContainer, *Session) {
	store := state.NewStore(domain.NewViewState())
	opt := WithServiceLogger(logger)

	container := &portssvc.ServiceContainer{}
	container.Bootstrapper = NewSymbolBootstrapper(store, repos.SymbolRepo, repos.RateSource, opt)
	container.Refresher = NewRateRefresher(store, repos.RateSource, opt)
	container.Projector = NewContentProjector(store, repos.SymbolRepo, opt)
	container.Favorites = NewFavoritesManager(repos.SymbolRepo, container.Projector, opt)
	container.Sorter = NewSorter(store, opt)

	session := NewSession(SessionDeps{
		Store:        store,
		Bootstrapper: container.Bootstrapper,
		Refresher:    container.Refresher,
		Favorites:    container.Favorites,
		Projector:    container.Projector,
		Sorter:       container.Sorter,
		DefaultBase:  defaultBase,
	}, opt)
	container.Session = session

	return container, session
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SymbolBootstrapperSvc = (*SymbolBootstrapper)(nil)
	_ portssvc.RateRefresherSvc      = (*RateRefresher)(nil)
	_ portssvc.FavoritesSvc          = (*FavoritesManager)(nil)
	_ portssvc.ContentProjectorSvc   = (*ContentProjector)(nil)
	_ portssvc.SorterSvc             = (*Sorter)(nil)
	_ portssvc.SessionSvcFacade      = (*Session)(nil)
)
