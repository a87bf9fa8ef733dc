// Package app assembles the adapters and services from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/SscSPs/currency_board/internal/core/services"
	"github.com/SscSPs/currency_board/internal/platform/config"
	"github.com/SscSPs/currency_board/internal/repositories/database/memory"
	"github.com/SscSPs/currency_board/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_board/internal/repositories/database/sqlite"
	"github.com/SscSPs/currency_board/internal/repositories/network/ratesapi"
	"github.com/SscSPs/currency_board/pkg/database"
)

// App is a fully wired session with its backing resources.
type App struct {
	Services *portssvc.ServiceContainer
	Session  *services.Session

	closers []func()
}

// Close ends the session and releases the symbol store.
func (a *App) Close() {
	if a.Session != nil {
		a.Session.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// New opens the configured symbol store, builds the rate source and wires the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{}

	symbols, err := a.openSymbolStore(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	source := ratesapi.NewClient(ratesapi.Config{
		BaseURL:     cfg.RatesAPIURL,
		APIKey:      cfg.RatesAPIKey,
		Timeout:     cfg.RatesAPITimeout,
		RPS:         cfg.RatesAPIRPS,
		SymbolsPath: cfg.RatesSymbolsPath,
		RatesPath:   cfg.RatesRatesPath,
	}, ratesapi.WithLogger(logger))

	a.Services, a.Session = services.NewServiceContainer(portsrepo.RepositoryProvider{
		SymbolRepo: symbols,
		RateSource: source,
	}, cfg.DefaultBaseCurrency, logger)

	return a, nil
}

func (a *App) openSymbolStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.SymbolRepositoryFacade, error) {
	switch cfg.SymbolStoreDriver {
	case config.DriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		a.closers = append(a.closers, func() { database.ClosePgxPool(pool, logger) })

		logger.Info("Running database migrations...")
		if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, err
		}
		return pgsql.NewSymbolRepository(pool), nil

	case config.DriverSQLite:
		repo, err := sqlite.NewSymbolRepository(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := repo.Close(); err != nil {
				logger.Error("Error closing sqlite symbol store", slog.String("error", err.Error()))
			}
		})
		logger.Info("Using SQLite symbol store", slog.String("path", cfg.SQLitePath))
		return repo, nil

	case config.DriverMemory:
		logger.Info("Using in-memory symbol store")
		return memory.NewSymbolRepository(), nil
	}
	return nil, fmt.Errorf("unknown symbol store driver %q", cfg.SymbolStoreDriver)
}
