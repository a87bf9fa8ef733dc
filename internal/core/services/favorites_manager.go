package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_board/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
)

// FavoritesManager flips persisted favorite flags and re-projects content afterwards.
type FavoritesManager struct {
	BaseService
	symbols   portsrepo.SymbolRepositoryFacade
	projector portssvc.ContentProjectorSvc
}

// NewFavoritesManager creates a new FavoritesManager.
func NewFavoritesManager(symbols portsrepo.SymbolRepositoryFacade, projector portssvc.ContentProjectorSvc, options ...ServiceOption) *FavoritesManager {
	m := &FavoritesManager{symbols: symbols, projector: projector}
	applyOptions(&m.BaseService, options)
	return m
}

// ToggleFavorite flips the stored flag for code and rebuilds both content lists.
// A failed write is returned as ErrPersistence and the lists are left untouched.
func (m *FavoritesManager) ToggleFavorite(ctx context.Context, code string) (bool, error) {
	current, err := m.symbols.IsFavorite(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, fmt.Errorf("symbol %s: %w", code, err)
		}
		m.LogError(ctx, err, "Failed to read favorite flag", slog.String("code", code))
		return false, fmt.Errorf("failed to read favorite flag for %s: %w", code, err)
	}

	next := !current
	if err := m.symbols.SetFavorite(ctx, code, next); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, fmt.Errorf("symbol %s: %w", code, err)
		}
		m.LogError(ctx, err, "Failed to persist favorite flag", slog.String("code", code), slog.Bool("is_favorite", next))
		return false, fmt.Errorf("%w: favorite flag for %s: %w", apperrors.ErrPersistence, code, err)
	}

	if err := m.projector.ProjectAll(ctx); err != nil {
		return next, err
	}

	m.LogInfo(ctx, "Favorite toggled", slog.String("code", code), slog.Bool("is_favorite", next))
	return next, nil
}
