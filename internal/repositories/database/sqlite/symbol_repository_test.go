package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*SymbolRepository, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "symbols.db")
	repo, err := NewSymbolRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo, dbPath
}

func TestSymbolRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	has, err := repo.HasAnySymbols(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.InsertSymbols(ctx, []domain.Symbol{
		{Code: "USD", Name: "US Dollar"},
		{Code: "EUR", Name: "Euro"},
		{Code: "GBP", Name: "British Pound"},
	}))

	has, err = repo.HasAnySymbols(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	all, err := repo.GetAllSymbols(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{
		{Code: "GBP", Name: "British Pound"},
		{Code: "EUR", Name: "Euro"},
		{Code: "USD", Name: "US Dollar"},
	}, all)

	require.NoError(t, repo.SetFavorite(ctx, "USD", true))
	fav, err := repo.IsFavorite(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, fav)

	favorites, err := repo.GetAllFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{{Code: "USD", Name: "US Dollar", IsFavorite: true}}, favorites)

	require.NoError(t, repo.SetFavorite(ctx, "USD", false))
	favorites, err = repo.GetAllFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestInsertSymbolsKeepsFavoriteFlag(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.InsertSymbols(ctx, []domain.Symbol{{Code: "EUR", Name: "Euro"}}))
	require.NoError(t, repo.SetFavorite(ctx, "EUR", true))

	require.NoError(t, repo.InsertSymbols(ctx, []domain.Symbol{{Code: "EUR", Name: "Euro (EU)"}}))

	all, err := repo.GetAllSymbols(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{{Code: "EUR", Name: "Euro (EU)", IsFavorite: true}}, all)
}

func TestUnknownCodeIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	_, err := repo.IsFavorite(ctx, "XXX")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.SetFavorite(ctx, "XXX", true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFavoritesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	repo, dbPath := newTestRepo(t)
	require.NoError(t, repo.InsertSymbols(ctx, []domain.Symbol{{Code: "JPY", Name: "Japanese Yen"}}))
	require.NoError(t, repo.SetFavorite(ctx, "JPY", true))
	require.NoError(t, repo.Close())

	reopened, err := NewSymbolRepository(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	fav, err := reopened.IsFavorite(ctx, "JPY")
	require.NoError(t, err)
	assert.True(t, fav)
}
