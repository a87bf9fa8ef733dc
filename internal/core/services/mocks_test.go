package services_test

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock SymbolRepository ---
type MockSymbolRepository struct {
	mock.Mock
}

func (m *MockSymbolRepository) HasAnySymbols(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSymbolRepository) GetAllSymbols(ctx context.Context) ([]domain.Symbol, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Symbol), args.Error(1)
}

func (m *MockSymbolRepository) InsertSymbols(ctx context.Context, symbols []domain.Symbol) error {
	args := m.Called(ctx, symbols)
	return args.Error(0)
}

func (m *MockSymbolRepository) IsFavorite(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockSymbolRepository) GetAllFavorites(ctx context.Context) ([]domain.Symbol, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Symbol), args.Error(1)
}

func (m *MockSymbolRepository) SetFavorite(ctx context.Context, code string, isFavorite bool) error {
	args := m.Called(ctx, code, isFavorite)
	return args.Error(0)
}

var _ portsrepo.SymbolRepositoryFacade = (*MockSymbolRepository)(nil)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchSymbolsCatalog(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockRateSource) FetchRates(ctx context.Context, base string) (domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

var _ portsrepo.RateSource = (*MockRateSource)(nil)

// --- Mock ContentProjector ---
type MockContentProjector struct {
	mock.Mock
}

func (m *MockContentProjector) Project(ctx context.Context, favoritesOnly bool) error {
	args := m.Called(ctx, favoritesOnly)
	return args.Error(0)
}

func (m *MockContentProjector) ProjectAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContentProjector) ProjectView(ctx context.Context, favoritesOnly bool) error {
	args := m.Called(ctx, favoritesOnly)
	return args.Error(0)
}

func symbolCodes(symbols []domain.Symbol) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.Code
	}
	return out
}

func contentCodes(content []domain.CardContent) []string {
	out := make([]string, len(content))
	for i, c := range content {
		out[i] = c.Code
	}
	return out
}
