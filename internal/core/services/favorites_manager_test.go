package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/core/services"
	"github.com/SscSPs/currency_board/internal/core/state"
	"github.com/SscSPs/currency_board/internal/repositories/database/memory"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FavoritesManagerTestSuite struct {
	suite.Suite
	repo      *memory.SymbolRepository
	store     *state.Store
	projector *services.ContentProjector
	service   *services.FavoritesManager
}

func (suite *FavoritesManagerTestSuite) SetupTest() {
	ctx := context.Background()
	symbols := []domain.Symbol{{Code: "EUR", Name: "Euro"}, {Code: "USD", Name: "US Dollar"}}
	suite.repo = memory.NewSymbolRepository()
	suite.Require().NoError(suite.repo.InsertSymbols(ctx, symbols))

	initial := domain.NewViewState().WithSymbols(symbols)
	initial.Rates = domain.RateTable{"EUR": "0.92", "USD": "1"}
	suite.store = state.NewStore(initial)
	suite.projector = services.NewContentProjector(suite.store, suite.repo)
	suite.service = services.NewFavoritesManager(suite.repo, suite.projector)
}

func (suite *FavoritesManagerTestSuite) TestFavoriteRoundTrip() {
	ctx := context.Background()

	isFav, err := suite.service.ToggleFavorite(ctx, "EUR")
	suite.Require().NoError(err)
	suite.True(isFav)

	favorites, err := suite.repo.GetAllFavorites(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"EUR"}, symbolCodes(favorites))

	snap := suite.store.Snapshot()
	suite.Equal([]string{"EUR"}, contentCodes(snap.FavoriteContent))
	suite.True(findCard(snap.FullContent, "EUR").IsFavorite)
	suite.False(findCard(snap.FullContent, "USD").IsFavorite)

	isFav, err = suite.service.ToggleFavorite(ctx, "EUR")
	suite.Require().NoError(err)
	suite.False(isFav)

	favorites, err = suite.repo.GetAllFavorites(ctx)
	suite.Require().NoError(err)
	suite.Empty(favorites)

	snap = suite.store.Snapshot()
	suite.Empty(snap.FavoriteContent)
	suite.False(findCard(snap.FullContent, "EUR").IsFavorite)
}

func (suite *FavoritesManagerTestSuite) TestUnknownCode() {
	_, err := suite.service.ToggleFavorite(context.Background(), "XXX")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FavoritesManagerTestSuite) TestPersistenceFailureSkipsProjection() {
	ctx := context.Background()
	mockRepo := new(MockSymbolRepository)
	mockProjector := new(MockContentProjector)
	service := services.NewFavoritesManager(mockRepo, mockProjector)
	writeErr := errors.New("read-only file system")

	mockRepo.On("IsFavorite", ctx, "EUR").Return(false, nil).Once()
	mockRepo.On("SetFavorite", ctx, "EUR", true).Return(writeErr).Once()

	_, err := service.ToggleFavorite(ctx, "EUR")

	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.ErrorIs(err, writeErr)
	mockProjector.AssertNotCalled(suite.T(), "ProjectAll", mock.Anything)
}

func (suite *FavoritesManagerTestSuite) TestProjectsBothViews() {
	ctx := context.Background()
	mockRepo := new(MockSymbolRepository)
	mockProjector := new(MockContentProjector)
	service := services.NewFavoritesManager(mockRepo, mockProjector)

	mockRepo.On("IsFavorite", ctx, "USD").Return(true, nil).Once()
	mockRepo.On("SetFavorite", ctx, "USD", false).Return(nil).Once()
	mockProjector.On("ProjectAll", ctx).Return(nil).Once()

	isFav, err := service.ToggleFavorite(ctx, "USD")

	suite.Require().NoError(err)
	suite.False(isFav)
	mockRepo.AssertExpectations(suite.T())
	mockProjector.AssertExpectations(suite.T())
}

func TestFavoritesManagerService(t *testing.T) {
	suite.Run(t, new(FavoritesManagerTestSuite))
}

func findCard(content []domain.CardContent, code string) domain.CardContent {
	for _, c := range content {
		if c.Code == code {
			return c
		}
	}
	return domain.CardContent{}
}
