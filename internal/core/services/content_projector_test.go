package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/core/services"
	"github.com/SscSPs/currency_board/internal/core/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ContentProjectorTestSuite struct {
	suite.Suite
	mockRepo *MockSymbolRepository
	store    *state.Store
	service  *services.ContentProjector
}

func (suite *ContentProjectorTestSuite) SetupTest() {
	suite.mockRepo = new(MockSymbolRepository)
	initial := domain.NewViewState().WithSymbols([]domain.Symbol{
		{Code: "EUR", Name: "Euro"},
		{Code: "USD", Name: "US Dollar"},
	})
	initial.Rates = domain.RateTable{"EUR": "0.92"}
	suite.store = state.NewStore(initial)
	suite.service = services.NewContentProjector(suite.store, suite.mockRepo)
}

func (suite *ContentProjectorTestSuite) TestFullCatalog() {
	ctx := context.Background()
	suite.mockRepo.On("IsFavorite", ctx, "EUR").Return(true, nil).Once()
	suite.mockRepo.On("IsFavorite", ctx, "USD").Return(false, nil).Once()

	suite.Require().NoError(suite.service.Project(ctx, false))

	content := suite.store.Snapshot().FullContent
	suite.Require().Len(content, 2)
	suite.Equal(domain.CardContent{Code: "EUR", Name: "Euro", Rate: "0.92", HasRate: true, IsFavorite: true, IconRef: "€"}, content[0])
	suite.Equal("USD", content[1].Code)
	suite.False(content[1].HasRate)
	suite.Equal(domain.MissingRateDisplay, content[1].DisplayRate())
	suite.False(content[1].IsFavorite)
	suite.Equal("$", content[1].IconRef)
	suite.Empty(suite.store.Snapshot().FavoriteContent)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ContentProjectorTestSuite) TestFavoritesOnly() {
	ctx := context.Background()
	suite.mockRepo.On("GetAllFavorites", ctx).Return([]domain.Symbol{{Code: "EUR", Name: "Euro", IsFavorite: true}}, nil).Once()

	suite.Require().NoError(suite.service.Project(ctx, true))

	snap := suite.store.Snapshot()
	suite.Require().Len(snap.FavoriteContent, 1)
	suite.Equal("EUR", snap.FavoriteContent[0].Code)
	suite.True(snap.FavoriteContent[0].IsFavorite)
	suite.Equal("0.92", snap.FavoriteContent[0].DisplayRate())
	suite.Empty(snap.FullContent)
	suite.mockRepo.AssertNotCalled(suite.T(), "IsFavorite")
}

func (suite *ContentProjectorTestSuite) TestStoreErrorLeavesContentUntouched() {
	ctx := context.Background()
	suite.mockRepo.On("IsFavorite", ctx, "EUR").Return(false, assert.AnError).Once()

	err := suite.service.Project(ctx, false)

	suite.ErrorIs(err, assert.AnError)
	suite.Empty(suite.store.Snapshot().FullContent)
}

func (suite *ContentProjectorTestSuite) TestRebuildReplacesPreviousContent() {
	ctx := context.Background()
	suite.mockRepo.On("GetAllFavorites", ctx).Return([]domain.Symbol{{Code: "EUR", Name: "Euro", IsFavorite: true}}, nil).Once()
	suite.mockRepo.On("GetAllFavorites", ctx).Return([]domain.Symbol{}, nil).Once()

	suite.Require().NoError(suite.service.Project(ctx, true))
	suite.Require().NoError(suite.service.Project(ctx, true))

	suite.Empty(suite.store.Snapshot().FavoriteContent)
}

func (suite *ContentProjectorTestSuite) TestProjectViewSwitchesModeWithContent() {
	ctx := context.Background()
	suite.mockRepo.On("GetAllFavorites", ctx).Return([]domain.Symbol{{Code: "EUR", Name: "Euro", IsFavorite: true}}, nil).Once()

	updates, cancel := suite.store.Subscribe()
	defer cancel()
	<-updates

	suite.Require().NoError(suite.service.ProjectView(ctx, true))

	published := <-updates
	suite.True(published.FavoritesOnly)
	suite.Equal([]string{"EUR"}, contentCodes(published.FavoriteContent))
	suite.Equal(uint64(1), published.Version)
}

func (suite *ContentProjectorTestSuite) TestProjectAllKeepsSortMode() {
	ctx := context.Background()
	suite.store.Update(func(s domain.ViewState) domain.ViewState {
		s.SortMode = domain.SortRate
		return s
	})
	suite.mockRepo.On("IsFavorite", ctx, "EUR").Return(true, nil).Once()
	suite.mockRepo.On("IsFavorite", ctx, "USD").Return(false, nil).Once()
	suite.mockRepo.On("GetAllFavorites", ctx).Return([]domain.Symbol{{Code: "EUR", Name: "Euro", IsFavorite: true}}, nil).Once()

	suite.Require().NoError(suite.service.ProjectAll(ctx))

	snap := suite.store.Snapshot()
	suite.Equal([]string{"USD", "EUR"}, contentCodes(snap.FullContent))
	suite.Equal([]string{"EUR"}, contentCodes(snap.FavoriteContent))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestContentProjectorService(t *testing.T) {
	suite.Run(t, new(ContentProjectorTestSuite))
}

func TestIconRef(t *testing.T) {
	assert.Equal(t, "€", services.IconRef("EUR"))
	assert.Equal(t, "XYZ", services.IconRef("XYZ"))
}
