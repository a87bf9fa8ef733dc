package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/core/services"
	"github.com/SscSPs/currency_board/internal/core/state"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateRefresherTestSuite struct {
	suite.Suite
	mockSource *MockRateSource
	store      *state.Store
	service    *services.RateRefresher
}

func (suite *RateRefresherTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)
	suite.store = state.NewStore(domain.NewViewState())
	suite.service = services.NewRateRefresher(suite.store, suite.mockSource)
}

func (suite *RateRefresherTestSuite) TestFailureKeepsPreviousRates() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(domain.RateTable{"EUR": "0.92"}, nil).Once()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(nil, fmt.Errorf("status 500: %w", apperrors.ErrNetwork)).Once()

	suite.Require().NoError(suite.service.RefreshRates(ctx, "USD"))
	err := suite.service.RefreshRates(ctx, "USD")

	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Equal(domain.RateTable{"EUR": "0.92"}, suite.store.Snapshot().Rates)
	suite.Equal("USD", suite.store.Snapshot().BaseCurrency)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateRefresherTestSuite) TestReplacesTableWholesale() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(domain.RateTable{"EUR": "0.92", "GBP": "0.79"}, nil).Once()
	suite.mockSource.On("FetchRates", ctx, "EUR").Return(domain.RateTable{"JPY": "161.2"}, nil).Once()

	suite.Require().NoError(suite.service.RefreshRates(ctx, "USD"))
	suite.Require().NoError(suite.service.RefreshRates(ctx, "eur"))

	snap := suite.store.Snapshot()
	suite.Equal(domain.RateTable{"JPY": "161.2"}, snap.Rates)
	suite.Equal("EUR", snap.BaseCurrency)
	_, ok := snap.Rates.Lookup("EUR")
	suite.False(ok)
}

func (suite *RateRefresherTestSuite) TestStaleResponseIsDiscarded() {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	suite.mockSource.On("FetchRates", ctx, "USD").
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(domain.RateTable{"EUR": "0.92"}, nil).Once()
	suite.mockSource.On("FetchRates", ctx, "GBP").Return(domain.RateTable{"EUR": "1.17"}, nil).Once()

	slowErr := make(chan error, 1)
	go func() {
		slowErr <- suite.service.RefreshRates(ctx, "USD")
	}()

	<-started
	suite.Require().NoError(suite.service.RefreshRates(ctx, "GBP"))
	close(release)

	err := <-slowErr
	suite.ErrorIs(err, apperrors.ErrStaleResponse)
	snap := suite.store.Snapshot()
	suite.Equal("GBP", snap.BaseCurrency)
	suite.Equal(domain.RateTable{"EUR": "1.17"}, snap.Rates)
}

func (suite *RateRefresherTestSuite) TestCardsFollowNewRatesInSamePublish() {
	ctx := context.Background()
	initial := domain.NewViewState().WithSymbols([]domain.Symbol{{Code: "EUR", Name: "Euro"}, {Code: "GBP", Name: "British Pound"}})
	initial.Rates = domain.RateTable{"EUR": "0.92", "GBP": "0.79"}
	initial.SortMode = domain.SortRate
	initial.FullContent = []domain.CardContent{
		{Code: "GBP", Name: "British Pound", Rate: "0.79", HasRate: true},
		{Code: "EUR", Name: "Euro", Rate: "0.92", HasRate: true, IsFavorite: true},
	}
	initial.FavoriteContent = []domain.CardContent{{Code: "EUR", Name: "Euro", Rate: "0.92", HasRate: true, IsFavorite: true}}
	suite.store = state.NewStore(initial)
	suite.service = services.NewRateRefresher(suite.store, suite.mockSource)

	updates, cancel := suite.store.Subscribe()
	defer cancel()
	<-updates

	suite.mockSource.On("FetchRates", ctx, "JPY").Return(domain.RateTable{"EUR": "0.0052", "GBP": "0.0061"}, nil).Once()
	suite.Require().NoError(suite.service.RefreshRates(ctx, "JPY"))

	published := <-updates
	suite.Equal("JPY", published.BaseCurrency)
	suite.Equal([]string{"EUR", "GBP"}, contentCodes(published.FullContent))
	suite.Equal("0.0061", findCard(published.FullContent, "GBP").Rate)
	suite.Equal("0.0052", findCard(published.FullContent, "EUR").Rate)
	suite.True(findCard(published.FullContent, "EUR").IsFavorite)
	suite.Equal("0.0052", published.FavoriteContent[0].Rate)
}

func (suite *RateRefresherTestSuite) TestEmptyBaseIsRejected() {
	err := suite.service.RefreshRates(context.Background(), "  ")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSource.AssertNotCalled(suite.T(), "FetchRates", mock.Anything, mock.Anything)
}

func TestRateRefresherService(t *testing.T) {
	suite.Run(t, new(RateRefresherTestSuite))
}
