package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/core/services"
	"github.com/SscSPs/currency_board/internal/core/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(code, rate string) domain.CardContent {
	return domain.CardContent{Code: code, Name: code + " name", Rate: rate, HasRate: rate != ""}
}

func TestApplySortDeterminism(t *testing.T) {
	ctx := context.Background()
	initial := domain.NewViewState()
	initial.FullContent = []domain.CardContent{card("B", "2.0"), card("A", "1.0"), card("C", "3.0")}
	initial.FavoriteContent = []domain.CardContent{card("C", "3.0"), card("B", "2.0")}
	store := state.NewStore(initial)
	sorter := services.NewSorter(store)

	require.NoError(t, sorter.ApplySort(ctx, false))
	snap := store.Snapshot()
	assert.Equal(t, []string{"A", "B", "C"}, contentCodes(snap.FullContent))
	assert.Equal(t, []string{"B", "C"}, contentCodes(snap.FavoriteContent))
	assert.Equal(t, domain.SortRate, snap.SortMode)

	require.NoError(t, sorter.ApplySort(ctx, true))
	snap = store.Snapshot()
	assert.Equal(t, []string{"A", "B", "C"}, contentCodes(snap.FullContent))
	assert.Equal(t, domain.SortAlphabet, snap.SortMode)
}

func TestAlphabetIgnoresRate(t *testing.T) {
	sorted := services.SortContent([]domain.CardContent{card("C", "0.1"), card("A", "9"), card("B", "5")}, domain.SortAlphabet)
	assert.Equal(t, []string{"A", "B", "C"}, contentCodes(sorted))
}

func TestRateSortIsNumericNotLexical(t *testing.T) {
	sorted := services.SortContent([]domain.CardContent{card("X", "10"), card("Y", "9.5"), card("Z", "100")}, domain.SortRate)
	assert.Equal(t, []string{"Y", "X", "Z"}, contentCodes(sorted))
}

func TestRateSortInvalidAndMissingRankLowestAndStable(t *testing.T) {
	input := []domain.CardContent{
		card("A", "1.5"),
		card("B", "n/a"),
		card("C", ""),
		card("D", "0.5"),
		card("E", "1e400x"),
	}

	sorted := services.SortContent(input, domain.SortRate)

	assert.Equal(t, []string{"B", "C", "E", "D", "A"}, contentCodes(sorted))
	assert.Equal(t, "A", input[0].Code, "input slice must keep its order")
}

func TestSortOnlyChangesOrder(t *testing.T) {
	input := []domain.CardContent{
		{Code: "B", Name: "Bee", Rate: "2", HasRate: true, IsFavorite: true, IconRef: "b"},
		{Code: "A", Name: "Ay", Rate: "1", HasRate: true, IconRef: "a"},
	}

	sorted := services.SortContent(input, domain.SortRate)

	assert.ElementsMatch(t, input, sorted)
	assert.Equal(t, input[1], sorted[0])
}

func TestSortNoneKeepsOrder(t *testing.T) {
	input := []domain.CardContent{card("B", "2"), card("A", "1")}
	assert.Equal(t, input, services.SortContent(input, domain.SortNone))
}
