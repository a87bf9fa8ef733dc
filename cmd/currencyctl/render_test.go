package main

import (
	"testing"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBoardMarkdownUsesActiveList(t *testing.T) {
	v := domain.NewViewState()
	v.BaseCurrency = "USD"
	v.FullContent = []domain.CardContent{
		{Code: "EUR", Name: "Euro", Rate: "0.920000001", HasRate: true, IconRef: "€"},
		{Code: "XAU", Name: "Gold", IconRef: "XAU"},
	}
	v.FavoriteContent = []domain.CardContent{{Code: "EUR", Name: "Euro", Rate: "0.92", HasRate: true, IsFavorite: true, IconRef: "€"}}

	md := boardMarkdown(v, 2)
	assert.Contains(t, md, "# All currencies (base USD)")
	assert.Contains(t, md, "| € | EUR | Euro | 0.92 |  |")
	assert.Contains(t, md, "| XAU | XAU | Gold | 0.0 |  |")

	v.FavoritesOnly = true
	md = boardMarkdown(v, 2)
	assert.Contains(t, md, "# Favorites (base USD)")
	assert.Contains(t, md, "| € | EUR | Euro | 0.92 | ★ |")
	assert.NotContains(t, md, "XAU")
}

func TestBoardMarkdownEmpty(t *testing.T) {
	md := boardMarkdown(domain.NewViewState(), 4)
	assert.Contains(t, md, "_Nothing to show._")
}

func TestRatesMarkdownOrdersByCode(t *testing.T) {
	md := ratesMarkdown("USD", domain.RateTable{"JPY": "149.5", "EUR": "0.92"}, 2)
	assert.Regexp(t, `(?s)\| EUR \| 0\.92 \|.*\| JPY \| 149\.50 \|`, md)
}

func TestSymbolsMarkdownEscapesPipes(t *testing.T) {
	md := symbolsMarkdown([]domain.Symbol{{Code: "ABC", Name: "A|B", IsFavorite: true}})
	assert.Contains(t, md, `| ABC | A\|B | ★ |`)
}
