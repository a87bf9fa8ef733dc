package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/utils"
)

func symbolsMarkdown(symbols []domain.Symbol) string {
	var b strings.Builder
	b.WriteString("# Symbols\n\n| Code | Name | Favorite |\n|---|---|:---:|\n")
	for _, s := range symbols {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", s.Code, escape(s.Name), star(s.IsFavorite))
	}
	return b.String()
}

func ratesMarkdown(base string, rates domain.RateTable, precision int) string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var b strings.Builder
	fmt.Fprintf(&b, "# Rates for 1 %s\n\n| Code | Rate |\n|---|---:|\n", base)
	for _, code := range codes {
		fmt.Fprintf(&b, "| %s | %s |\n", code, utils.FormatRate(rates[code], precision))
	}
	return b.String()
}

func boardMarkdown(v domain.ViewState, precision int) string {
	cards := v.FullContent
	title := "All currencies"
	if v.FavoritesOnly {
		cards = v.FavoriteContent
		title = "Favorites"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s (base %s)\n\n", title, v.BaseCurrency)
	if len(cards) == 0 {
		b.WriteString("_Nothing to show._\n")
		return b.String()
	}
	b.WriteString("|  | Code | Name | Rate | Favorite |\n|---|---|---|---:|:---:|\n")
	for _, c := range cards {
		rate := c.DisplayRate()
		if c.HasRate {
			rate = utils.FormatRate(rate, precision)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", escape(c.IconRef), c.Code, escape(c.Name), rate, star(c.IsFavorite))
	}
	return b.String()
}

func star(on bool) string {
	if on {
		return "★"
	}
	return ""
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
