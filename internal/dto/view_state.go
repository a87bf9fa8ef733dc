package dto

import (
	"github.com/SscSPs/currency_board/internal/core/domain"
)

// SelectBaseCurrencyRequest selects the base currency rates are quoted against.
type SelectBaseCurrencyRequest struct {
	Code string `json:"code" binding:"required,currencycode"`
}

// SetSortModeRequest orders both lists by code (true) or by rate (false).
type SetSortModeRequest struct {
	ByAlphabet *bool `json:"byAlphabet" binding:"required"`
}

// SetContentModeRequest switches between the full catalog and favorites.
type SetContentModeRequest struct {
	FavoritesOnly *bool `json:"favoritesOnly" binding:"required"`
}

// SymbolResponse defines the data returned for a symbol.
type SymbolResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	IsFavorite bool   `json:"isFavorite"`
}

// CardResponse is one rendered row. Rate is already substituted when missing.
type CardResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Rate       string `json:"rate"`
	HasRate    bool   `json:"hasRate"`
	IsFavorite bool   `json:"isFavorite"`
	IconRef    string `json:"iconRef"`
}

// ViewStateResponse defines the state pushed to the rendering layer.
type ViewStateResponse struct {
	Version         uint64            `json:"version"`
	BaseCurrency    string            `json:"baseCurrency"`
	SortMode        string            `json:"sortMode"`
	FavoritesOnly   bool              `json:"favoritesOnly"`
	Symbols         []SymbolResponse  `json:"symbols"`
	Rates           map[string]string `json:"rates"`
	Content         []CardResponse    `json:"content"` // the list selected by FavoritesOnly
	FullContent     []CardResponse    `json:"fullContent"`
	FavoriteContent []CardResponse    `json:"favoriteContent"`
}

// ToCardResponse converts a domain CardContent to a CardResponse DTO
func ToCardResponse(c domain.CardContent) CardResponse {
	return CardResponse{
		Code:       c.Code,
		Name:       c.Name,
		Rate:       c.DisplayRate(),
		HasRate:    c.HasRate,
		IsFavorite: c.IsFavorite,
		IconRef:    c.IconRef,
	}
}

// ToListCardResponse converts a slice of CardContent, never returning nil
func ToListCardResponse(cards []domain.CardContent) []CardResponse {
	res := make([]CardResponse, len(cards))
	for i, c := range cards {
		res[i] = ToCardResponse(c)
	}
	return res
}

// ToViewStateResponse converts a ViewState snapshot to its DTO
func ToViewStateResponse(v domain.ViewState) ViewStateResponse {
	symbols := make([]SymbolResponse, len(v.SymbolsOrdered))
	for i, s := range v.SymbolsOrdered {
		symbols[i] = SymbolResponse{Code: s.Code, Name: s.Name, IsFavorite: s.IsFavorite}
	}
	rates := make(map[string]string, len(v.Rates))
	for k, r := range v.Rates {
		rates[k] = r
	}

	resp := ViewStateResponse{
		Version:         v.Version,
		BaseCurrency:    v.BaseCurrency,
		SortMode:        string(v.SortMode),
		FavoritesOnly:   v.FavoritesOnly,
		Symbols:         symbols,
		Rates:           rates,
		FullContent:     ToListCardResponse(v.FullContent),
		FavoriteContent: ToListCardResponse(v.FavoriteContent),
	}
	resp.Content = resp.FullContent
	if v.FavoritesOnly {
		resp.Content = resp.FavoriteContent
	}
	return resp
}
