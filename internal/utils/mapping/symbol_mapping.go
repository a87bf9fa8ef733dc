package mapping

import (
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/models"
)

// ToModelSymbol converts a domain Symbol to a model Symbol. Timestamps are left for the store to fill.
func ToModelSymbol(d domain.Symbol) models.Symbol {
	return models.Symbol{
		Code:       d.Code,
		Name:       d.Name,
		IsFavorite: d.IsFavorite,
	}
}

// ToDomainSymbol converts a model Symbol to a domain Symbol
func ToDomainSymbol(m models.Symbol) domain.Symbol {
	return domain.Symbol{
		Code:       m.Code,
		Name:       m.Name,
		IsFavorite: m.IsFavorite,
	}
}

// ToDomainSymbolSlice converts a slice of model Symbols to a slice of domain Symbols
func ToDomainSymbolSlice(ms []models.Symbol) []domain.Symbol {
	ds := make([]domain.Symbol, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSymbol(m)
	}
	return ds
}
