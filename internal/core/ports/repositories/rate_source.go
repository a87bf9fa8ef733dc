package repositories

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// RateSource defines the remote rate/symbol service.
// Implementations return an error wrapping apperrors.ErrNetwork for transport
// failures and non-success responses.
type RateSource interface {
	// FetchSymbolsCatalog retrieves the code->name catalog of supported currencies.
	FetchSymbolsCatalog(ctx context.Context) (map[string]string, error)

	// FetchRates retrieves the rates of every currency against base.
	FetchRates(ctx context.Context, base string) (domain.RateTable, error)
}
