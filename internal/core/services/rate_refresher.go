package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/SscSPs/currency_board/internal/core/state"
)

// RateRefresher replaces the rate table with live rates for a base currency.
// Every call takes a request token; a response is applied only if no newer
// request was issued while it was in flight.
type RateRefresher struct {
	BaseService
	store  *state.Store
	source portsrepo.RateSource
	latest atomic.Uint64
}

// NewRateRefresher creates a new RateRefresher.
func NewRateRefresher(store *state.Store, source portsrepo.RateSource, options ...ServiceOption) *RateRefresher {
	r := &RateRefresher{store: store, source: source}
	applyOptions(&r.BaseService, options)
	return r
}

// RefreshRates fetches rates against base. On failure the previous table stays in place.
// On success the table, the card rates and the rate ordering change in one publish.
func (r *RateRefresher) RefreshRates(ctx context.Context, base string) error {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return apperrors.NewValidationError("base currency is required")
	}

	token := r.latest.Add(1)
	logger := r.GetLogger(ctx).With(slog.String("base", base), slog.Uint64("token", token))

	rates, err := r.source.FetchRates(ctx, base)
	if err != nil {
		logger.Warn("Rate fetch failed, keeping previous rates", slog.String("error", err.Error()))
		return fmt.Errorf("failed to fetch rates for %s: %w", base, err)
	}

	applied := r.store.TryUpdate(func(s domain.ViewState) (domain.ViewState, bool) {
		// Checked under the store lock so a newer response cannot slip in between.
		if r.latest.Load() != token {
			return s, false
		}
		s.Rates = rates.Clone()
		if s.Rates == nil {
			s.Rates = domain.RateTable{}
		}
		s.BaseCurrency = base
		return rerate(s), true
	})

	if !applied {
		logger.Debug("Discarded stale rate response", slog.Uint64("latest_token", r.latest.Load()))
		return fmt.Errorf("rates for %s: %w", base, apperrors.ErrStaleResponse)
	}

	logger.Info("Rates refreshed", slog.Int("count", len(rates)))
	return nil
}
