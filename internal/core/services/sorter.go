package services

import (
	"context"
	"sort"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/core/state"
	"github.com/shopspring/decimal"
)

// Sorter reorders both content lists in place.
type Sorter struct {
	BaseService
	store *state.Store
}

// NewSorter creates a new Sorter.
func NewSorter(store *state.Store, options ...ServiceOption) *Sorter {
	s := &Sorter{store: store}
	applyOptions(&s.BaseService, options)
	return s
}

// ApplySort orders both lists by code when byAlphabet is set, otherwise by rate ascending.
func (s *Sorter) ApplySort(ctx context.Context, byAlphabet bool) error {
	mode := domain.SortRate
	if byAlphabet {
		mode = domain.SortAlphabet
	}
	s.store.Update(func(v domain.ViewState) domain.ViewState {
		v.FullContent = SortContent(v.FullContent, mode)
		v.FavoriteContent = SortContent(v.FavoriteContent, mode)
		v.SortMode = mode
		return v
	})
	s.LogDebug(ctx, "Content sorted", "mode", string(mode))
	return nil
}

// SortContent returns content ordered by mode using a stable sort. SortNone returns it unchanged.
// In rate order, absent and unparseable rates rank below every valid rate.
func SortContent(content []domain.CardContent, mode domain.SortMode) []domain.CardContent {
	out := append([]domain.CardContent(nil), content...)
	switch mode {
	case domain.SortAlphabet:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Code < out[j].Code
		})
	case domain.SortRate:
		keys := make([]rateKey, len(out))
		for i, c := range out {
			keys[i] = parseRate(c)
		}
		idx := make([]int, len(out))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return keys[idx[a]].less(keys[idx[b]])
		})
		sorted := make([]domain.CardContent, len(out))
		for i, k := range idx {
			sorted[i] = out[k]
		}
		out = sorted
	}
	return out
}

type rateKey struct {
	valid bool
	value decimal.Decimal
}

func (k rateKey) less(o rateKey) bool {
	if !k.valid || !o.valid {
		return !k.valid && o.valid
	}
	return k.value.LessThan(o.value)
}

func parseRate(c domain.CardContent) rateKey {
	if !c.HasRate {
		return rateKey{}
	}
	d, err := decimal.NewFromString(c.Rate)
	if err != nil {
		return rateKey{}
	}
	return rateKey{valid: true, value: d}
}
