package services

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// ViewStateReaderSvc exposes the current state to the rendering layer
type ViewStateReaderSvc interface {
	// Snapshot returns a copy of the current ViewState.
	Snapshot() domain.ViewState

	// Subscribe returns a channel receiving every published ViewState and a func to stop the subscription.
	Subscribe() (<-chan domain.ViewState, func())
}

// IntentSvc handles the intents issued by the rendering layer.
// Network failures are logged and absorbed; only persistence and lookup failures are returned.
type IntentSvc interface {
	SelectBaseCurrency(ctx context.Context, code string) error
	ToggleFavorite(ctx context.Context, code string) error
	SetSortMode(ctx context.Context, byAlphabet bool) error
	SetContentMode(ctx context.Context, favoritesOnly bool) error
}

// SessionSvcFacade combines the session read side and intents
type SessionSvcFacade interface {
	ViewStateReaderSvc
	IntentSvc
}
