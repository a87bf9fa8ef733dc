package state

import (
	"sync"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// Transform is a pure function from the current state to the next one.
type Transform func(domain.ViewState) domain.ViewState

// Store holds the single ViewState of a session and publishes every update.
// Updates are applied one at a time in submission order; subscribers only ever
// see complete states.
type Store struct {
	mu      sync.Mutex
	current domain.ViewState
	subs    map[uint64]chan domain.ViewState
	nextSub uint64
	closed  bool
}

// NewStore creates a Store holding initial.
func NewStore(initial domain.ViewState) *Store {
	return &Store{
		current: initial.Clone(),
		subs:    make(map[uint64]chan domain.ViewState),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() domain.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Update applies fn to the current state, stores the result and publishes it.
// The transform receives a private copy and must not retain it.
func (s *Store) Update(fn Transform) domain.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.current.Clone())
	next.Version = s.current.Version + 1
	s.current = next

	for _, ch := range s.subs {
		publish(ch, next.Clone())
	}
	return next.Clone()
}

// TryUpdate is Update for transforms that may decline to change anything. When fn
// returns false the state is left as it was and nothing is published.
func (s *Store) TryUpdate(fn func(domain.ViewState) (domain.ViewState, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := fn(s.current.Clone())
	if !ok {
		return false
	}
	next.Version = s.current.Version + 1
	s.current = next

	for _, ch := range s.subs {
		publish(ch, next.Clone())
	}
	return true
}

// Subscribe registers a new observer. The returned channel is conflated: a slow
// reader skips intermediate states and always receives the latest one. The
// current state is delivered immediately.
func (s *Store) Subscribe() (<-chan domain.ViewState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan domain.ViewState, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.current.Clone()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// SubscriberCount returns the number of live subscriptions.
func (s *Store) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close ends every subscription. Later updates are still applied but reach nobody.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// publish replaces any undelivered value in ch with v. Callers hold s.mu, which
// makes the store the only sender on ch.
func publish(ch chan domain.ViewState, v domain.ViewState) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
