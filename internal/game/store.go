package game

import (
	"sync"

	"github.com/mysterydesk/gumshoe/internal/models"
)

// Subscriber observes every state transition, e.g. to persist the new state.
// Subscribers receive a private copy and run on the dispatching goroutine.
type Subscriber func(models.AppState)

// Store owns one AppState and serializes all transitions through the pure
// reducer. Effects live outside the reducer behind the subscription
// boundary, so Reduce stays unit-testable without a storage harness.
type Store struct {
	mu          sync.Mutex
	state       models.AppState
	seed        models.AppState
	subscribers []Subscriber
}

// NewStore starts from a copy of the seed content.
func NewStore(seed models.AppState) *Store {
	return &Store{
		state: clone(seed),
		seed:  clone(seed),
	}
}

// Dispatch applies the action and notifies subscribers with the new state.
// Returns a copy of the state after the transition.
func (s *Store) Dispatch(action Action) models.AppState {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := clone(s.state)
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(clone(next))
	}
	return next
}

// Reset reverts to the seed content, discarding all progress.
func (s *Store) Reset() models.AppState {
	s.mu.Lock()
	seed := clone(s.seed)
	s.mu.Unlock()
	return s.Dispatch(Reset{Seed: seed})
}

// State returns a copy of the current state. No mutable reference escapes
// the store boundary.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state)
}

// Subscribe registers a subscriber for all future transitions.
func (s *Store) Subscribe(subscriber Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, subscriber)
}
