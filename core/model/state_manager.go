// Package model provides estimator interfaces and fitted-state management.
package model

import (
	"sync"
)

// StateManager holds the fitted state of an estimator behind a RW mutex.
//
// Store replaces the state as a whole, so a reader racing a refit observes
// either the previous state or the new one, never a mixture.
type StateManager[S any] struct {
	mu        sync.RWMutex
	state     S
	fitted    bool
	nFeatures int
	nSamples  int
}

// NewStateManager creates an empty, unfitted StateManager.
func NewStateManager[S any]() *StateManager[S] {
	return &StateManager[S]{}
}

// Store records a freshly fitted state together with the training shape.
func (s *StateManager[S]) Store(state S, nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.fitted = true
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// Load returns the current state and whether the estimator has been fitted.
func (s *StateManager[S]) Load() (S, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.fitted
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager[S]) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// GetDimensions returns the number of features and samples seen during fitting.
func (s *StateManager[S]) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}
