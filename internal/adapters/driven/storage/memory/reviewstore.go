package memory

import (
	"context"
	"sync"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driven"
)

// Ensure ReviewStateStore implements the interface.
var _ driven.ReviewStateStore = (*ReviewStateStore)(nil)

// ReviewStateStore is an in-memory implementation of driven.ReviewStateStore.
type ReviewStateStore struct {
	mu     sync.RWMutex
	states map[string]domain.ReviewStateMap
}

// NewReviewStateStore creates a new in-memory review state store.
func NewReviewStateStore() *ReviewStateStore {
	return &ReviewStateStore{
		states: make(map[string]domain.ReviewStateMap),
	}
}

// GetStates retrieves all review states for a repository.
func (s *ReviewStateStore) GetStates(_ context.Context, repo string) (domain.ReviewStateMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	states, ok := s.states[repo]
	if !ok {
		return domain.ReviewStateMap{}, nil
	}
	return states.Clone(), nil
}

// SaveStates stores or replaces the review states for a repository.
func (s *ReviewStateStore) SaveStates(_ context.Context, repo string, states domain.ReviewStateMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[repo] = states.Clone()
	return nil
}

// Reset removes all review state for a repository.
func (s *ReviewStateStore) Reset(_ context.Context, repo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, repo)
	return nil
}
