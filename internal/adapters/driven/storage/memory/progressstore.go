package memory

import (
	"context"
	"sync"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driven"
)

// Ensure ProgressStore implements the interface.
var _ driven.ProgressStore = (*ProgressStore)(nil)

// ProgressStore is an in-memory implementation of driven.ProgressStore.
type ProgressStore struct {
	mu       sync.RWMutex
	progress domain.SessionProgress
}

// NewProgressStore creates a new in-memory progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{}
}

// GetProgress retrieves the accumulated progress counters.
func (s *ProgressStore) GetProgress(_ context.Context) (domain.SessionProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress, nil
}

// SaveProgress stores the accumulated progress counters.
func (s *ProgressStore) SaveProgress(_ context.Context, progress domain.SessionProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = progress
	return nil
}
