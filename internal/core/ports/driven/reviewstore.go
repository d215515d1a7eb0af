package driven

import (
	"context"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// ReviewStateStore persists per-card review state, keyed by repository.
type ReviewStateStore interface {
	// GetStates retrieves all review states for a repository.
	// A repository never reviewed yields an empty map, not an error.
	GetStates(ctx context.Context, repo string) (domain.ReviewStateMap, error)

	// SaveStates stores or replaces the review states for a repository.
	SaveStates(ctx context.Context, repo string, states domain.ReviewStateMap) error

	// Reset removes all review state for a repository.
	Reset(ctx context.Context, repo string) error
}
