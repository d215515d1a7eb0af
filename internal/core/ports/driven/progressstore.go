package driven

import (
	"context"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// ProgressStore persists lifetime learning counters.
type ProgressStore interface {
	// GetProgress retrieves the accumulated progress counters.
	// A fresh installation yields zeroed counters, not an error.
	GetProgress(ctx context.Context) (domain.SessionProgress, error)

	// SaveProgress stores the accumulated progress counters.
	SaveProgress(ctx context.Context, progress domain.SessionProgress) error
}
