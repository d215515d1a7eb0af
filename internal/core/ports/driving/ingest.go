package driving

import (
	"context"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// RepoIngestor turns a repository reference into a learning deck.
type RepoIngestor interface {
	// Ingest fetches the repository given as "owner/name", extracts
	// learnable code blocks and builds a ranked deck of cards.
	Ingest(ctx context.Context, ref string) (*domain.Deck, error)
}
