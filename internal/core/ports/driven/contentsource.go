package driven

import (
	"context"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// ContentSource fetches repository metadata and file contents from a
// code host. Backed by the GitHub REST API.
type ContentSource interface {
	// GetRepo retrieves metadata for a repository given as "owner/name".
	GetRepo(ctx context.Context, ref string) (*domain.RepoMeta, error)

	// ListTree returns the full recursive file tree of the repository's
	// default branch.
	ListTree(ctx context.Context, ref string) ([]domain.TreeEntry, error)

	// GetFileContent retrieves the decoded content of a single file.
	GetFileContent(ctx context.Context, ref, path string) (string, error)
}
