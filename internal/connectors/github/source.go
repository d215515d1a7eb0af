package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// Source adapts the GitHub client to the ContentSource port.
type Source struct {
	client *Client
}

// NewSource creates a content source over an existing client.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// GetRepo retrieves metadata for a repository given as "owner/name".
func (s *Source) GetRepo(ctx context.Context, ref string) (*domain.RepoMeta, error) {
	owner, name, err := parseRef(ref)
	if err != nil {
		return nil, err
	}

	repo, err := s.client.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, translateError(err)
	}
	meta := toRepoMeta(repo)
	return &meta, nil
}

// ListTree returns the recursive file tree of the default branch.
func (s *Source) ListTree(ctx context.Context, ref string) ([]domain.TreeEntry, error) {
	owner, name, err := parseRef(ref)
	if err != nil {
		return nil, err
	}

	repo, err := s.client.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, translateError(err)
	}

	tree, err := s.client.GetTree(ctx, owner, name, repo.GetDefaultBranch())
	if err != nil {
		return nil, translateError(err)
	}
	return toTreeEntries(tree), nil
}

// GetFileContent retrieves the decoded content of a single file from
// the default branch.
func (s *Source) GetFileContent(ctx context.Context, ref, path string) (string, error) {
	owner, name, err := parseRef(ref)
	if err != nil {
		return "", err
	}

	content, err := s.client.GetFileContent(ctx, owner, name, path, "")
	if err != nil {
		return "", translateError(err)
	}
	return content, nil
}

// parseRef splits an "owner/name" reference.
func parseRef(ref string) (owner, name string, err error) {
	parts := strings.Split(strings.TrimSpace(ref), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %w: %q", domain.ErrInvalidInput, ErrInvalidRef, ref)
	}
	return parts[0], parts[1], nil
}

// toRepoMeta converts a go-github repository to the domain type.
func toRepoMeta(repo *gh.Repository) domain.RepoMeta {
	return domain.RepoMeta{
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Stars:         repo.GetStargazersCount(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
}

// toTreeEntries converts a go-github tree, preserving API order.
func toTreeEntries(tree *gh.Tree) []domain.TreeEntry {
	if tree == nil {
		return nil
	}
	entries := make([]domain.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, domain.TreeEntry{
			Path:   e.GetPath(),
			IsBlob: e.GetType() == "blob",
			Size:   int64(e.GetSize()),
		})
	}
	return entries
}

// translateError maps transport errors onto domain sentinels so core
// services never import this package's error types.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case IsNotFound(err):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case IsRateLimited(err):
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	case IsUnauthorized(err):
		return fmt.Errorf("github authentication failed, check your github_token: %w", err)
	default:
		return err
	}
}
