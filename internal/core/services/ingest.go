package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/repodeck/repodeck-cli/internal/cards"
	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driven"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driving"
	"github.com/repodeck/repodeck-cli/internal/extractors"
	"github.com/repodeck/repodeck-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.RepoIngestor = (*IngestService)(nil)

const (
	// defaultMaxFiles caps how many files are fetched per repository.
	defaultMaxFiles = 60

	// defaultFetchBatch is how many file downloads run concurrently.
	defaultFetchBatch = 8

	// maxFileSize skips files larger than this many bytes. Generated
	// bundles and vendored blobs are rarely worth learning from.
	maxFileSize = 100 * 1024
)

// skippedDirs are path segments that mark generated or third-party
// code. Files under any of them are never fetched.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	".git":         true,
	"__pycache__":  true,
	"target":       true,
	"build":        true,
}

// IngestOptions tune repository ingestion. Zero values take defaults.
type IngestOptions struct {
	// MaxFiles caps how many source files are fetched.
	MaxFiles int

	// FetchBatch is the number of concurrent file downloads.
	FetchBatch int

	// MaxCards caps the generated deck size.
	MaxCards int
}

// IngestService builds learning decks from repositories.
type IngestService struct {
	source driven.ContentSource
	opts   IngestOptions
}

// NewIngestService creates a new ingest service.
func NewIngestService(source driven.ContentSource, opts IngestOptions) *IngestService {
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = defaultMaxFiles
	}
	if opts.FetchBatch <= 0 {
		opts.FetchBatch = defaultFetchBatch
	}
	return &IngestService{source: source, opts: opts}
}

// Ingest fetches the repository, extracts code blocks and builds a
// ranked deck of learning cards.
func (s *IngestService) Ingest(ctx context.Context, ref string) (*domain.Deck, error) {
	if !strings.Contains(ref, "/") {
		return nil, fmt.Errorf("%w: repository must be given as owner/name", domain.ErrInvalidInput)
	}

	repo, err := s.source.GetRepo(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("get repository: %w", err)
	}

	tree, err := s.source.ListTree(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("list tree: %w", err)
	}

	paths := s.selectFiles(tree)
	if len(paths) == 0 {
		return nil, domain.ErrNoSupportedFiles
	}
	logger.Info("Selected %d of %d tree entries from %s", len(paths), len(tree), ref)

	files, err := s.fetchFiles(ctx, ref, paths)
	if err != nil {
		return nil, err
	}

	blocks, err := extractors.ExtractAndRank(files)
	if err != nil {
		return nil, err
	}

	deck := &domain.Deck{
		Repo:        *repo,
		Cards:       cards.Generate(blocks, s.opts.MaxCards),
		SessionID:   uuid.NewString(),
		GeneratedAt: time.Now(),
	}
	logger.Info("Built deck of %d cards for %s", len(deck.Cards), repo.FullName)
	return deck, nil
}

// selectFiles filters the tree down to fetchable source files, keeping
// tree order so the deck reflects the repository's own layout.
func (s *IngestService) selectFiles(tree []domain.TreeEntry) []string {
	var paths []string
	for _, entry := range tree {
		if len(paths) >= s.opts.MaxFiles {
			break
		}
		if !entry.IsBlob || entry.Size > maxFileSize {
			continue
		}
		if underSkippedDir(entry.Path) {
			continue
		}
		if !extractors.IsCodePath(entry.Path) {
			continue
		}
		paths = append(paths, entry.Path)
	}
	return paths
}

func underSkippedDir(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if skippedDirs[segment] {
			return true
		}
	}
	return false
}

// fetchFiles downloads file contents in fixed-size concurrent batches.
// A failed download drops that one file; the ingest only fails when
// nothing at all could be fetched.
func (s *IngestService) fetchFiles(ctx context.Context, ref string, paths []string) ([]domain.SourceFile, error) {
	files := make([]domain.SourceFile, len(paths))
	fetched := make([]bool, len(paths))

	for start := 0; start < len(paths); start += s.opts.FetchBatch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + s.opts.FetchBatch
		if end > len(paths) {
			end = len(paths)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				content, err := s.source.GetFileContent(ctx, ref, paths[i])
				if err != nil {
					logger.Debug("Skipping %s: %v", paths[i], err)
					return
				}
				files[i] = domain.SourceFile{Path: paths[i], Content: content}
				fetched[i] = true
			}(i)
		}
		wg.Wait()
	}

	result := files[:0]
	for i := range files {
		if fetched[i] {
			result = append(result, files[i])
		}
	}
	if len(result) == 0 {
		return nil, errors.New("fetch files: no file could be downloaded")
	}
	return result, nil
}
