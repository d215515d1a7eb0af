package extractors

import (
	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/logger"
	"github.com/repodeck/repodeck-cli/internal/ranker"
)

// ExtractAndRank runs the whole extraction pipeline over the fetched
// files: per-language extraction with fallback, deduplication, and
// heuristic scoring into a total order (best candidates first).
//
// An empty input is a terminal ingestion failure
// (domain.ErrNoSupportedFiles), as is extraction producing zero blocks
// across every file (domain.ErrNothingExtracted). Individual files
// contributing nothing is normal and silent.
func ExtractAndRank(files []domain.SourceFile) ([]domain.ExtractedBlock, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoSupportedFiles
	}

	var candidates []domain.ExtractedBlock
	for _, file := range files {
		blocks := ExtractFile(file)
		if len(blocks) > 0 {
			logger.Debug("extracted %d block(s) from %s", len(blocks), file.Path)
		}
		candidates = append(candidates, blocks...)
	}

	if len(candidates) == 0 {
		return nil, domain.ErrNothingExtracted
	}

	ranked := ranker.Rank(candidates)
	logger.Info("extraction: %d candidate(s) from %d file(s), %d after dedup",
		len(candidates), len(files), len(ranked))

	return ranked, nil
}
