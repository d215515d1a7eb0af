// Package cards turns ranked extracted blocks into learning cards:
// deterministic ids, a difficulty tier from structural signals, and an
// explanation synthesized when the author wrote no documentation.
package cards

import (
	"fmt"
	"path"
	"strings"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// DefaultMaxCards caps one generated deck. Blocks ranked beyond the
// cap are dropped, not deferred.
const DefaultMaxCards = 50

// Generate maps ranked blocks to learning cards, truncating to max
// (DefaultMaxCards when max <= 0). Card ids are a deterministic
// function of generation index and block name, unique within one call.
func Generate(blocks []domain.ExtractedBlock, max int) []domain.LearningCard {
	if max <= 0 {
		max = DefaultMaxCards
	}
	if len(blocks) > max {
		blocks = blocks[:max]
	}

	out := make([]domain.LearningCard, 0, len(blocks))
	for i, block := range blocks {
		out = append(out, domain.LearningCard{
			ID:          cardID(i, block.Name),
			Kind:        block.Kind,
			Title:       block.Name,
			FilePath:    block.FilePath,
			Code:        block.Code,
			Language:    block.Language,
			Explanation: explain(block),
			Difficulty:  difficultyTier(block),
		})
	}

	return out
}

// cardID derives a stable id from the generation index and block name.
func cardID(index int, name string) string {
	return fmt.Sprintf("card-%03d-%s", index, slugify(name))
}

// slugify lowercases a name and collapses anything outside [a-z0-9]
// into single dashes.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// explain returns the author documentation verbatim when present,
// otherwise one synthesized sentence from kind, directory, and name.
func explain(block domain.ExtractedBlock) string {
	if block.DocText != "" {
		return block.DocText
	}

	dir := path.Dir(block.FilePath)
	if dir == "." || dir == "/" || dir == "" {
		dir = "the project root"
	}

	switch block.Kind {
	case domain.KindFunction:
		return fmt.Sprintf("A function named %s from %s. Read the body and work out what it computes.", block.Name, dir)
	case domain.KindType:
		return fmt.Sprintf("A type definition named %s from %s. Note which fields or variants carry the real data.", block.Name, dir)
	case domain.KindConcept:
		return fmt.Sprintf("A core building block: %s, implemented in %s.", block.Name, dir)
	case domain.KindPattern:
		return fmt.Sprintf("A UI pattern: the %s component from %s.", block.Name, dir)
	default:
		return fmt.Sprintf("A compact source file, %s, small enough to read in one sitting.", block.Name)
	}
}
