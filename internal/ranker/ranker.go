// Package ranker orders extracted blocks by learning value using a
// fixed additive heuristic, after deduplicating candidates by identity.
package ranker

import (
	"sort"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// Score computes the heuristic learning value of a block. All weights
// are integers so ordering stays exactly reproducible.
//
// Blocks in the 8-25 line sweet spot score highest; documented blocks
// and function/type kinds get a boost.
func Score(block domain.ExtractedBlock) int {
	score := 0

	switch {
	case block.LineCount >= 8 && block.LineCount <= 25:
		score += 10
	case block.LineCount >= 4 && block.LineCount <= 35:
		score += 5
	}

	if block.DocText != "" {
		score += 5
	}

	switch block.Kind {
	case domain.KindFunction:
		score += 3
	case domain.KindType:
		score += 2
	}

	return score
}

// Rank deduplicates candidates by (name, kind) and returns them in
// descending score order. The first occurrence of a duplicate wins.
// Equal scores keep their prior relative order, so the result is
// deterministic for a given input.
//
// Known limitation: two same-named, same-kind declarations in
// different files collide and only the first survives.
func Rank(blocks []domain.ExtractedBlock) []domain.ExtractedBlock {
	type identity struct {
		name string
		kind domain.BlockKind
	}

	seen := make(map[identity]bool, len(blocks))
	unique := make([]domain.ExtractedBlock, 0, len(blocks))
	for _, block := range blocks {
		id := identity{block.Name, block.Kind}
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, block)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return Score(unique[i]) > Score(unique[j])
	})

	return unique
}
