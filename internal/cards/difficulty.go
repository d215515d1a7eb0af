package cards

import (
	"regexp"
	"strings"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// asyncMarkers are tokens whose presence suggests asynchronous code.
var asyncMarkers = []string{"async", "await", "suspend ", "go func"}

// difficultyTier maps a block's structural complexity score to a tier:
// score >= 4 is hard (3), >= 2 is medium (2), anything else easy (1).
func difficultyTier(block domain.ExtractedBlock) int {
	score := complexityScore(block)
	switch {
	case score >= 4:
		return 3
	case score >= 2:
		return 2
	default:
		return 1
	}
}

// complexityScore adds up structural signals: size, brace nesting,
// generics, async markers, and self-recursion.
func complexityScore(block domain.ExtractedBlock) int {
	score := 0

	switch {
	case block.LineCount > 20:
		score += 2
	case block.LineCount > 10:
		score++
	}

	switch depth := maxBraceDepth(block.Code); {
	case depth > 4:
		score += 2
	case depth > 2:
		score++
	}

	if strings.Contains(block.Code, "<") && strings.Contains(block.Code, ">") {
		score++
	}

	for _, marker := range asyncMarkers {
		if strings.Contains(block.Code, marker) {
			score++
			break
		}
	}

	if block.Kind == domain.KindFunction && isRecursive(block) {
		score += 2
	}

	return score
}

// maxBraceDepth tracks a running brace depth over the raw characters.
// Braces inside string literals are deliberately counted; the
// estimator only needs a rough nesting signal, not exactness.
func maxBraceDepth(code string) int {
	depth, maxDepth := 0, 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '{':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case '}':
			depth--
		}
	}
	return maxDepth
}

// isRecursive reports whether the function's own name appears as a
// call site more than once inside its body. The declaration itself
// accounts for one identifier-boundary occurrence.
func isRecursive(block domain.ExtractedBlock) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(block.Name) + `\s*\(`)
	if err != nil {
		return false
	}
	return len(re.FindAllStringIndex(block.Code, -1)) > 2
}
