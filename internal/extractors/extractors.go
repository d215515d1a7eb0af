// Package extractors implements the heuristic, non-AST extraction
// pipeline: per-language block extractors, extension-based dispatch,
// and the whole-file fallback. Extractors are pure functions over file
// text; language dispatch is a single table keyed on the detected
// language identifier.
//
// Extraction never fails on malformed input. A pattern that does not
// match, an unbalanced block, or an oversized candidate simply
// contributes nothing.
package extractors

import (
	"strings"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// Per-kind line ceilings. Candidates above the ceiling are discarded,
// not truncated: a cut-off block would be a misleading learning
// artifact.
const (
	// MaxFunctionLines is the ceiling for function blocks and for the
	// whole-file fallback.
	MaxFunctionLines = 40

	// MaxTypeLines is the ceiling for type declarations.
	MaxTypeLines = 30

	// MaxClassLines is the ceiling for classes, impl blocks, and
	// components.
	MaxClassLines = 50
)

// extractFunc is one per-language extraction strategy.
type extractFunc func(file domain.SourceFile, language string) []domain.ExtractedBlock

// extractorsByLanguage routes a detected language to its strategy.
// Unlisted languages fall back to the curly-brace strategy.
var extractorsByLanguage = map[string]extractFunc{
	"javascript": extractCurly,
	"typescript": extractCurly,
	"text":       extractCurly,
	"python":     extractPython,
	"rust":       extractRust,
	"go":         extractGo,
	"swift":      extractSwift,
	"kotlin":     extractSwift,
}

// ceilingFor returns the line ceiling for a block kind.
func ceilingFor(kind domain.BlockKind) int {
	switch kind {
	case domain.KindType:
		return MaxTypeLines
	case domain.KindConcept, domain.KindPattern:
		return MaxClassLines
	default:
		return MaxFunctionLines
	}
}

// makeBlock assembles a candidate block, enforcing the per-kind line
// ceiling. The second return value is false when the candidate is
// discarded.
func makeBlock(
	name string, kind domain.BlockKind, code string,
	file domain.SourceFile, language, docText string,
) (domain.ExtractedBlock, bool) {
	code = strings.TrimRight(code, " \t\n")
	lines := domain.CountLines(code)
	if lines == 0 || lines > ceilingFor(kind) {
		return domain.ExtractedBlock{}, false
	}

	return domain.ExtractedBlock{
		Name:      name,
		Kind:      kind,
		Code:      code,
		FilePath:  file.Path,
		Language:  language,
		DocText:   docText,
		LineCount: lines,
	}, true
}

// looksLikeMarkup reports whether code contains a markup-like
// angle-bracket token (e.g. a JSX element). Used to tag capitalized
// declarations as UI patterns.
func looksLikeMarkup(code string) bool {
	for i := 0; i+1 < len(code); i++ {
		if code[i] == '<' && code[i+1] >= 'A' && code[i+1] <= 'Z' {
			return true
		}
	}
	return false
}

// isCapitalized reports whether an identifier starts with an uppercase
// ASCII letter.
func isCapitalized(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
