package domain

import "strings"

// BlockKind classifies what declaration pattern produced a block.
// It is a closed tag set, not a type hierarchy.
type BlockKind string

const (
	// KindFunction is a function or method declaration.
	KindFunction BlockKind = "function"

	// KindType is a struct, enum, interface, or type-alias declaration.
	KindType BlockKind = "type"

	// KindConcept is a class, impl block, or similar aggregate construct.
	KindConcept BlockKind = "concept"

	// KindPattern is a UI-component-shaped declaration (markup-returning).
	KindPattern BlockKind = "pattern"

	// KindFile is the whole-file fallback when no declarations matched.
	KindFile BlockKind = "file"
)

// Valid reports whether the kind is one of the closed set.
func (k BlockKind) Valid() bool {
	switch k {
	case KindFunction, KindType, KindConcept, KindPattern, KindFile:
		return true
	}
	return false
}

// ExtractedBlock is one candidate code fragment produced by a
// per-language extractor. Blocks are immutable once produced and are
// consumed by the ranker and card generator within a single ingestion.
type ExtractedBlock struct {
	// Name is the declared identifier (or filename for file blocks).
	Name string

	// Kind is the declaration classification.
	Kind BlockKind

	// Code is the exact source text of the block.
	Code string

	// FilePath is the repository path the block came from.
	FilePath string

	// Language is the detected language identifier (e.g. "typescript").
	Language string

	// DocText is the adjacent author documentation, if any.
	DocText string

	// LineCount is the number of lines in Code.
	LineCount int
}

// CountLines returns the number of newline-delimited lines in s.
// An empty string has zero lines.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
