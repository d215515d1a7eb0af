package extractors

import (
	"path"
	"strings"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// languageByExtension maps a file extension (without the dot) to a
// language identifier. Unknown extensions resolve to "text", which
// routes through the curly-brace extractor as a best effort; upstream
// file selection already excludes non-code files.
var languageByExtension = map[string]string{
	"js":     "javascript",
	"jsx":    "javascript",
	"mjs":    "javascript",
	"cjs":    "javascript",
	"ts":     "typescript",
	"tsx":    "typescript",
	"py":     "python",
	"rs":     "rust",
	"go":     "go",
	"swift":  "swift",
	"kt":     "kotlin",
	"kts":    "kotlin",
	"vue":    "javascript",
	"svelte": "javascript",
}

// LanguageForPath detects the language identifier for a repository
// path from its extension.
func LanguageForPath(filePath string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filePath), "."))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return "text"
}

// IsCodePath reports whether the path has an extension the dispatcher
// maps to a real language. Used by ingestion to select files worth
// fetching.
func IsCodePath(filePath string) bool {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filePath), "."))
	_, ok := languageByExtension[ext]
	return ok
}

// ExtractFile runs the language-appropriate extractor over one file.
// When no declaration matches and the whole file fits within the
// function ceiling, the trimmed file itself becomes a single block of
// kind file, named by its filename.
func ExtractFile(file domain.SourceFile) []domain.ExtractedBlock {
	language := LanguageForPath(file.Path)

	extract, ok := extractorsByLanguage[language]
	if !ok {
		extract = extractCurly
	}

	blocks := extract(file, language)
	if len(blocks) > 0 {
		return blocks
	}

	trimmed := strings.TrimSpace(file.Content)
	if trimmed == "" {
		return nil
	}
	if domain.CountLines(trimmed) > MaxFunctionLines {
		return nil
	}

	block := domain.ExtractedBlock{
		Name:      path.Base(file.Path),
		Kind:      domain.KindFile,
		Code:      trimmed,
		FilePath:  file.Path,
		Language:  language,
		LineCount: domain.CountLines(trimmed),
	}
	return []domain.ExtractedBlock{block}
}
