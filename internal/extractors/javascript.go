package extractors

import (
	"regexp"
	"strings"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/extractors/scan"
)

// Curly-brace exported-declaration languages: JavaScript, TypeScript,
// JSX/TSX, and the generic "text" route for unknown extensions.
// Doc text uses the block-comment-before convention (/** ... */).

var (
	jsFuncRe = regexp.MustCompile(
		`(?m)^(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*` +
			`([A-Za-z_$][A-Za-z0-9_$]*)\s*(?:<[^>\n]*>)?\s*\(`)

	jsArrowRe = regexp.MustCompile(
		`(?m)^export\s+const\s+([A-Za-z_$][A-Za-z0-9_$]*)(?::\s*[^=\n]+)?\s*=\s*` +
			`(?:async\s+)?(?:\([^)\n]*\)|[A-Za-z_$][A-Za-z0-9_$]*)\s*(?::\s*[^=\n]+)?=>`)

	jsInterfaceRe = regexp.MustCompile(
		`(?m)^export\s+interface\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

	jsTypeAliasRe = regexp.MustCompile(
		`(?m)^export\s+type\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*(?:<[^>\n]*>)?\s*=`)

	jsClassRe = regexp.MustCompile(
		`(?m)^export\s+(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
)

// arrowCharCap bounds an arrow-function body when no structural
// terminator is found.
const arrowCharCap = 1200

func extractCurly(file domain.SourceFile, language string) []domain.ExtractedBlock {
	text := file.Content
	var blocks []domain.ExtractedBlock

	for _, m := range jsFuncRe.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[0], text[m[2]:m[3]]
		code, ok := scan.BodyBlock(text, start)
		if !ok {
			continue
		}

		kind := domain.KindFunction
		if isCapitalized(name) && looksLikeMarkup(code) {
			kind = domain.KindPattern
		}

		doc := scan.BlockCommentBefore(text, start)
		if block, ok := makeBlock(name, kind, code, file, language, doc); ok {
			blocks = append(blocks, block)
		}
	}

	for _, m := range jsArrowRe.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[0], text[m[2]:m[3]]
		code := boundArrowBinding(text, start)
		if code == "" {
			continue
		}

		kind := domain.KindFunction
		if isCapitalized(name) && looksLikeMarkup(code) {
			kind = domain.KindPattern
		}

		doc := scan.BlockCommentBefore(text, start)
		if block, ok := makeBlock(name, kind, code, file, language, doc); ok {
			blocks = append(blocks, block)
		}
	}

	for _, m := range jsInterfaceRe.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[0], text[m[2]:m[3]]
		code, ok := scan.BraceBlock(text, start)
		if !ok {
			continue
		}

		doc := scan.BlockCommentBefore(text, start)
		if block, ok := makeBlock(name, domain.KindType, code, file, language, doc); ok {
			blocks = append(blocks, block)
		}
	}

	for _, m := range jsTypeAliasRe.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[0], text[m[2]:m[3]]
		code := boundTypeAlias(text, start)
		if code == "" {
			continue
		}

		doc := scan.BlockCommentBefore(text, start)
		if block, ok := makeBlock(name, domain.KindType, code, file, language, doc); ok {
			blocks = append(blocks, block)
		}
	}

	for _, m := range jsClassRe.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[0], text[m[2]:m[3]]
		code, ok := scan.BodyBlock(text, start)
		if !ok {
			continue
		}

		kind := domain.KindConcept
		if isCapitalized(name) && looksLikeMarkup(code) {
			kind = domain.KindPattern
		}

		doc := scan.BlockCommentBefore(text, start)
		if block, ok := makeBlock(name, kind, code, file, language, doc); ok {
			blocks = append(blocks, block)
		}
	}

	return blocks
}

// boundArrowBinding slices an exported arrow-function binding starting
// at start. Arrow bodies are not reliably brace-delimited, so the end
// is found by the first of: a blank line before the next export, a
// semicolon followed by a blank line, the next sibling declaration
// keyword at column zero, or a fixed character cap.
func boundArrowBinding(text string, start int) string {
	rest := text[start:]

	end := len(rest)
	for _, terminator := range []string{"\n\nexport ", ";\n\n", "\nexport ", "\nfunction ", "\nclass "} {
		if idx := strings.Index(rest[1:], terminator); idx >= 0 && idx+1 < end {
			end = idx + 1
			if terminator == ";\n\n" {
				end++ // keep the closing semicolon
			}
		}
	}
	if end > arrowCharCap {
		end = arrowCharCap
	}

	return strings.TrimSpace(rest[:end])
}

// boundTypeAlias slices an exported type alias starting at start.
// Brace-delimited aliases use the brace matcher; single-expression
// aliases run through the terminating semicolon or end of line.
func boundTypeAlias(text string, start int) string {
	rest := text[start:]

	semi := strings.Index(rest, ";")
	brace := strings.Index(rest, "{")

	if brace != -1 && (semi == -1 || brace < semi) {
		code, ok := scan.BraceBlock(text, start)
		if !ok {
			return ""
		}
		return code
	}

	if semi != -1 {
		return rest[:semi+1]
	}
	if nl := strings.Index(rest, "\n"); nl != -1 {
		return rest[:nl]
	}
	return rest
}
