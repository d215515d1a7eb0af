package extractors

import (
	"regexp"
	"strings"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/extractors/scan"
)

// Attribute-annotated declaration languages: explicitly pub-qualified
// functions, structs, enums, and impl blocks. Doc text uses the ///
// line-run convention.

var (
	rustFnRe = regexp.MustCompile(
		`(?m)^\s*pub\s+(?:async\s+)?(?:unsafe\s+)?fn\s+([A-Za-z_][A-Za-z0-9_]*)`)

	rustStructRe = regexp.MustCompile(
		`(?m)^\s*pub\s+struct\s+([A-Za-z_][A-Za-z0-9_]*)`)

	rustEnumRe = regexp.MustCompile(
		`(?m)^\s*pub\s+enum\s+([A-Za-z_][A-Za-z0-9_]*)`)

	rustTraitRe = regexp.MustCompile(
		`(?m)^\s*pub\s+trait\s+([A-Za-z_][A-Za-z0-9_]*)`)

	rustImplRe = regexp.MustCompile(
		`(?m)^impl(?:<[^>\n]*>)?\s+([A-Za-z_][A-Za-z0-9_]*)`)
)

func extractRust(file domain.SourceFile, language string) []domain.ExtractedBlock {
	text := file.Content
	var blocks []domain.ExtractedBlock

	for _, m := range rustFnRe.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[0], text[m[2]:m[3]]

		code, ok := scan.BodyBlock(text, start)
		if !ok {
			continue
		}

		doc := scan.LineCommentRunBefore(text, start, "///")
		if block, ok := makeBlock(name, domain.KindFunction, code, file, language, doc); ok {
			blocks = append(blocks, block)
		}
	}

	appendDecl := func(re *regexp.Regexp, kind domain.BlockKind) {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			start, name := m[0], text[m[2]:m[3]]

			code := boundRustDeclaration(text, start)
			if code == "" {
				continue
			}

			doc := scan.LineCommentRunBefore(text, start, "///")
			if block, ok := makeBlock(name, kind, code, file, language, doc); ok {
				blocks = append(blocks, block)
			}
		}
	}

	appendDecl(rustStructRe, domain.KindType)
	appendDecl(rustEnumRe, domain.KindType)
	appendDecl(rustTraitRe, domain.KindType)
	appendDecl(rustImplRe, domain.KindConcept)

	return blocks
}

// boundRustDeclaration slices one declaration starting at start.
// Brace-bodied declarations use the brace matcher; unit and tuple
// structs terminate at a semicolon before any brace.
func boundRustDeclaration(text string, start int) string {
	rest := text[start:]

	semi := strings.Index(rest, ";")
	brace := strings.Index(rest, "{")

	if brace == -1 || (semi != -1 && semi < brace) {
		if semi == -1 {
			return ""
		}
		return strings.TrimSpace(rest[:semi+1])
	}

	code, ok := scan.BraceBlock(text, start)
	if !ok {
		return ""
	}
	return code
}
