package extractors

import (
	"regexp"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/extractors/scan"
)

// Name-cased declaration languages: a capitalized identifier after the
// declaration keyword signals exported visibility. Doc text uses the
// plain // line-run convention.

var (
	goFuncRe = regexp.MustCompile(
		`(?m)^func\s+(?:\([^)\n]*\)\s+)?([A-Z][A-Za-z0-9_]*)\s*(?:\[[^\]\n]*\])?\(`)

	goStructRe = regexp.MustCompile(
		`(?m)^type\s+([A-Z][A-Za-z0-9_]*)\s+struct\b`)

	goInterfaceRe = regexp.MustCompile(
		`(?m)^type\s+([A-Z][A-Za-z0-9_]*)\s+interface\b`)
)

func extractGo(file domain.SourceFile, language string) []domain.ExtractedBlock {
	text := file.Content
	var blocks []domain.ExtractedBlock

	appendMatches := func(re *regexp.Regexp, kind domain.BlockKind) {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			start, name := m[0], text[m[2]:m[3]]

			// BodyBlock jumps parenthesized groups, so interface{} or
			// struct{} parameter types cannot end a function early.
			code, ok := scan.BodyBlock(text, start)
			if !ok {
				continue
			}

			doc := scan.LineCommentRunBefore(text, start, "//")
			if block, ok := makeBlock(name, kind, code, file, language, doc); ok {
				blocks = append(blocks, block)
			}
		}
	}

	appendMatches(goFuncRe, domain.KindFunction)
	appendMatches(goStructRe, domain.KindType)
	appendMatches(goInterfaceRe, domain.KindType)

	return blocks
}
