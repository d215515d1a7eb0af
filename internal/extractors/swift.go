package extractors

import (
	"regexp"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/extractors/scan"
)

// Visibility-keyword languages: Swift and Kotlin, where public/open
// qualifiers signal API surface. Protocol-like constructs classify as
// types, other aggregates as concepts. No doc extraction for this
// family.

var (
	swiftFuncRe = regexp.MustCompile(
		`(?m)^\s*(?:public|open)\s+(?:static\s+)?(?:final\s+)?(?:suspend\s+)?fu(?:nc|n)\s+([A-Za-z_][A-Za-z0-9_]*)`)

	swiftAggregateRe = regexp.MustCompile(
		`(?m)^\s*(?:public|open)\s+(?:final\s+)?(class|struct|enum|protocol|interface|object)\s+([A-Za-z_][A-Za-z0-9_]*)`)
)

func extractSwift(file domain.SourceFile, language string) []domain.ExtractedBlock {
	text := file.Content
	var blocks []domain.ExtractedBlock

	for _, m := range swiftFuncRe.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[0], text[m[2]:m[3]]

		code, ok := scan.BodyBlock(text, start)
		if !ok {
			continue
		}

		if block, ok := makeBlock(name, domain.KindFunction, code, file, language, ""); ok {
			blocks = append(blocks, block)
		}
	}

	for _, m := range swiftAggregateRe.FindAllStringSubmatchIndex(text, -1) {
		start := m[0]
		construct := text[m[2]:m[3]]
		name := text[m[4]:m[5]]

		code, ok := scan.BraceBlock(text, start)
		if !ok {
			continue
		}

		kind := domain.KindConcept
		if construct == "protocol" || construct == "interface" {
			kind = domain.KindType
		}

		if block, ok := makeBlock(name, kind, code, file, language, ""); ok {
			blocks = append(blocks, block)
		}
	}

	return blocks
}
