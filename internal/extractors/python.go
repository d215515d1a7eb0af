package extractors

import (
	"regexp"
	"strings"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/extractors/scan"
)

// Indentation-delimited languages. Declarations are matched at the top
// level only (column zero); doc text uses the post-declaration
// docstring convention.

var (
	pyDefRe = regexp.MustCompile(
		`^(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

	pyClassRe = regexp.MustCompile(
		`^class\s+([A-Za-z_][A-Za-z0-9_]*)`)
)

func extractPython(file domain.SourceFile, language string) []domain.ExtractedBlock {
	text := file.Content
	lines := strings.Split(text, "\n")

	var blocks []domain.ExtractedBlock
	offset := 0

	for i, line := range lines {
		lineStart := offset
		offset += len(line) + 1

		if m := pyDefRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			// Private helpers are skipped; the constructor is kept even
			// though its name carries the privacy prefix.
			if strings.HasPrefix(name, "_") && name != "__init__" {
				continue
			}

			code, ok := scan.IndentBlock(lines, i)
			if !ok {
				continue
			}

			doc := scan.DocstringAfter(text, lineStart+len(line)+1)
			if block, ok := makeBlock(name, domain.KindFunction, code, file, language, doc); ok {
				blocks = append(blocks, block)
			}
			continue
		}

		if m := pyClassRe.FindStringSubmatch(line); m != nil {
			name := m[1]

			code, ok := scan.IndentBlock(lines, i)
			if !ok {
				continue
			}

			doc := scan.DocstringAfter(text, lineStart+len(line)+1)
			if block, ok := makeBlock(name, domain.KindConcept, code, file, language, doc); ok {
				blocks = append(blocks, block)
			}
		}
	}

	return blocks
}
