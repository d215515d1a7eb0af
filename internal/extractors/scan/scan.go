// Package scan provides the low-level text scanning utilities shared
// by the per-language extractors: balanced-delimiter block matching for
// curly-brace languages, indentation block matching for
// indentation-delimited languages, and documentation-comment location.
//
// Nothing in this package understands a grammar. The scanners are
// best-effort lexical passes that trade precision for speed and
// portability across languages.
package scan

import "strings"

// BraceBlock returns the minimal substring of text starting at offset
// start and ending at the brace that balances the first opening brace
// found at or after start. String, char, and template literals are
// skipped so braces inside them do not affect the depth count.
//
// The second return value is false when no opening brace exists or the
// braces never balance before end of input. Callers treat that as
// "no block" and skip the candidate.
func BraceBlock(text string, start int) (string, bool) {
	end, ok := BraceSpan(text, start)
	if !ok {
		return "", false
	}
	return text[start : end+1], true
}

// BraceSpan returns the index of the brace that balances the first
// opening brace found at or after start.
func BraceSpan(text string, start int) (int, bool) {
	return delimSpan(text, start, '{', '}')
}

// ParenSpan returns the index of the parenthesis that balances the
// first opening parenthesis found at or after start. Used to jump over
// parameter lists whose contents may themselves contain braces
// (destructured or struct-typed parameters).
func ParenSpan(text string, start int) (int, bool) {
	return delimSpan(text, start, '(', ')')
}

// BodyBlock returns the substring from start through the brace that
// closes the first opening brace sitting outside any parenthesized
// group. Parenthesized groups (receivers, parameter lists, result
// lists) are jumped over, so braces inside them (destructured
// parameters, interface{} types) cannot end the block early.
func BodyBlock(text string, start int) (string, bool) {
	if start < 0 || start >= len(text) {
		return "", false
	}

	i := start
	for i < len(text) {
		switch text[i] {
		case '(':
			closeIdx, ok := ParenSpan(text, i)
			if !ok {
				return "", false
			}
			i = closeIdx + 1
		case '{':
			end, ok := BraceSpan(text, i)
			if !ok {
				return "", false
			}
			return text[start : end+1], true
		case '"', '\'', '`':
			end, ok := skipLiteral(text, i)
			if !ok {
				return "", false
			}
			i = end + 1
		default:
			i++
		}
	}
	return "", false
}

func delimSpan(text string, start int, open, close byte) (int, bool) {
	if start < 0 || start >= len(text) {
		return 0, false
	}

	depth := 0
	opened := false

	for i := start; i < len(text); i++ {
		c := text[i]

		switch c {
		case '"', '\'', '`':
			// Fast-forward past the literal so its contents are
			// invisible to the depth counter.
			end, ok := skipLiteral(text, i)
			if !ok {
				return 0, false
			}
			i = end
		case open:
			depth++
			opened = true
		case close:
			if !opened {
				continue
			}
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// skipLiteral advances from the opening quote at index i to the index
// of the matching unescaped closing quote. An escape character consumes
// the following character unconditionally.
func skipLiteral(text string, i int) (int, bool) {
	quote := text[i]
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++ // consume the escaped character
		case quote:
			return j, true
		case '\n':
			// Single-quoted and double-quoted literals do not span
			// lines; bail out rather than swallowing the rest of the
			// file on an unterminated quote. Template literals may
			// span lines.
			if quote != '`' {
				return j, true
			}
		}
	}
	return 0, false
}

// IndentBlock returns the block of lines starting at index start,
// delimited by indentation: the start line plus every contiguous
// following line whose leading-whitespace width is at least the body
// indent (the indent of the line immediately after start) or which is
// blank. The first non-blank line with a smaller indent ends the block.
//
// A body indent of zero yields a one-line block. The second return
// value is false when start is out of range or no line follows it.
func IndentBlock(lines []string, start int) (string, bool) {
	if start < 0 || start >= len(lines) || start+1 >= len(lines) {
		return "", false
	}

	bodyIndent := indentWidth(lines[start+1])
	if bodyIndent == 0 {
		return lines[start], true
	}

	end := start + 1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if indentWidth(lines[i]) < bodyIndent {
			break
		}
		end = i
	}

	return strings.Join(lines[start:end+1], "\n"), true
}

// indentWidth returns the leading-whitespace width of a line.
// Tabs count as a single column; the scanners only ever compare widths
// within one file, where indentation style is consistent in practice.
func indentWidth(line string) int {
	n := 0
	for _, c := range line {
		if c != ' ' && c != '\t' {
			break
		}
		n++
	}
	return n
}
