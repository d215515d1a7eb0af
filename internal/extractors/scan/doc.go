package scan

import "strings"

// docWindow bounds how far the locators look around a declaration.
// The cap keeps worst-case cost linear in a small constant instead of
// whole-file size.
const docWindow = 500

// BlockCommentBefore returns the prose of a /** ... */ style comment
// that immediately precedes pos, allowing only whitespace between the
// comment's closer and pos. Leading line markers (*) and decoration are
// stripped and the lines joined into single-spaced prose. Returns the
// empty string when no adjacent block comment exists.
func BlockCommentBefore(text string, pos int) string {
	if pos <= 0 || pos > len(text) {
		return ""
	}

	lo := pos - docWindow
	if lo < 0 {
		lo = 0
	}
	window := text[lo:pos]

	end := strings.LastIndex(window, "*/")
	if end == -1 {
		return ""
	}
	// Only whitespace may sit between the comment and the declaration.
	if strings.TrimSpace(window[end+2:]) != "" {
		return ""
	}

	begin := strings.LastIndex(window[:end], "/*")
	if begin == -1 {
		return ""
	}

	body := window[begin:end]
	body = strings.TrimPrefix(body, "/**")
	body = strings.TrimPrefix(body, "/*")

	var parts []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, " ")
}

// LineCommentRunBefore returns the prose of a contiguous run of
// single-line comments with the given marker (e.g. "///" or "//")
// ending on the line immediately above pos. The run is joined in
// original order with the markers stripped. The scan stops at the
// first non-marker line and never looks past the bounded window.
// Returns the empty string when the line directly above pos is not a
// marker line.
func LineCommentRunBefore(text string, pos int, marker string) string {
	if pos <= 0 || pos > len(text) {
		return ""
	}

	lo := pos - docWindow
	if lo < 0 {
		lo = 0
	}
	window := text[lo:pos]

	lines := strings.Split(window, "\n")
	// The final element is the partial line the declaration starts on.
	lines = lines[:len(lines)-1]

	var run []string
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, marker) {
			break
		}
		comment := strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
		run = append([]string{comment}, run...)
	}

	if len(run) == 0 {
		return ""
	}

	var parts []string
	for _, line := range run {
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

// DocstringAfter returns the interior of a triple-quoted string literal
// whose opener is the very next non-whitespace token after pos. This is
// the post-declaration docstring convention. Returns the empty string
// when the next token is anything else or the literal never closes
// within the bounded window.
func DocstringAfter(text string, pos int) string {
	if pos < 0 || pos >= len(text) {
		return ""
	}

	hi := pos + docWindow
	if hi > len(text) {
		hi = len(text)
	}
	window := text[pos:hi]

	trimmed := strings.TrimLeft(window, " \t\r\n")
	var quote string
	switch {
	case strings.HasPrefix(trimmed, `"""`):
		quote = `"""`
	case strings.HasPrefix(trimmed, "'''"):
		quote = "'''"
	default:
		return ""
	}

	rest := trimmed[len(quote):]
	end := strings.Index(rest, quote)
	if end == -1 {
		return ""
	}

	return strings.TrimSpace(rest[:end])
}
