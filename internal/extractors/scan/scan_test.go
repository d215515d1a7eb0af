package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBraceBlock_Simple(t *testing.T) {
	src := "function add(a, b) { return a + b }"
	block, ok := BraceBlock(src, 0)
	require.True(t, ok)
	assert.Equal(t, src, block)
	assert.Equal(t, strings.Count(block, "{"), strings.Count(block, "}"))
}

func TestBraceBlock_Nested(t *testing.T) {
	src := "fn main() { if x { y() } else { z() } }\nfn other() {}"
	block, ok := BraceBlock(src, 0)
	require.True(t, ok)
	assert.Equal(t, "fn main() { if x { y() } else { z() } }", block)
}

func TestBraceBlock_StartsMidText(t *testing.T) {
	src := "prefix { inner }"
	block, ok := BraceBlock(src, 7)
	require.True(t, ok)
	assert.Equal(t, "{ inner }", block)
}

func TestBraceBlock_Unbalanced(t *testing.T) {
	_, ok := BraceBlock("function f() { return 1;", 0)
	assert.False(t, ok, "missing closer must fail, not return a wrong slice")
}

func TestBraceBlock_NoBrace(t *testing.T) {
	_, ok := BraceBlock("const x = 1;", 0)
	assert.False(t, ok)
}

func TestBraceBlock_BracesInsideStrings(t *testing.T) {
	src := `function f() { return "}" + '{' }`
	block, ok := BraceBlock(src, 0)
	require.True(t, ok)
	assert.Equal(t, src, block)
}

func TestBraceBlock_EscapedQuoteInString(t *testing.T) {
	src := `function f() { return "\"}" }`
	block, ok := BraceBlock(src, 0)
	require.True(t, ok)
	assert.Equal(t, src, block)
}

func TestBraceBlock_TemplateLiteralSpansLines(t *testing.T) {
	src := "function f() {\n  return `{\n}`\n}"
	block, ok := BraceBlock(src, 0)
	require.True(t, ok)
	assert.Equal(t, src, block)
}

func TestBraceBlock_UnterminatedQuoteOnLine(t *testing.T) {
	// A stray apostrophe must not swallow the rest of the file.
	src := "function cant() {\n  // don't\n  return 1\n}"
	block, ok := BraceBlock(src, 0)
	require.True(t, ok)
	assert.Equal(t, src, block)
}

func TestBraceBlock_OutOfRange(t *testing.T) {
	_, ok := BraceBlock("x", -1)
	assert.False(t, ok)
	_, ok = BraceBlock("x", 5)
	assert.False(t, ok)
}

func TestIndentBlock_Basic(t *testing.T) {
	lines := []string{
		"def add(a, b):",
		"    return a + b",
		"",
		"def other():",
		"    pass",
	}
	block, ok := IndentBlock(lines, 0)
	require.True(t, ok)
	assert.Equal(t, "def add(a, b):\n    return a + b", block)
}

func TestIndentBlock_BlankLinesInsideBody(t *testing.T) {
	lines := []string{
		"def f():",
		"    a = 1",
		"",
		"    return a",
		"x = 2",
	}
	block, ok := IndentBlock(lines, 0)
	require.True(t, ok)
	assert.Contains(t, block, "return a")
	assert.NotContains(t, block, "x = 2")
}

func TestIndentBlock_ZeroBodyIndent(t *testing.T) {
	lines := []string{
		"def f(): pass",
		"x = 1",
	}
	block, ok := IndentBlock(lines, 0)
	require.True(t, ok)
	assert.Equal(t, "def f(): pass", block)
}

func TestIndentBlock_Degenerate(t *testing.T) {
	_, ok := IndentBlock([]string{"def f():"}, 0)
	assert.False(t, ok, "a definition on the last line has no body to match")

	_, ok = IndentBlock(nil, 0)
	assert.False(t, ok)

	_, ok = IndentBlock([]string{"a", "b"}, 5)
	assert.False(t, ok)
}

func TestIndentBlock_NestedDeeperIndentKept(t *testing.T) {
	lines := []string{
		"def f():",
		"    if x:",
		"        return 1",
		"    return 0",
		"def g():",
		"    pass",
	}
	block, ok := IndentBlock(lines, 0)
	require.True(t, ok)
	assert.Equal(t, strings.Join(lines[:4], "\n"), block)
}
