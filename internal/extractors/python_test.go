package extractors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

func TestExtractPython_TopLevelFunction(t *testing.T) {
	src := strings.Join([]string{
		"def add(a, b):",
		`    """Add two numbers."""`,
		"    return a + b",
		"",
		"x = add(1, 2)",
	}, "\n")

	blocks := extractPython(domain.SourceFile{Path: "math.py", Content: src}, "python")

	require.Len(t, blocks, 1)
	assert.Equal(t, "add", blocks[0].Name)
	assert.Equal(t, domain.KindFunction, blocks[0].Kind)
	assert.Equal(t, "Add two numbers.", blocks[0].DocText)
	assert.NotContains(t, blocks[0].Code, "x = add")
}

func TestExtractPython_AsyncDef(t *testing.T) {
	src := "async def fetch(url):\n    return await session.get(url)\n"

	blocks := extractPython(domain.SourceFile{Path: "net.py", Content: src}, "python")

	require.Len(t, blocks, 1)
	assert.Equal(t, "fetch", blocks[0].Name)
}

func TestExtractPython_PrivateSkippedConstructorKept(t *testing.T) {
	src := strings.Join([]string{
		"def _helper():",
		"    pass",
		"",
		"def __init__(self):",
		"    self.x = 1",
		"",
	}, "\n")

	blocks := extractPython(domain.SourceFile{Path: "m.py", Content: src}, "python")

	require.Len(t, blocks, 1)
	assert.Equal(t, "__init__", blocks[0].Name)
}

func TestExtractPython_ClassIsConcept(t *testing.T) {
	src := strings.Join([]string{
		"class Stack:",
		`    """A LIFO container."""`,
		"",
		"    def push(self, item):",
		"        self.items.append(item)",
		"",
	}, "\n")

	blocks := extractPython(domain.SourceFile{Path: "stack.py", Content: src}, "python")

	require.Len(t, blocks, 1)
	assert.Equal(t, "Stack", blocks[0].Name)
	assert.Equal(t, domain.KindConcept, blocks[0].Kind)
	assert.Equal(t, "A LIFO container.", blocks[0].DocText)
}

func TestExtractPython_IndentedDefsIgnored(t *testing.T) {
	src := strings.Join([]string{
		"class C:",
		"    def method(self):",
		"        pass",
		"",
	}, "\n")

	blocks := extractPython(domain.SourceFile{Path: "c.py", Content: src}, "python")

	// Only the class itself; methods are not top-level declarations.
	require.Len(t, blocks, 1)
	assert.Equal(t, "C", blocks[0].Name)
}

func TestExtractPython_DefOnLastLineSkipped(t *testing.T) {
	blocks := extractPython(domain.SourceFile{Path: "m.py", Content: "def dangling():"}, "python")
	assert.Empty(t, blocks)
}
