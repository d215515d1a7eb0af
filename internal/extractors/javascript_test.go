package extractors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

func TestExtractCurly_ExportedFunction(t *testing.T) {
	src := strings.Join([]string{
		"export function add(a, b) {",
		"  // keep the intermediate for clarity",
		"  const sum = a + b;",
		"  if (Number.isNaN(sum)) {",
		"    return 0;",
		"  }",
		"  return sum;",
		"}",
	}, "\n")

	file := domain.SourceFile{Path: "src/math.ts", Content: src}
	blocks := extractCurly(file, "typescript")

	require.Len(t, blocks, 1)
	assert.Equal(t, "add", blocks[0].Name)
	assert.Equal(t, domain.KindFunction, blocks[0].Kind)
	assert.Equal(t, 8, blocks[0].LineCount)
	assert.Equal(t, "typescript", blocks[0].Language)
	assert.Empty(t, blocks[0].DocText)
}

func TestExtractCurly_AsyncAndGenericFunctions(t *testing.T) {
	src := "export async function load(url) {\n  return fetch(url);\n}\n\n" +
		"export function first<T>(items: T[]) {\n  return items[0];\n}\n"

	blocks := extractCurly(domain.SourceFile{Path: "a.ts", Content: src}, "typescript")

	require.Len(t, blocks, 2)
	assert.Equal(t, "load", blocks[0].Name)
	assert.Equal(t, "first", blocks[1].Name)
}

func TestExtractCurly_DocComment(t *testing.T) {
	src := "/**\n * Clamps v into [lo, hi].\n */\nexport function clamp(v, lo, hi) {\n  return Math.min(hi, Math.max(lo, v));\n}"

	blocks := extractCurly(domain.SourceFile{Path: "a.js", Content: src}, "javascript")

	require.Len(t, blocks, 1)
	assert.Equal(t, "Clamps v into [lo, hi].", blocks[0].DocText)
}

func TestExtractCurly_ArrowBinding(t *testing.T) {
	src := "export const double = (n) => {\n  return n * 2;\n};\n\nexport function other() {\n  return 1;\n}"

	blocks := extractCurly(domain.SourceFile{Path: "a.js", Content: src}, "javascript")

	require.Len(t, blocks, 2)

	var arrow *domain.ExtractedBlock
	for i := range blocks {
		if blocks[i].Name == "double" {
			arrow = &blocks[i]
		}
	}
	require.NotNil(t, arrow)
	assert.Equal(t, domain.KindFunction, arrow.Kind)
	assert.Contains(t, arrow.Code, "n * 2")
	assert.NotContains(t, arrow.Code, "other")
}

func TestExtractCurly_JSXComponentTaggedPattern(t *testing.T) {
	src := "export function Banner({ title }) {\n  return <Header title={title} />;\n}"

	blocks := extractCurly(domain.SourceFile{Path: "Banner.tsx", Content: src}, "typescript")

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindPattern, blocks[0].Kind)
}

func TestExtractCurly_InterfaceAndTypeAlias(t *testing.T) {
	src := "export interface User {\n  id: string;\n  name: string;\n}\n\n" +
		"export type ID = string;\n\n" +
		"export type Pair = {\n  left: number;\n  right: number;\n};\n"

	blocks := extractCurly(domain.SourceFile{Path: "types.ts", Content: src}, "typescript")

	require.Len(t, blocks, 3)
	for _, b := range blocks {
		assert.Equal(t, domain.KindType, b.Kind)
	}

	byName := map[string]domain.ExtractedBlock{}
	for _, b := range blocks {
		byName[b.Name] = b
	}
	assert.Equal(t, "export type ID = string;", byName["ID"].Code)
	assert.Contains(t, byName["Pair"].Code, "right: number;")
}

func TestExtractCurly_ExportedClass(t *testing.T) {
	src := "export class Store {\n  constructor() {\n    this.items = [];\n  }\n}"

	blocks := extractCurly(domain.SourceFile{Path: "store.js", Content: src}, "javascript")

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindConcept, blocks[0].Kind)
	assert.Equal(t, "Store", blocks[0].Name)
}

func TestExtractCurly_UnbalancedCandidateSkipped(t *testing.T) {
	src := "export function broken() { return 1;\n\nexport type ID = string;"

	blocks := extractCurly(domain.SourceFile{Path: "a.ts", Content: src}, "typescript")

	// The broken function contributes nothing; the alias still extracts.
	require.Len(t, blocks, 1)
	assert.Equal(t, "ID", blocks[0].Name)
}

func TestExtractCurly_OversizedFunctionDiscarded(t *testing.T) {
	var b strings.Builder
	b.WriteString("export function huge() {\n")
	for i := 0; i < MaxFunctionLines+5; i++ {
		b.WriteString("  doWork();\n")
	}
	b.WriteString("}")

	blocks := extractCurly(domain.SourceFile{Path: "a.js", Content: b.String()}, "javascript")
	assert.Empty(t, blocks)
}
