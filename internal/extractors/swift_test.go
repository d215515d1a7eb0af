package extractors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

func TestExtractSwift_PublicFunc(t *testing.T) {
	src := strings.Join([]string{
		"public func greet(name: String) -> String {",
		"    return \"Hello, \\(name)\"",
		"}",
	}, "\n")

	blocks := extractSwift(domain.SourceFile{Path: "Greeter.swift", Content: src}, "swift")

	require.Len(t, blocks, 1)
	assert.Equal(t, "greet", blocks[0].Name)
	assert.Equal(t, domain.KindFunction, blocks[0].Kind)
	assert.Empty(t, blocks[0].DocText, "this family extracts no docs")
}

func TestExtractSwift_ProtocolIsType(t *testing.T) {
	src := "public protocol Drawable {\n    func draw()\n}"

	blocks := extractSwift(domain.SourceFile{Path: "Draw.swift", Content: src}, "swift")

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindType, blocks[0].Kind)
	assert.Equal(t, "Drawable", blocks[0].Name)
}

func TestExtractSwift_ClassAndStructAreConcepts(t *testing.T) {
	src := strings.Join([]string{
		"open class ViewModel {",
		"    var state = 0",
		"}",
		"",
		"public struct Point {",
		"    let x: Double",
		"}",
	}, "\n")

	blocks := extractSwift(domain.SourceFile{Path: "Model.swift", Content: src}, "swift")

	require.Len(t, blocks, 2)
	for _, b := range blocks {
		assert.Equal(t, domain.KindConcept, b.Kind)
	}
}

func TestExtractSwift_KotlinDeclarations(t *testing.T) {
	src := strings.Join([]string{
		"public fun render(items: List<Item>): String {",
		"    return items.joinToString()",
		"}",
		"",
		"public interface Repository {",
		"    fun load(): Item",
		"}",
	}, "\n")

	blocks := extractSwift(domain.SourceFile{Path: "Repo.kt", Content: src}, "kotlin")

	require.Len(t, blocks, 2)
	byName := map[string]domain.ExtractedBlock{}
	for _, b := range blocks {
		byName[b.Name] = b
	}
	assert.Equal(t, domain.KindFunction, byName["render"].Kind)
	assert.Equal(t, domain.KindType, byName["Repository"].Kind)
}

func TestExtractSwift_InternalIgnored(t *testing.T) {
	src := "func internalOnly() {\n    print(1)\n}\nclass Hidden {\n    let x = 1\n}"

	blocks := extractSwift(domain.SourceFile{Path: "A.swift", Content: src}, "swift")
	assert.Empty(t, blocks)
}
