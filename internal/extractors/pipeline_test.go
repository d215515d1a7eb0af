package extractors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

func TestExtractAndRank_NoFiles(t *testing.T) {
	_, err := ExtractAndRank(nil)
	assert.ErrorIs(t, err, domain.ErrNoSupportedFiles)
}

func TestExtractAndRank_NothingExtracted(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString("plain text with no declarations at all\n")
	}

	_, err := ExtractAndRank([]domain.SourceFile{{Path: "big.nfo", Content: b.String()}})
	assert.ErrorIs(t, err, domain.ErrNothingExtracted)
}

func TestExtractAndRank_OrdersAndDedupes(t *testing.T) {
	sweetSpot := "export function middle() {\n" + strings.Repeat("  work();\n", 10) + "}"
	tiny := "export function tiny() { return 1 }"

	files := []domain.SourceFile{
		{Path: "a.ts", Content: sweetSpot},
		{Path: "b.ts", Content: tiny},
		{Path: "c.ts", Content: tiny}, // duplicate (name, kind) from another file
	}

	blocks, err := ExtractAndRank(files)
	require.NoError(t, err)

	require.Len(t, blocks, 2, "same-named same-kind duplicate collapses")
	assert.Equal(t, "middle", blocks[0].Name, "sweet-spot block ranks first")
	assert.Equal(t, "a.ts", blocks[0].FilePath)
	assert.Equal(t, "b.ts", blocks[1].FilePath, "first occurrence of a duplicate wins")
}

func TestExtractAndRank_PerFileFailuresAreSilent(t *testing.T) {
	files := []domain.SourceFile{
		{Path: "broken.ts", Content: "export function nope() { missing closer"},
		{Path: "fine.go", Content: "func Fine() int {\n\treturn 1\n}"},
	}

	blocks, err := ExtractAndRank(files)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
}
