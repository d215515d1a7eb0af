package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

func cardSet(ids ...string) []domain.LearningCard {
	out := make([]domain.LearningCard, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.LearningCard{ID: id, Title: id})
	}
	return out
}

func reviewedAt(ts time.Time, mastered bool) domain.CardReviewState {
	return domain.CardReviewState{Mastered: mastered, LastReviewedAt: ts}
}

func TestBuildQueue_AllUnseenKeepsOriginalOrder(t *testing.T) {
	cards := cardSet("a", "b", "c")

	queue := BuildQueue(cards, domain.ReviewStateMap{}, "")

	require.Len(t, queue, 3)
	assert.Equal(t, "a", queue[0].ID)
	assert.Equal(t, "b", queue[1].ID)
	assert.Equal(t, "c", queue[2].ID)
}

func TestBuildQueue_TierOrdering(t *testing.T) {
	cards := cardSet("mastered", "learning", "unseen")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	states := domain.ReviewStateMap{
		"mastered": reviewedAt(base, true),
		"learning": reviewedAt(base.Add(time.Hour), false),
	}

	queue := BuildQueue(cards, states, "")

	require.Len(t, queue, 3)
	assert.Equal(t, "unseen", queue[0].ID)
	assert.Equal(t, "learning", queue[1].ID)
	assert.Equal(t, "mastered", queue[2].ID)
}

func TestBuildQueue_LeastRecentlyReviewedFirstWithinTier(t *testing.T) {
	cards := cardSet("x", "y", "z")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	states := domain.ReviewStateMap{
		"x": reviewedAt(base.Add(2*time.Hour), false),
		"y": reviewedAt(base, false),
		"z": reviewedAt(base.Add(time.Hour), false),
	}

	queue := BuildQueue(cards, states, "")

	require.Len(t, queue, 3)
	assert.Equal(t, "y", queue[0].ID)
	assert.Equal(t, "z", queue[1].ID)
	assert.Equal(t, "x", queue[2].ID)
}

func TestBuildQueue_ExcludesLastActedCard(t *testing.T) {
	cards := cardSet("a", "b")
	states := domain.ReviewStateMap{
		"a": reviewedAt(time.Now(), false),
		"b": reviewedAt(time.Now(), false),
	}

	queue := BuildQueue(cards, states, "a")

	require.Len(t, queue, 1)
	assert.Equal(t, "b", queue[0].ID)
}

func TestBuildQueue_UnseenLastActedStaysQueued(t *testing.T) {
	// The exclusion only applies to seen tiers; an unseen card cannot
	// have been acted on, so an id with no state is simply kept.
	cards := cardSet("a", "b")

	queue := BuildQueue(cards, domain.ReviewStateMap{}, "a")
	assert.Len(t, queue, 2)
}

func TestBuildQueue_PermutationProperty(t *testing.T) {
	cards := cardSet("a", "b", "c", "d", "e")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	states := domain.ReviewStateMap{
		"b": reviewedAt(base, true),
		"d": reviewedAt(base.Add(time.Minute), false),
	}

	queue := BuildQueue(cards, states, "")

	require.Len(t, queue, len(cards))
	seen := map[string]int{}
	for _, c := range queue {
		seen[c.ID]++
	}
	for _, c := range cards {
		assert.Equal(t, 1, seen[c.ID], "queue is a permutation of the input")
	}
}

func TestBuildQueue_Idempotent(t *testing.T) {
	cards := cardSet("a", "b", "c")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	states := domain.ReviewStateMap{
		"a": reviewedAt(base, true),
		"b": reviewedAt(base.Add(time.Second), false),
	}

	first := BuildQueue(cards, states, "c")
	second := BuildQueue(cards, states, "c")
	assert.Equal(t, first, second)
}

func TestBuildQueue_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildQueue(nil, domain.ReviewStateMap{}, ""))
}
