package domain

import "time"

// LearningCard is the persisted, user-facing learning unit derived
// from one extracted block. Cards are created once per ingestion and
// are immutable thereafter.
//
// IDs are deterministic: the same extraction inputs produce the same
// ids on regeneration. Identity is not stable across repository
// changes; a re-ingestion recomputes the whole card set.
type LearningCard struct {
	// ID uniquely identifies the card within one ingestion.
	ID string

	// Kind is the block classification the card was generated from.
	Kind BlockKind

	// Title is the display name, usually the declared identifier.
	Title string

	// FilePath is the repository path the underlying block came from.
	FilePath string

	// Code is the source fragment shown on the card.
	Code string

	// Language is the detected language identifier.
	Language string

	// Explanation is author documentation when present, otherwise a
	// synthesized one-sentence description.
	Explanation string

	// Difficulty is the estimated tier: 1 (easy) to 3 (hard).
	Difficulty int
}

// Deck is one generated card set for a repository, ready for review.
type Deck struct {
	// Repo is the repository the deck was generated from.
	Repo RepoMeta

	// Cards is the ranked, capped card set in presentation order.
	Cards []LearningCard

	// SessionID identifies this ingestion for logging and progress.
	SessionID string

	// GeneratedAt is when generation completed.
	GeneratedAt time.Time
}
