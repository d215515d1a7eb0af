package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSupportedFiles indicates the repository tree contained no
	// files the pipeline can learn from. Terminal for an ingestion.
	ErrNoSupportedFiles = errors.New("no supported files in repository")

	// ErrNothingExtracted indicates extraction ran over every fetched
	// file and produced zero blocks. Terminal for an ingestion.
	ErrNothingExtracted = errors.New("nothing learnable found")

	// ErrRateLimited indicates the content source API rate limit was
	// exceeded.
	ErrRateLimited = errors.New("rate limited")
)
