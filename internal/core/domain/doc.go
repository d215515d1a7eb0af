// Package domain contains the core business types for repodeck.
// These types have no dependencies on adapters or external services
// and are shared across the extraction pipeline, card generation,
// and the review session.
package domain
