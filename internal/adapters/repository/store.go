// Package repository defines the document store interface and errors.
//
// The store is a keyed document collaborator: survey records live under
// surveys/<category>/<user> and the aggregate snapshot under
// surveys/<user>/total_footprint. Stored documents are loosely typed so the
// aggregator can tolerate records written by older clients with different
// field names and value shapes.
package repository

import "context"

// Document is a loosely typed stored record.
type Document map[string]any

// Store provides keyed read/write access to persisted records.
type Store interface {
	// Get returns the document stored under key.
	// Returns ErrNotFound when no document exists.
	Get(ctx context.Context, key string) (Document, error)

	// Set stores doc under key, replacing any previous document.
	Set(ctx context.Context, key string, doc Document) error

	// Count returns the number of documents currently stored.
	Count(ctx context.Context) int
}
