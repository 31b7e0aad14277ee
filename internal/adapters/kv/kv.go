// Package kv defines the string-slot store used for the habit card ledger.
//
// The ledger keeps its whole card list serialized in a single string slot,
// so the store contract is deliberately small: get a slot, replace a slot.
// Atomicity is per slot; the read-modify-write cycle above it is
// last-writer-wins.
package kv

import "context"

// Store provides access to named string slots.
type Store interface {
	// Get returns the value stored in the slot.
	// Returns ErrNotFound when the slot has never been written.
	Get(ctx context.Context, key string) (string, error)

	// Set replaces the slot's value.
	Set(ctx context.Context, key, value string) error
}
