package kv

import "errors"

// Sentinel kinds for slot store errors.
var (
	ErrNotFound = errors.New("slot not found")
	ErrEmptyKey = errors.New("empty slot key")
)
