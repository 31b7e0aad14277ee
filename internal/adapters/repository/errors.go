package repository

import "errors"

// Sentinel kinds for document store errors.
var (
	ErrNotFound   = errors.New("document not found")
	ErrEmptyKey   = errors.New("empty document key")
	ErrStoreClose = errors.New("store closed")
)
