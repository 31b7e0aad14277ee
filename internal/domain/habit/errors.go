package habit

import "errors"

// Sentinel kinds for habit ledger errors.
var (
	ErrEmptyTitle   = errors.New("empty habit title")
	ErrPersistCards = errors.New("persist habit cards failed")
)
