package aggregate

import "errors"

// Sentinel kinds for aggregation errors.
var (
	// ErrPersistTotal marks a failed aggregate snapshot write. The computed
	// footprint accompanying it is still valid and should be shown.
	ErrPersistTotal = errors.New("persist total footprint failed")
)
