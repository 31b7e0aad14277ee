package coalesce

// Option configures a tracker.
type Option func(*inMemoryTracker)

// WithMaxSize caps the number of outstanding claims. When the cap is
// reached the oldest claim is evicted. A value of zero or less disables
// eviction entirely.
func WithMaxSize(size int) Option {
	return func(t *inMemoryTracker) {
		t.maxSize = size
	}
}
