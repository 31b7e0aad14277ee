// Package repository defines the document store interface and errors.
package repository

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithShardCount sets the number of shards the key space is split across.
func WithShardCount(count int) Option {
	return func(s *MemoryStore) {
		if count > 0 {
			s.shardCount = count
		}
	}
}
