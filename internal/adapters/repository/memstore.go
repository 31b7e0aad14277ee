package repository

import (
	"context"
	"fmt"
	"hash/fnv"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/okian/ecotrace/pkg/metrics"
)

// Default memory store configuration constants.
const (
	defaultShardCount = 8
)

// shard holds one slice of the key space behind its own lock so writers for
// different users do not contend.
type shard struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// MemoryStore implements Store with a sharded in-memory map. It is the
// default document store; a deployment can substitute any Store that honors
// the same single-key atomicity.
type MemoryStore struct {
	shards     []*shard
	shardCount int
	closed     atomic.Bool
}

// NewMemoryStore creates a memory store with configuration options.
func NewMemoryStore(ctx context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		shardCount: defaultShardCount,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.shards = make([]*shard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{docs: make(map[string]Document)}
	}

	metrics.UpdateRepositoryShardCount(s.shardCount)
	metrics.UpdateRepositoryRecords(0)
	return s
}

func (s *MemoryStore) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[int(h.Sum32())%s.shardCount]
}

// Get returns the document stored under key, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, key string) (Document, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if s.closed.Load() {
		return nil, fmt.Errorf("get %s: %w", key, ErrStoreClose)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	sh := s.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	doc, ok := sh.docs[key]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", key, ErrNotFound)
	}
	// Copy so callers cannot mutate the stored document.
	return maps.Clone(doc), nil
}

// Set stores doc under key, replacing any previous document.
func (s *MemoryStore) Set(ctx context.Context, key string, doc Document) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.closed.Load() {
		return fmt.Errorf("set %s: %w", key, ErrStoreClose)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	sh := s.shardFor(key)
	sh.mu.Lock()
	sh.docs[key] = maps.Clone(doc)
	sh.mu.Unlock()

	metrics.UpdateRepositoryRecords(s.Count(ctx))
	return nil
}

// Count returns the number of documents across all shards.
func (s *MemoryStore) Count(_ context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.docs)
		sh.mu.RUnlock()
	}
	return total
}

// Close marks the store closed. Subsequent reads and writes fail with
// ErrStoreClose; Close is idempotent.
func (s *MemoryStore) Close() error {
	s.closed.Store(true)
	return nil
}
