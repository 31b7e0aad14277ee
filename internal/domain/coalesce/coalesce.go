// Package coalesce tracks users with a pending footprint recompute so the
// queue never holds more than one job per user at a time.
package coalesce

import (
	"context"
	"sync"
	"sync/atomic"
)

// Tracker records pending recompute claims.
type Tracker interface {
	// Claim atomically marks userID as having a pending recompute.
	// Returns false if a recompute was already pending, true if this call
	// took the claim and the caller should enqueue a job.
	Claim(ctx context.Context, userID string) bool

	// Release clears the claim after the job ran (or failed to enqueue),
	// allowing the next submission to queue a fresh recompute.
	Release(ctx context.Context, userID string)

	Size() int64
}

// node is a single entry in the claim list.
type node struct {
	id   string
	next *node
}

func (n *node) reset() {
	n.id = ""
	n.next = nil
}

// inMemoryTracker implements Tracker with a map plus a linked list for
// bounded LIFO eviction. Eviction only matters if releases are lost (a
// worker crash); it keeps the tracker from growing without bound.
type inMemoryTracker struct {
	mu       sync.Mutex
	pending  map[string]*node
	head     *node
	maxSize  int // 0 or negative disables eviction
	size     atomic.Int64
	nodePool sync.Pool
}

// NewInMemoryTracker creates a tracker with configuration options.
func NewInMemoryTracker(opts ...Option) Tracker {
	t := &inMemoryTracker{
		maxSize: 50000, // default max size
	}
	for _, opt := range opts {
		opt(t)
	}

	t.pending = make(map[string]*node)
	if t.maxSize > 0 {
		t.nodePool = sync.Pool{
			New: func() interface{} {
				return &node{}
			},
		}
	}
	return t
}

// Claim atomically takes the pending-recompute claim for userID.
func (t *inMemoryTracker) Claim(_ context.Context, userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.pending[userID]; exists {
		return false
	}

	if t.maxSize > 0 {
		if len(t.pending) >= t.maxSize {
			t.evictOldest()
		}
		n := t.nodePool.Get().(*node)
		n.id = userID
		n.next = t.head
		t.head = n
		t.pending[userID] = n
	} else {
		t.pending[userID] = nil
	}
	t.size.Add(1)
	return true
}

// Release clears the claim for userID.
func (t *inMemoryTracker) Release(_ context.Context, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, exists := t.pending[userID]
	if !exists {
		return
	}
	delete(t.pending, userID)
	t.size.Add(-1)

	if t.maxSize <= 0 {
		return
	}

	// Unlink from the list.
	if t.head == n {
		t.head = n.next
	} else {
		cur := t.head
		for cur != nil && cur.next != n {
			cur = cur.next
		}
		if cur != nil {
			cur.next = n.next
		}
	}
	n.reset()
	t.nodePool.Put(n)
}

// evictOldest drops the tail of the list. Must be called with t.mu held.
func (t *inMemoryTracker) evictOldest() {
	if t.head == nil {
		return
	}

	if t.head.next == nil {
		delete(t.pending, t.head.id)
		t.head.reset()
		t.nodePool.Put(t.head)
		t.head = nil
		t.size.Add(-1)
		return
	}

	prev := t.head
	cur := t.head.next
	for cur.next != nil {
		prev = cur
		cur = cur.next
	}
	prev.next = nil
	delete(t.pending, cur.id)
	cur.reset()
	t.nodePool.Put(cur)
	t.size.Add(-1)
}

// Size returns the current number of claimed users.
func (t *inMemoryTracker) Size() int64 {
	return t.size.Load()
}
