package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStore_BasicOperations(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(ctx)

	// Test empty store
	if count := store.Count(ctx); count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}

	// Missing key
	if _, err := store.Get(ctx, "surveys/home/u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Set and get
	doc := Document{"annualEmissions": 1.25, "category": "home"}
	if err := store.Set(ctx, "surveys/home/u1", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := store.Get(ctx, "surveys/home/u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["annualEmissions"] != 1.25 {
		t.Errorf("expected 1.25, got %v", got["annualEmissions"])
	}
	if count := store.Count(ctx); count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}

	// Overwrite
	if err := store.Set(ctx, "surveys/home/u1", Document{"annualEmissions": 2.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = store.Get(ctx, "surveys/home/u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["annualEmissions"] != 2.0 {
		t.Errorf("expected overwrite to 2.0, got %v", got["annualEmissions"])
	}
	if count := store.Count(ctx); count != 1 {
		t.Errorf("expected count to stay 1 after overwrite, got %d", count)
	}
}

func TestMemoryStore_EmptyKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(ctx)

	if err := store.Set(ctx, "", Document{"x": 1}); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey on set, got %v", err)
	}
	if _, err := store.Get(ctx, ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey on get, got %v", err)
	}
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(ctx)

	doc := Document{"annualEmissions": 1.0}
	if err := store.Set(ctx, "k", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's document must not leak into the store.
	doc["annualEmissions"] = 99.0
	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["annualEmissions"] != 1.0 {
		t.Errorf("caller mutation leaked into store: got %v", got["annualEmissions"])
	}

	// Mutating a returned document must not leak either.
	got["annualEmissions"] = 42.0
	again, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again["annualEmissions"] != 1.0 {
		t.Errorf("reader mutation leaked into store: got %v", again["annualEmissions"])
	}
}

func TestMemoryStore_ShardOption(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(ctx, WithShardCount(2))

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("surveys/travel/u%d", i)
		if err := store.Set(ctx, key, Document{"annualEmissions": float64(i)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if count := store.Count(ctx); count != 100 {
		t.Errorf("expected count 100, got %d", count)
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("surveys/food/u%d_%d", id, j)
				if err := store.Set(ctx, key, Document{"annualEmissions": float64(j)}); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if _, err := store.Get(ctx, key); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if count := store.Count(ctx); count != 1600 {
		t.Errorf("expected count 1600, got %d", count)
	}
}

func TestMemoryStore_CloseBehavior(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(ctx)

	if err := store.Set(ctx, "surveys/home/u1", Document{"annualEmissions": 1.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}

	// Reads and writes fail once closed
	if _, err := store.Get(ctx, "surveys/home/u1"); !errors.Is(err, ErrStoreClose) {
		t.Errorf("expected ErrStoreClose, got %v", err)
	}
	if err := store.Set(ctx, "surveys/home/u2", Document{"annualEmissions": 2.0}); !errors.Is(err, ErrStoreClose) {
		t.Errorf("expected ErrStoreClose, got %v", err)
	}

	// Close is idempotent
	if err := store.Close(); err != nil {
		t.Errorf("unexpected error on second close: %v", err)
	}
}
