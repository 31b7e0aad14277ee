package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStore_BasicOperations(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Missing slot
	if _, err := store.Get(ctx, "click_pref/u1/card_list"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Set and get
	if err := store.Set(ctx, "click_pref/u1/card_list", `[{"title":"x"}]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := store.Get(ctx, "click_pref/u1/card_list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != `[{"title":"x"}]` {
		t.Errorf("unexpected value: %s", v)
	}

	// Overwrite replaces the slot
	if err := store.Set(ctx, "click_pref/u1/card_list", "[]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err = store.Get(ctx, "click_pref/u1/card_list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "[]" {
		t.Errorf("expected overwrite, got %s", v)
	}
}

func TestMemoryStore_EmptyKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "", "v"); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey on set, got %v", err)
	}
	if _, err := store.Get(ctx, ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey on get, got %v", err)
	}
}

func TestMemoryStore_ContextCancelled(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Set(ctx, "k", "v"); err == nil {
		t.Error("expected error from cancelled context")
	}
	if _, err := store.Get(ctx, "k"); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("click_pref/u%d/card_list", id)
			for j := 0; j < 100; j++ {
				if err := store.Set(ctx, key, fmt.Sprintf("[%d]", j)); err != nil {
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
}
