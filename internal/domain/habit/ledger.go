package habit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/okian/ecotrace/internal/adapters/kv"
	"github.com/okian/ecotrace/pkg/logger"
	"github.com/okian/ecotrace/pkg/metrics"
)

// slotKey is where a user's serialized card list lives inside the slot
// store. The segment names are carried over from existing persisted data
// and must not change without a migration.
func slotKey(userID string) string {
	return "click_pref/" + userID + "/card_list"
}

// Ledger merges habit completions into the persisted card list.
//
// The cycle is load snapshot, mutate, store full snapshot. Writers within
// one process are serialized by a mutex; across processes the store's
// last-writer-wins semantics decide, which is accepted for this data.
type Ledger struct {
	mu    sync.Mutex
	slots kv.Store
	log   logger.Logger
}

// LedgerOption applies a configuration option to the Ledger.
type LedgerOption func(*Ledger)

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) LedgerOption {
	return func(l *Ledger) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLedger creates a Ledger over the given slot store.
func NewLedger(slots kv.Store, opts ...LedgerOption) *Ledger {
	l := &Ledger{slots: slots}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Get().Named("habit")
	}
	return l
}

// RecordCompletion merges one completion into the user's card list: an
// existing card's progress advances by one (capped), an unseen title creates
// a card with progress 1 and the supplied display metadata.
func (l *Ledger) RecordCompletion(ctx context.Context, userID, title, quantity, points string) error {
	if title == "" {
		return ErrEmptyTitle
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cards, err := l.load(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for i := range cards {
		if cards[i].Title == title {
			cards[i].Advance()
			found = true
			break
		}
	}
	if !found {
		cards = append(cards, Card{
			Title:    title,
			Quantity: quantity,
			Points:   points,
			Progress: 1,
		})
	}

	if err := l.persist(ctx, userID, cards); err != nil {
		return err
	}

	metrics.RecordHabitCompletion()
	metrics.UpdateHabitCards(len(cards))
	return nil
}

// Cards returns the most recently persisted card list in order.
func (l *Ledger) Cards(ctx context.Context, userID string) ([]Card, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx, userID)
}

// load reads and decodes the current snapshot. A never-written slot is an
// empty list; an undecodable snapshot is logged and treated as empty rather
// than surfaced.
func (l *Ledger) load(ctx context.Context, userID string) ([]Card, error) {
	raw, err := l.slots.Get(ctx, slotKey(userID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load habit cards: %w", err)
	}

	cards, err := decodeCards(raw)
	if err != nil {
		l.log.Warn(ctx, "discarding undecodable habit snapshot",
			logger.String("userID", userID),
			logger.Error(err),
		)
		return nil, nil
	}
	return cards, nil
}

// persist stores the full updated list, replacing the prior snapshot.
func (l *Ledger) persist(ctx context.Context, userID string, cards []Card) error {
	raw, err := encodeCards(cards)
	if err != nil {
		return err
	}
	if err := l.slots.Set(ctx, slotKey(userID), raw); err != nil {
		metrics.RecordHabitPersistFailure()
		return fmt.Errorf("%w: %w", ErrPersistCards, err)
	}
	return nil
}
