// Package habit maintains the habit-progress ledger: a persisted ordered
// list of cards, one per low-carbon action, each with a progress counter
// bounded to [0, 4].
package habit

import (
	"encoding/json"
	"fmt"
)

// MaxProgress is the terminal progress value; a card at MaxProgress counts
// as a formed habit and further completions leave it unchanged.
const MaxProgress = 4

// Card tracks one recurring action. Title acts as the natural key within a
// user's list. Quantity and Points are display strings carried verbatim.
type Card struct {
	Title    string `json:"title"`
	Quantity string `json:"quantity"`
	Points   string `json:"points"`
	Progress int    `json:"progress"`
}

// Advance increments the progress counter by one completion, clamped at
// MaxProgress. Completions past the ceiling are accepted and ignored.
func (c *Card) Advance() {
	if c.Progress < MaxProgress {
		c.Progress++
	}
}

// Formed reports whether the habit reached the terminal progress state.
func (c Card) Formed() bool {
	return c.Progress >= MaxProgress
}

// encodeCards serializes the card list for the string slot.
func encodeCards(cards []Card) (string, error) {
	b, err := json.Marshal(cards)
	if err != nil {
		return "", fmt.Errorf("encode cards: %w", err)
	}
	return string(b), nil
}

// decodeCards deserializes a slot value back into the ordered card list.
func decodeCards(raw string) ([]Card, error) {
	var cards []Card
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	return cards, nil
}
