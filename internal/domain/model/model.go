// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// Category identifies one of the four fixed footprint domains.
// The literals double as persisted key segments and must not be renamed
// without migrating stored records.
type Category string

// The fixed category set.
const (
	Home   Category = "home"
	Travel Category = "travel"
	Food   Category = "food"
	Others Category = "others"
)

// Categories returns all categories in their canonical display order.
func Categories() []Category {
	return []Category{Home, Travel, Food, Others}
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Home, Travel, Food, Others:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// AnswerSet holds one selected answer token per question for a category.
// It is ephemeral; it exists only for the duration of a scoring call.
type AnswerSet map[string]string

// SurveyRecord is the persisted result of one category survey submission.
// One record per (user, category); resubmission overwrites it.
type SurveyRecord struct {
	RecordID   string             // unique id for audit
	Category   Category           //
	Answers    AnswerSet          // raw answer tokens for display/audit
	PerWeekKg  map[string]float64 // per-question weekly contributions
	WeeklyKg   float64            // kg CO2e per week
	AnnualTons float64            // metric tons CO2e per year
	CreatedAt  time.Time          //
}

// Footprint is the aggregate snapshot across the four categories.
// Invariant: Total == Home + Travel + Food + Others, with categories that
// have no recorded data contributing exactly zero.
type Footprint struct {
	ByCategory map[Category]float64
	Total      float64
	Impact     string
	UpdatedAt  time.Time
}

// Value returns the annual tons recorded for a category (zero when absent).
func (f Footprint) Value(c Category) float64 {
	return f.ByCategory[c]
}
