// Package scoring defines the contract for computing annual emissions from
// a completed survey answer set.
package scoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/ecotrace/internal/domain/factor"
	"github.com/okian/ecotrace/internal/domain/model"
	"github.com/okian/ecotrace/pkg/metrics"
)

// Conversion constants: kg CO2e per week to metric tons CO2e per year.
const (
	weeksPerYear = 52
	kgPerTon     = 1000
)

// Result contains the computed emissions for one category submission.
// The answer set is echoed back so callers can persist it for audit.
type Result struct {
	Category   model.Category
	Answers    model.AnswerSet
	PerWeekKg  map[string]float64 // per-question weekly contribution
	WeeklyKg   float64
	AnnualTons float64
	// Unrecognized lists answers that fell outside the factor table domain
	// and contributed zero. A non-empty list indicates an incomplete table,
	// not a runtime failure.
	Unrecognized []string
}

// Scorer computes annual emissions from a validated answer set.
type Scorer interface {
	// Score sums the factor-table contribution of every required question
	// and converts the weekly total to metric tons per year. The answer set
	// must contain exactly one answer per required question; an incomplete
	// set is rejected before any lookup happens.
	Score(ctx context.Context, cat model.Category, answers model.AnswerSet) (Result, error)
}

// Option applies a configuration option to the TableScorer.
type Option func(*TableScorer)

// WithLookup overrides the factor lookup function. Used by tests.
func WithLookup(fn func(model.Category, string, string) (float64, bool)) Option {
	return func(s *TableScorer) {
		if fn != nil {
			s.lookup = fn
		}
	}
}

// WithQuestions overrides the required-question source. Used by tests.
func WithQuestions(fn func(model.Category) []string) Option {
	return func(s *TableScorer) {
		if fn != nil {
			s.questions = fn
		}
	}
}

// TableScorer implements Scorer over the build-time factor tables.
// It is stateless and safe for concurrent use.
type TableScorer struct {
	lookup    func(model.Category, string, string) (float64, bool)
	questions func(model.Category) []string
}

// NewTableScorer creates a scorer with configuration options.
func NewTableScorer(opts ...Option) *TableScorer {
	s := &TableScorer{
		lookup:    factor.Lookup,
		questions: factor.Questions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes weekly and annual emissions for the given answers.
func (s *TableScorer) Score(_ context.Context, cat model.Category, answers model.AnswerSet) (Result, error) {
	required := s.questions(cat)
	if len(required) == 0 {
		return Result{}, fmt.Errorf("score %s: %w", cat, ErrUnknownCategory)
	}

	var missing []string
	for _, q := range required {
		if _, ok := answers[q]; !ok {
			missing = append(missing, q)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Result{}, fmt.Errorf("%w: %v", ErrIncompleteAnswers, missing)
	}

	res := Result{
		Category:  cat,
		Answers:   answers,
		PerWeekKg: make(map[string]float64, len(required)),
	}

	// Contributions are additive and commutative; iteration order only
	// affects the Unrecognized listing, which follows question order.
	for _, q := range required {
		kg, ok := s.lookup(cat, q, answers[q])
		if !ok {
			res.Unrecognized = append(res.Unrecognized, q)
			metrics.RecordTableGap()
		}
		res.PerWeekKg[q] = kg
		res.WeeklyKg += kg
	}

	res.AnnualTons = res.WeeklyKg * weeksPerYear / kgPerTon
	metrics.RecordSurveyScored()
	return res, nil
}
