// Package aggregate recombines the four per-category survey records into a
// single annual footprint for a user.
//
// Availability wins over consistency here: a category with no record, a
// failing fetch, or an unreadable stored value contributes exactly zero, and
// the user always gets a total rather than an error.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/ecotrace/internal/adapters/repository"
	"github.com/okian/ecotrace/internal/domain/model"
	"github.com/okian/ecotrace/pkg/logger"
	"github.com/okian/ecotrace/pkg/metrics"
)

// Aggregator computes and persists the cross-category footprint snapshot.
type Aggregator struct {
	store repository.Store
	log   logger.Logger
	now   func() time.Time
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an Aggregator over the given document store.
func New(store repository.Store, opts ...Option) *Aggregator {
	a := &Aggregator{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.Get().Named("aggregate")
	}
	return a
}

// fetchResult carries one category's settled outcome across the barrier.
type fetchResult struct {
	category model.Category
	tons     float64
}

// Aggregate fetches all four category records concurrently, waits for every
// fetch to settle, then computes and persists the combined total.
//
// The returned Footprint is always usable. A non-nil error only ever wraps
// ErrPersistTotal: the snapshot write failed but the in-memory total stands,
// and callers are expected to show it anyway.
func (a *Aggregator) Aggregate(ctx context.Context, userID string) (model.Footprint, error) {
	start := a.now()

	results := make(chan fetchResult, len(model.Categories()))
	var wg sync.WaitGroup

	// One fetch per category; the barrier below waits for all of them, so a
	// total is never computed from fewer than four settled outcomes.
	for _, cat := range model.Categories() {
		wg.Add(1)
		go func(cat model.Category) {
			defer wg.Done()
			results <- fetchResult{category: cat, tons: a.fetchCategory(ctx, userID, cat)}
		}(cat)
	}
	wg.Wait()
	close(results)

	fp := model.Footprint{
		ByCategory: make(map[model.Category]float64, len(model.Categories())),
		UpdatedAt:  a.now(),
	}
	for r := range results {
		fp.ByCategory[r.category] = r.tons
		fp.Total += r.tons
	}
	fp.Impact = ImpactDescription(fp.Total)

	metrics.RecordAggregation()
	metrics.RecordAggregationLatency(float64(a.now().Sub(start).Milliseconds()))

	if err := a.persistTotal(ctx, userID, fp); err != nil {
		return fp, err
	}
	return fp, nil
}

// fetchCategory resolves one category's annual tons, settling to zero on
// absence, fetch failure, or an unreadable stored value.
func (a *Aggregator) fetchCategory(ctx context.Context, userID string, cat model.Category) float64 {
	doc, err := a.store.Get(ctx, model.SurveyKey(cat, userID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			a.log.Debug(ctx, "no data for category",
				logger.String("category", string(cat)),
				logger.String("userID", userID),
			)
			return 0
		}
		metrics.RecordAggregationFetchFailure()
		a.log.Warn(ctx, "category fetch failed; contributing zero",
			logger.String("category", string(cat)),
			logger.String("userID", userID),
			logger.Error(err),
		)
		return 0
	}

	tons, ok := extractAnnual(doc)
	if !ok {
		metrics.RecordCoercionAnomaly()
		a.log.Warn(ctx, "stored record has no readable emission value",
			logger.String("category", string(cat)),
			logger.String("userID", userID),
		)
		return 0
	}
	return tons
}

// persistTotal writes the aggregate snapshot back as the user's current
// footprint.
func (a *Aggregator) persistTotal(ctx context.Context, userID string, fp model.Footprint) error {
	doc := repository.Document{
		"total_footprint": fp.Total,
		"updatedAt":       fp.UpdatedAt.UnixMilli(),
	}
	for cat, tons := range fp.ByCategory {
		doc[string(cat)] = tons
	}

	if err := a.store.Set(ctx, model.TotalKey(userID), doc); err != nil {
		metrics.RecordAggregationPersistFailure()
		a.log.Warn(ctx, "failed to persist total footprint",
			logger.String("userID", userID),
			logger.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrPersistTotal, err)
	}
	return nil
}
