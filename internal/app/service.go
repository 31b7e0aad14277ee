// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/ecotrace/internal/adapters/kv"
	jobqueue "github.com/okian/ecotrace/internal/adapters/mq/queue"
	workerpool "github.com/okian/ecotrace/internal/adapters/mq/worker"
	repository "github.com/okian/ecotrace/internal/adapters/repository"
	"github.com/okian/ecotrace/internal/domain/aggregate"
	"github.com/okian/ecotrace/internal/domain/coalesce"
	"github.com/okian/ecotrace/internal/domain/habit"
	"github.com/okian/ecotrace/internal/domain/model"
	"github.com/okian/ecotrace/internal/domain/scoring"
	"github.com/okian/ecotrace/pkg/logger"
	"github.com/okian/ecotrace/pkg/metrics"
)

// Service implements the API dependencies for the footprint system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	slots      kv.Store
	scorer     scoring.Scorer
	aggregator *aggregate.Aggregator
	ledger     *habit.Ledger
	recomputes jobqueue.Queue
	tracker    coalesce.Tracker
	workerPool *workerpool.Pool

	// Configuration
	workerCount  int
	queueSize    int
	coalesceSize int
	shardCount   int

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:  runtime.NumCPU() * 2,
		queueSize:    10000,
		coalesceSize: 50000,
		stopCh:       make(chan struct{}),
		logger:       nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting footprint service...")

	// Initialize components
	if s.store == nil {
		var storeOpts []repository.Option
		if s.shardCount > 0 {
			storeOpts = append(storeOpts, repository.WithShardCount(s.shardCount))
		}
		s.store = repository.NewMemoryStore(ctx, storeOpts...)
		s.logger.Info(ctx, "using sharded in-memory document store")
	}
	if s.slots == nil {
		s.slots = kv.NewMemoryStore()
		s.logger.Info(ctx, "using in-memory slot store")
	}
	s.scorer = scoring.NewTableScorer()
	s.aggregator = aggregate.New(s.store,
		aggregate.WithLogger(s.logger.Named("aggregate")),
	)
	s.ledger = habit.NewLedger(s.slots,
		habit.WithLogger(s.logger.Named("habit")),
	)
	s.tracker = coalesce.NewInMemoryTracker(
		coalesce.WithMaxSize(s.coalesceSize),
	)
	s.recomputes = jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.queueSize),
		jobqueue.WithBufferSize(s.queueSize),
	)

	// Create and start the recompute worker pool
	s.workerPool = workerpool.NewPool(s.workerCount, s.recomputes, s.aggregator, s.tracker)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "footprint service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("coalesceSize", s.coalesceSize),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping footprint service...")

	// Close the queue first so workers drain and exit on channel close
	if q, ok := s.recomputes.(*jobqueue.InMemoryQueue); ok {
		_ = q.Close()
	}

	// Stop worker pool
	if s.workerPool != nil {
		s.workerPool.Stop()
	}

	// Close the slot store if it holds a connection
	if closer, ok := s.slots.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	// Close the document store after the workers have stopped writing to it
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	select {
	case <-s.stopCh:
		// Channel already closed
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "footprint service stopped")
}

// SubmitSurvey scores a category survey, persists the record, and queues an
// asynchronous recompute of the user's total footprint.
//
// The scored result is always returned when scoring succeeds; a persistence
// failure is reported through a wrapped ErrPersistSurvey alongside it so
// callers can surface the computed numbers with a degraded-write flag.
func (s *Service) SubmitSurvey(ctx context.Context, userID string, cat model.Category, answers model.AnswerSet) (scoring.Result, error) {
	if userID == "" {
		return scoring.Result{}, ErrEmptyUserID
	}

	result, err := s.scorer.Score(ctx, cat, answers)
	if err != nil {
		return scoring.Result{}, err
	}

	record := model.SurveyRecord{
		RecordID:   uuid.NewString(),
		Category:   cat,
		Answers:    result.Answers,
		PerWeekKg:  result.PerWeekKg,
		WeeklyKg:   result.WeeklyKg,
		AnnualTons: result.AnnualTons,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.persistSurvey(ctx, userID, record); err != nil {
		s.logger.Error(ctx, "survey record not persisted",
			logger.String("userID", userID),
			logger.String("category", string(cat)),
			logger.Error(err),
		)
		return result, err
	}

	s.queueRecompute(ctx, userID)

	return result, nil
}

// persistSurvey writes the survey record document. One document per
// (user, category); resubmission overwrites.
func (s *Service) persistSurvey(ctx context.Context, userID string, rec model.SurveyRecord) error {
	answers := make(map[string]any, len(rec.Answers))
	for q, a := range rec.Answers {
		answers[q] = a
	}
	perWeek := make(map[string]any, len(rec.PerWeekKg))
	for q, kg := range rec.PerWeekKg {
		perWeek[q] = kg
	}

	doc := repository.Document{
		"recordId":            rec.RecordID,
		"category":            string(rec.Category),
		"answers":             answers,
		"perQuestionWeeklyKg": perWeek,
		"weeklyEmissions":     rec.WeeklyKg,
		"annualEmissions":     rec.AnnualTons,
		"createdAt":           rec.CreatedAt.Format(time.RFC3339),
	}

	if err := s.store.Set(ctx, model.SurveyKey(rec.Category, userID), doc); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistSurvey, err)
	}
	return nil
}

// queueRecompute enqueues a coalesced total-footprint recompute. At most one
// job per user is in flight; further submissions ride on the pending job.
func (s *Service) queueRecompute(ctx context.Context, userID string) {
	if !s.tracker.Claim(ctx, userID) {
		s.logger.Debug(ctx, "recompute already pending",
			logger.String("userID", userID),
		)
		return
	}
	metrics.UpdatePendingRecomputes(s.tracker.Size())

	job := jobqueue.Job{UserID: userID, Enqueued: time.Now()}
	if !s.recomputes.Enqueue(ctx, job) {
		// Give the claim back so the next submission can retry.
		s.tracker.Release(ctx, userID)
		metrics.UpdatePendingRecomputes(s.tracker.Size())
		s.logger.Warn(ctx, "recompute queue full, job dropped",
			logger.String("userID", userID),
		)
	}
}

// Footprint synchronously aggregates the user's total footprint across all
// categories. Reads always compute from the survey records rather than the
// cached total, so a failed or lagging recompute never serves stale numbers.
func (s *Service) Footprint(ctx context.Context, userID string) (model.Footprint, error) {
	if userID == "" {
		return model.Footprint{}, ErrEmptyUserID
	}
	return s.aggregator.Aggregate(ctx, userID)
}

// CompleteHabit records one completion of a sustainable action.
func (s *Service) CompleteHabit(ctx context.Context, userID, title, quantity, points string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	return s.ledger.RecordCompletion(ctx, userID, title, quantity, points)
}

// Habits returns the user's habit cards in insertion order.
func (s *Service) Habits(ctx context.Context, userID string) ([]habit.Card, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	return s.ledger.Cards(ctx, userID)
}

// Actions returns the catalog of known sustainable actions.
func (s *Service) Actions() []habit.Action {
	return habit.KnownActions()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"workerCount":  s.workerCount,
		"queueSize":    s.queueSize,
		"coalesceSize": s.coalesceSize,
	}

	if s.started {
		queueLen := s.recomputes.Len(ctx)
		totalRecords := s.store.Count(ctx)

		stats["queueLength"] = queueLen
		stats["totalRecords"] = totalRecords
		stats["pendingRecomputes"] = s.tracker.Size()

		// Update metrics
		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateRepositoryRecords(totalRecords)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}
