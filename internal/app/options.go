package service

import (
	"github.com/okian/ecotrace/internal/adapters/kv"
	repository "github.com/okian/ecotrace/internal/adapters/repository"
	"github.com/okian/ecotrace/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of recompute worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the recompute queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithCoalesceSize caps the pending-recompute tracker.
func WithCoalesceSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.coalesceSize = size
		}
	}
}

// WithShardCount sets the shard count of the in-memory document store.
// Ignored when WithStore supplies a store.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithStore supplies the document store for survey records and totals.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSlotStore supplies the slot store backing the habit ledger.
func WithSlotStore(slots kv.Store) Option {
	return func(s *Service) {
		if slots != nil {
			s.slots = slots
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
