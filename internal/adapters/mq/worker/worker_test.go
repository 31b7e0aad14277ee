package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	queue "github.com/okian/ecotrace/internal/adapters/mq/queue"
	worker "github.com/okian/ecotrace/internal/adapters/mq/worker"
	model "github.com/okian/ecotrace/internal/domain/model"
	logging "github.com/okian/ecotrace/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing.
type mockQueue struct {
	jobChan    chan queue.Job
	closeError error
}

func newMockQueue() *mockQueue {
	return &mockQueue{
		jobChan: make(chan queue.Job, 10),
	}
}

func (mq *mockQueue) Dequeue(ctx context.Context) <-chan queue.Job {
	return mq.jobChan
}

func (mq *mockQueue) Close() error {
	close(mq.jobChan)
	return mq.closeError
}

func (mq *mockQueue) addJob(j queue.Job) {
	mq.jobChan <- j
}

type mockAggregator struct {
	footprints map[string]model.Footprint
	errors     map[string]error
	calls      map[string]int
	mu         sync.RWMutex
}

func newMockAggregator() *mockAggregator {
	return &mockAggregator{
		footprints: make(map[string]model.Footprint),
		errors:     make(map[string]error),
		calls:      make(map[string]int),
	}
}

func (ma *mockAggregator) Aggregate(ctx context.Context, userID string) (model.Footprint, error) {
	ma.mu.Lock()
	defer ma.mu.Unlock()

	ma.calls[userID]++
	if err, exists := ma.errors[userID]; exists {
		return model.Footprint{}, err
	}
	if fp, exists := ma.footprints[userID]; exists {
		return fp, nil
	}
	return model.Footprint{Total: 0}, nil
}

func (ma *mockAggregator) setFootprint(userID string, fp model.Footprint) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	ma.footprints[userID] = fp
}

func (ma *mockAggregator) setError(userID string, err error) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	ma.errors[userID] = err
}

func (ma *mockAggregator) callCount(userID string) int {
	ma.mu.RLock()
	defer ma.mu.RUnlock()
	return ma.calls[userID]
}

type mockReleaser struct {
	released map[string]int
	mu       sync.RWMutex
}

func newMockReleaser() *mockReleaser {
	return &mockReleaser{
		released: make(map[string]int),
	}
}

func (mr *mockReleaser) Release(ctx context.Context, userID string) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.released[userID]++
}

func (mr *mockReleaser) releaseCount(userID string) int {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.released[userID]
}

func TestInMemoryWorker(t *testing.T) {
	convey.Convey("Given a new InMemoryWorker", t, func() {
		// Initialize logging for tests
		_ = logging.Init()

		q := newMockQueue()
		aggregator := newMockAggregator()
		releaser := newMockReleaser()

		convey.Convey("When creating a worker with default options", func() {
			w := worker.NewInMemoryWorker(q, aggregator, releaser)

			convey.Convey("Then it should be created successfully", func() {
				convey.So(w, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When creating a worker with custom options", func() {
			w := worker.NewInMemoryWorker(
				q, aggregator, releaser,
				worker.WithName("test-worker"),
			)

			convey.Convey("Then it should be created successfully", func() {
				convey.So(w, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When running a worker", func() {
			w := worker.NewInMemoryWorker(q, aggregator, releaser)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go w.Run(ctx)

			// Give worker time to start
			time.Sleep(10 * time.Millisecond)

			convey.Convey("And when processing a recompute job", func() {
				aggregator.setFootprint("user-1", model.Footprint{Total: 3.5})

				q.addJob(queue.Job{UserID: "user-1", Enqueued: time.Now()})

				// Give worker time to process
				time.Sleep(50 * time.Millisecond)

				convey.Convey("Then it should recompute the footprint", func() {
					convey.So(aggregator.callCount("user-1"), convey.ShouldEqual, 1)
				})

				convey.Convey("Then it should release the pending claim", func() {
					convey.So(releaser.releaseCount("user-1"), convey.ShouldEqual, 1)
				})
			})

			convey.Convey("And when aggregation fails", func() {
				aggregator.setError("user-2", errors.New("store unavailable"))

				q.addJob(queue.Job{UserID: "user-2", Enqueued: time.Now()})

				// Give worker time to process
				time.Sleep(50 * time.Millisecond)

				convey.Convey("Then the claim is still released", func() {
					convey.So(releaser.releaseCount("user-2"), convey.ShouldEqual, 1)
				})
			})

			convey.Convey("And when shutting down", func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
				defer shutdownCancel()

				err := w.Shutdown(shutdownCtx)

				convey.Convey("Then it should stop cleanly", func() {
					convey.So(err, convey.ShouldBeNil)
				})
			})
		})
	})
}

func TestPool(t *testing.T) {
	convey.Convey("Given a worker pool", t, func() {
		_ = logging.Init()

		q := queue.NewInMemoryQueue(queue.WithCapacity(10))
		aggregator := newMockAggregator()
		releaser := newMockReleaser()

		pool := worker.NewPool(3, q, aggregator, releaser)

		convey.Convey("When the pool is started", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			pool.Start(ctx)

			convey.Convey("And jobs are enqueued", func() {
				aggregator.setFootprint("user-a", model.Footprint{Total: 1.2})
				aggregator.setFootprint("user-b", model.Footprint{Total: 0.4})

				q.Enqueue(ctx, queue.Job{UserID: "user-a", Enqueued: time.Now()})
				q.Enqueue(ctx, queue.Job{UserID: "user-b", Enqueued: time.Now()})

				time.Sleep(100 * time.Millisecond)

				convey.Convey("Then all jobs are processed", func() {
					convey.So(aggregator.callCount("user-a"), convey.ShouldEqual, 1)
					convey.So(aggregator.callCount("user-b"), convey.ShouldEqual, 1)
				})
			})

			convey.Convey("And the pool is shut down", func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer shutdownCancel()

				err := pool.Shutdown(shutdownCtx)

				convey.Convey("Then shutdown completes without error", func() {
					convey.So(err, convey.ShouldBeNil)
					convey.So(q.IsClosed(), convey.ShouldBeTrue)
				})
			})
		})
	})
}
