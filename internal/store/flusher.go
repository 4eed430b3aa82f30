package store

import (
	"context"

	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/metrics"
	"github.com/fennwick/TallyBot_Go/internal/worker"
)

// Flusher triggers snapshot persistence without blocking the request
// path. Engines call Flush after every balance-mutating operation; the
// scheduler enqueues the same job on a fixed interval as a safety net.
// Both paths serialize the full current state, so they race benignly.
type Flusher struct {
	store   *Store
	backend Backend
	pool    *worker.Pool
}

// NewFlusher creates a flusher writing store state through backend via
// the given worker pool.
func NewFlusher(store *Store, backend Backend, pool *worker.Pool) *Flusher {
	return &Flusher{store: store, backend: backend, pool: pool}
}

// Flush enqueues an asynchronous snapshot save.
func (f *Flusher) Flush() {
	f.pool.Enqueue(f)
}

// FlushSync saves the snapshot immediately. Used on shutdown.
func (f *Flusher) FlushSync(ctx context.Context) error {
	return f.Process(ctx)
}

// Process implements worker.Job.
func (f *Flusher) Process(ctx context.Context) error {
	if err := f.store.SaveTo(ctx, f.backend); err != nil {
		metrics.SnapshotFailures.Inc()
		// Persistence errors are logged, never fatal; the next flush retries.
		logger.FromContext(ctx).Error("Snapshot save failed", "error", err)
		return err
	}
	metrics.SnapshotSaves.Inc()
	return nil
}
