package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fennwick/TallyBot_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}

	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(2 * time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestSchedulerStopsCleanly(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(5*time.Millisecond, job)

	sched.Stop()

	// Drain anything enqueued before the stop, then verify no new runs.
	time.Sleep(20 * time.Millisecond)
	for len(job.Done) > 0 {
		<-job.Done
	}
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, len(job.Done))
}
