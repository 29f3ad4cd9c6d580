package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrPoolClosed = errors.New("worker pool is closed")

type WorkerPoolI interface {
	Submit(ctx context.Context, job Job) error
	Close()
}

// Job is one queued unit of settlement work. The id survives into logs so a
// redelivered batch can be traced across runs.
type Job struct {
	ID  uuid.UUID
	Run func() error
}

type WorkerPool struct {
	jobs   chan Job
	mu     sync.RWMutex
	closed bool
}

func NewWorkerPool(size int) *WorkerPool {
	jobs := make(chan Job, size)
	wp := &WorkerPool{jobs: jobs}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for job := range wp.jobs {
		if err := job.Run(); err != nil {
			zap.L().Error("job execution failed", zap.String("jobID", job.ID.String()), zap.Error(err))
		}
	}
}

// Submit holds a read lock for the duration of the send, so Close cannot
// close the channel out from under an in-flight submission.
func (wp *WorkerPool) Submit(ctx context.Context, job Job) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.jobs <- job:
		return nil
	}
}

// Close stops intake and lets the workers drain whatever is already queued.
// Subsequent Submit calls return ErrPoolClosed; calling Close again is a
// no-op.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.closed {
		return
	}
	wp.closed = true
	close(wp.jobs)
}
