package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_CloseDrainsQueuedJobs(t *testing.T) {
	wp := NewWorkerPool(4)

	var (
		mu   sync.Mutex
		runs int
	)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		err := wp.Submit(context.Background(), Job{
			ID: uuid.New(),
			Run: func() error {
				mu.Lock()
				runs++
				if runs == 4 {
					close(done)
				}
				mu.Unlock()
				return nil
			},
		})
		assert.NoError(t, err)
	}

	wp.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queued jobs were not drained after Close")
	}
	mu.Lock()
	assert.Equal(t, 4, runs)
	mu.Unlock()
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	wp.Close() // second close is a no-op

	err := wp.Submit(context.Background(), Job{ID: uuid.New(), Run: func() error { return nil }})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_SubmitCancelledContext(t *testing.T) {
	// A full queue with no workers draining it: Submit must give up when the
	// context is cancelled instead of blocking forever.
	wp := &WorkerPool{jobs: make(chan Job)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.Submit(ctx, Job{ID: uuid.New(), Run: func() error { return nil }})
	assert.ErrorIs(t, err, context.Canceled)
}
