package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/service/ledgerservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Settler is the settlement entry point every queued batch drains into.
type Settler interface {
	SettleWithdrawal(ctx context.Context, requestID int, outcome ledgerservice.SettleOutcome, externalRef *string) (*ledgerservice.SettleResult, error)
}

type WithdrawalRepo interface {
	ListPendingIDs(ctx context.Context) ([]int, error)
}

// Outcome is one request's result within a batch. Requests already settled
// by an earlier delivery report ok=false with the reason, without failing
// the batch.
type Outcome struct {
	RequestID int    `json:"requestId"`
	OK        bool   `json:"ok"`
	Status    string `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Dispatcher struct {
	settler        Settler
	withdrawalRepo WithdrawalRepo
	workerPool     WorkerPoolI
	batchSize      int
	drainInterval  time.Duration

	mu       sync.Mutex
	inFlight map[int]struct{}
}

func New(settler Settler, withdrawalRepo WithdrawalRepo, cfg config.Ledger) *Dispatcher {
	return &Dispatcher{
		settler:        settler,
		withdrawalRepo: withdrawalRepo,
		workerPool:     NewWorkerPool(10),
		batchSize:      cfg.BatchSize,
		drainInterval:  time.Minute,
		inFlight:       make(map[int]struct{}),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	zap.L().Info("withdrawal dispatcher started")
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.drainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping dispatcher")
			d.workerPool.Close()
			return
		case <-ticker.C:
			if _, err := d.EnqueueAllPending(ctx); err != nil {
				zap.L().Error("failed to enqueue pending withdrawals", zap.Error(err))
			}
		}
	}
}

// EnqueueAllPending partitions the pending backlog into fixed-size batches
// and submits one job per batch. Requests already claimed by an in-flight
// job are skipped; they stay pending and are retried on the next drain. The
// queued count is returned for the caller's summary.
func (d *Dispatcher) EnqueueAllPending(ctx context.Context) (int, error) {
	ids, err := d.withdrawalRepo.ListPendingIDs(ctx)
	if err != nil {
		return 0, err
	}

	free := d.claim(ids)
	if len(free) == 0 {
		return 0, nil
	}

	var g errgroup.Group
	queued := 0
	for start := 0; start < len(free); start += d.batchSize {
		end := start + d.batchSize
		if end > len(free) {
			end = len(free)
		}
		batch := free[start:end]
		queued += len(batch)

		jobID := uuid.New()
		g.Go(func() error {
			err := d.workerPool.Submit(ctx, Job{
				ID: jobID,
				Run: func() error {
					defer d.release(batch)
					outcomes := d.ProcessBatch(ctx, batch)
					logBatchSummary(jobID, outcomes)
					return nil
				},
			})
			if err != nil {
				d.release(batch)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error queueing withdrawal batches", zap.Error(err))
		return queued, err
	}
	return queued, nil
}

// ProcessBatch settles every id in the batch as approved, independently. One
// request's failure never aborts the rest; redeliveries land on idempotent
// settlement and surface as "already processed" outcomes.
func (d *Dispatcher) ProcessBatch(ctx context.Context, ids []int) []Outcome {
	outcomes := make([]Outcome, 0, len(ids))
	for _, id := range ids {
		result, err := d.settler.SettleWithdrawal(ctx, id, ledgerservice.OutcomeApprove, nil)
		switch {
		case err == nil:
			outcomes = append(outcomes, Outcome{RequestID: id, OK: true, Status: string(result.Status)})
		case errors.Is(err, ledgerservice.ErrAlreadyProcessed):
			outcomes = append(outcomes, Outcome{RequestID: id, OK: false, Status: string(result.Status), Error: err.Error()})
		default:
			outcomes = append(outcomes, Outcome{RequestID: id, OK: false, Error: err.Error()})
		}
	}
	return outcomes
}

func (d *Dispatcher) claim(ids []int) []int {
	d.mu.Lock()
	defer d.mu.Unlock()

	free := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, taken := d.inFlight[id]; taken {
			continue
		}
		d.inFlight[id] = struct{}{}
		free = append(free, id)
	}
	return free
}

func (d *Dispatcher) release(ids []int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		delete(d.inFlight, id)
	}
}

func logBatchSummary(jobID uuid.UUID, outcomes []Outcome) {
	ok := 0
	for _, o := range outcomes {
		if o.OK {
			ok++
		}
	}
	zap.L().Info("withdrawal batch settled",
		zap.String("jobID", jobID.String()),
		zap.Int("total", len(outcomes)),
		zap.Int("succeeded", ok),
	)
}
