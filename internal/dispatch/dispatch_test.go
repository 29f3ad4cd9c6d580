package dispatch

import (
	"context"
	"testing"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/service/ledgerservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Dispatcher, *MockSettler, *MockWithdrawalRepo, *MockWorkerPoolI) {
	ctrl := gomock.NewController(t)
	settler := NewMockSettler(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	d := New(settler, withdrawalRepo, config.DefaultLedger())
	d.workerPool.Close()
	d.workerPool = workerPool
	defer ctrl.Finish()
	return d, settler, withdrawalRepo, workerPool
}

func TestProcessBatch_PartialFailure(t *testing.T) {
	d, settler, _, _ := NewMock(t)

	settler.EXPECT().SettleWithdrawal(gomock.Any(), 1, ledgerservice.OutcomeApprove, nil).
		Return(&ledgerservice.SettleResult{RequestID: 1, Status: domain.WithdrawalApproved}, nil)
	settler.EXPECT().SettleWithdrawal(gomock.Any(), 2, ledgerservice.OutcomeApprove, nil).
		Return(&ledgerservice.SettleResult{RequestID: 2, Status: domain.WithdrawalApproved}, ledgerservice.ErrAlreadyProcessed)
	settler.EXPECT().SettleWithdrawal(gomock.Any(), 3, ledgerservice.OutcomeApprove, nil).
		Return(&ledgerservice.SettleResult{RequestID: 3, Status: domain.WithdrawalApproved}, nil)

	outcomes := d.ProcessBatch(context.Background(), []int{1, 2, 3})

	assert.Len(t, outcomes, 3)
	assert.True(t, outcomes[0].OK)
	assert.False(t, outcomes[1].OK)
	assert.Contains(t, outcomes[1].Error, "already processed")
	assert.True(t, outcomes[2].OK)
}

func TestEnqueueAllPending_Partitioning(t *testing.T) {
	d, settler, withdrawalRepo, workerPool := NewMock(t)

	ids := make([]int, 250)
	for i := range ids {
		ids[i] = i + 1
	}
	withdrawalRepo.EXPECT().ListPendingIDs(gomock.Any()).Return(ids, nil)

	// Run each submitted batch inline so the settle calls are observable;
	// three batches of at most 100 cover 250 ids.
	workerPool.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, job Job) error {
			return job.Run()
		}).Times(3)
	settler.EXPECT().SettleWithdrawal(gomock.Any(), gomock.Any(), ledgerservice.OutcomeApprove, nil).
		Return(&ledgerservice.SettleResult{Status: domain.WithdrawalApproved}, nil).Times(250)

	queued, err := d.EnqueueAllPending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 250, queued)
	assert.Empty(t, d.inFlight)
}

func TestEnqueueAllPending_SkipsInFlight(t *testing.T) {
	d, _, withdrawalRepo, workerPool := NewMock(t)

	d.inFlight[1] = struct{}{}
	d.inFlight[2] = struct{}{}
	withdrawalRepo.EXPECT().ListPendingIDs(gomock.Any()).Return([]int{1, 2, 3}, nil)
	workerPool.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, job Job) error {
			// hold the batch without running it
			return nil
		})

	queued, err := d.EnqueueAllPending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, queued)
}

func TestEnqueueAllPending_NothingPending(t *testing.T) {
	d, _, withdrawalRepo, _ := NewMock(t)
	withdrawalRepo.EXPECT().ListPendingIDs(gomock.Any()).Return(nil, nil)

	queued, err := d.EnqueueAllPending(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, queued)
}
