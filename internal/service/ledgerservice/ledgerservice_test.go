package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockWithdrawalRepo) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()
	service := New(accountRepo, withdrawalRepo, txManager, config.DefaultLedger())
	defer ctrl.Finish()
	return service, accountRepo, withdrawalRepo
}

func strPtr(s string) *string { return &s }

func TestCreditMining(t *testing.T) {
	service, accountRepo, _ := NewMock(t)
	now := time.Now()
	recent := now.Add(-23 * time.Hour)
	stale := now.Add(-25 * time.Hour)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "First mine always succeeds",
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				accountRepo.EXPECT().ApplyMining(gomock.Any(), 1, 0.1007, now).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Mined 23 hours ago is rate limited",
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Account{ID: 1, LastMineAt: &recent}, nil)
			},
			expectedError: ErrRateLimited,
		},
		{
			name: "Mined 25 hours ago succeeds",
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Account{ID: 1, LastMineAt: &stale}, nil)
				accountRepo.EXPECT().ApplyMining(gomock.Any(), 1, 0.1007, now).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Unknown account",
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.CreditMining(context.Background(), 1, now)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func eligibleAccount() *domain.Account {
	addr := "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT"
	return &domain.Account{
		ID:                  1,
		KYCState:            domain.KYCVerified,
		Sessions:            200,
		PayoutAddress:       &addr,
		WithdrawableBalance: 40.00,
	}
}

func TestReserveWithdrawal(t *testing.T) {
	service, accountRepo, withdrawalRepo := NewMock(t)

	tests := []struct {
		name          string
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Amount plus fee within balance succeeds",
			amount: 38,
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(eligibleAccount(), nil)
				accountRepo.EXPECT().SetPendingWithdrawal(gomock.Any(), 1, true).Return(nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
						assert.Equal(t, 38.0, w.Amount)
						assert.Equal(t, 0.1, w.Fee)
						assert.InDelta(t, 37.9, w.FinalAmount, 1e-9)
						assert.Equal(t, domain.WithdrawalPending, w.Status)
						w.ID = 7
						return w, nil
					},
				)
			},
			expectedError: nil,
		},
		{
			name:   "Second request while one is pending",
			amount: 38,
			prepareMock: func() {
				acc := eligibleAccount()
				acc.HasPendingWithdrawal = true
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(acc, nil)
			},
			expectedError: ErrAlreadyPending,
		},
		{
			name:   "KYC not verified",
			amount: 38,
			prepareMock: func() {
				acc := eligibleAccount()
				acc.KYCState = domain.KYCPending
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(acc, nil)
			},
			expectedError: ErrNotEligible,
		},
		{
			name:   "Too few sessions",
			amount: 38,
			prepareMock: func() {
				acc := eligibleAccount()
				acc.Sessions = 169
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(acc, nil)
			},
			expectedError: ErrNotEligible,
		},
		{
			name:   "No payout address",
			amount: 38,
			prepareMock: func() {
				acc := eligibleAccount()
				acc.PayoutAddress = nil
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(acc, nil)
			},
			expectedError: ErrNotEligible,
		},
		{
			name:   "Below minimum",
			amount: 37.0,
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(eligibleAccount(), nil)
			},
			expectedError: ErrBelowMinimum,
		},
		{
			name:   "Amount plus fee exceeds balance",
			amount: 39.95,
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(eligibleAccount(), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			request, err := service.ReserveWithdrawal(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, request.ID)
			}
		})
	}
}

func pendingRequest() *domain.WithdrawalRequest {
	return &domain.WithdrawalRequest{
		ID:        7,
		AccountID: 1,
		Amount:    38,
		Fee:       0.1,
		Status:    domain.WithdrawalPending,
	}
}

func TestSettleWithdrawal_Approve(t *testing.T) {
	service, accountRepo, withdrawalRepo := NewMock(t)

	withdrawalRepo.EXPECT().GetByID(gomock.Any(), 7).Return(pendingRequest(), nil)
	accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Account{ID: 1, WithdrawableBalance: 40}, nil)
	accountRepo.EXPECT().DebitWithdrawable(gomock.Any(), 1, 38.0).Return(nil)
	accountRepo.EXPECT().SetPendingWithdrawal(gomock.Any(), 1, false).Return(nil)
	withdrawalRepo.EXPECT().Finalize(gomock.Any(), 7, domain.WithdrawalApproved, gomock.Any(), nil, gomock.Any()).Return(nil)

	result, err := service.SettleWithdrawal(context.Background(), 7, OutcomeApprove, strPtr("tx-hash-1"))
	assert.NoError(t, err)
	assert.Equal(t, domain.WithdrawalApproved, result.Status)
}

func TestSettleWithdrawal_SafetyValve(t *testing.T) {
	service, accountRepo, withdrawalRepo := NewMock(t)

	// Balance shrank between reservation and settlement: approval converts to
	// rejection, no debit happens.
	withdrawalRepo.EXPECT().GetByID(gomock.Any(), 7).Return(pendingRequest(), nil)
	accountRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Account{ID: 1, WithdrawableBalance: 10}, nil)
	accountRepo.EXPECT().SetPendingWithdrawal(gomock.Any(), 1, false).Return(nil)
	withdrawalRepo.EXPECT().Finalize(gomock.Any(), 7, domain.WithdrawalRejected, nil, gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.SettleWithdrawal(context.Background(), 7, OutcomeApprove, nil)
	assert.NoError(t, err)
	assert.Equal(t, domain.WithdrawalRejected, result.Status)
	assert.Equal(t, "insufficient funds at settlement", result.Reason)
}

func TestSettleWithdrawal_Reject(t *testing.T) {
	service, accountRepo, withdrawalRepo := NewMock(t)

	withdrawalRepo.EXPECT().GetByID(gomock.Any(), 7).Return(pendingRequest(), nil)
	accountRepo.EXPECT().SetPendingWithdrawal(gomock.Any(), 1, false).Return(nil)
	withdrawalRepo.EXPECT().Finalize(gomock.Any(), 7, domain.WithdrawalRejected, nil, nil, gomock.Any()).Return(nil)

	result, err := service.SettleWithdrawal(context.Background(), 7, OutcomeReject, nil)
	assert.NoError(t, err)
	assert.Equal(t, domain.WithdrawalRejected, result.Status)
}

func TestSettleWithdrawal_Idempotent(t *testing.T) {
	service, _, withdrawalRepo := NewMock(t)

	// Redelivery of an already-approved request: prior outcome comes back,
	// nothing is mutated.
	processed := pendingRequest()
	processed.Status = domain.WithdrawalApproved
	withdrawalRepo.EXPECT().GetByID(gomock.Any(), 7).Return(processed, nil)

	result, err := service.SettleWithdrawal(context.Background(), 7, OutcomeApprove, nil)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Equal(t, domain.WithdrawalApproved, result.Status)
}

func TestSettleWithdrawal_NotFound(t *testing.T) {
	service, _, withdrawalRepo := NewMock(t)

	withdrawalRepo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

	result, err := service.SettleWithdrawal(context.Background(), 99, OutcomeApprove, nil)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.Nil(t, result)
}

func TestCreditBonus(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Credit verified pool",
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Account{ID: 2}, nil)
				accountRepo.EXPECT().CreditPool(gomock.Any(), 2, domain.PoolReferralVerified, 10.07).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Unknown account",
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name: "Repo error",
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(gomock.Any(), 2).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.CreditBonus(context.Background(), 2, 10.07, domain.PoolReferralVerified)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
