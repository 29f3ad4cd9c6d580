package referralservice

import (
	"context"
	"testing"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockReferralRepo) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	referralRepo := NewMockReferralRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()
	service := New(accountRepo, referralRepo, txManager, config.DefaultLedger())
	defer ctrl.Finish()
	return service, accountRepo, referralRepo
}

func referredAccount(sessions int, kyc domain.KYCState, wallet bool) *domain.Account {
	referrer := 1
	acc := &domain.Account{
		ID:         2,
		Sessions:   sessions,
		KYCState:   kyc,
		ReferredBy: &referrer,
	}
	if wallet {
		addr := "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT"
		acc.PayoutAddress = &addr
	}
	return acc
}

func TestAccountUpdated_BonusPaidOnce(t *testing.T) {
	service, accountRepo, referralRepo := NewMock(t)

	// All three conditions newly hold: edge sync, flag flip and payment happen
	// in one pass.
	accountRepo.EXPECT().GetByID(gomock.Any(), 2).Return(referredAccount(170, domain.KYCVerified, true), nil)
	referralRepo.EXPECT().GetEdge(gomock.Any(), 1, 2).Return(&domain.ReferralEdge{
		ReferrerID: 1, ReferredID: 2, Sessions: 169, KYCVerified: true, WalletAdded: true,
	}, nil)
	referralRepo.EXPECT().SyncEdge(gomock.Any(), gomock.Any()).Return(nil)
	referralRepo.EXPECT().MarkBonusPaid(gomock.Any(), 1, 2).Return(nil)
	accountRepo.EXPECT().PayReferralBonus(gomock.Any(), 1, 10.07).Return(nil)

	assert.NoError(t, service.AccountUpdated(context.Background(), 2))
}

func TestAccountUpdated_AlreadyPaid(t *testing.T) {
	service, accountRepo, referralRepo := NewMock(t)

	// BonusPaid is terminal: even a later change only syncs the edge.
	accountRepo.EXPECT().GetByID(gomock.Any(), 2).Return(referredAccount(171, domain.KYCVerified, true), nil)
	referralRepo.EXPECT().GetEdge(gomock.Any(), 1, 2).Return(&domain.ReferralEdge{
		ReferrerID: 1, ReferredID: 2, Sessions: 170, KYCVerified: true, WalletAdded: true, BonusPaid: true,
	}, nil)
	referralRepo.EXPECT().SyncEdge(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, service.AccountUpdated(context.Background(), 2))
}

func TestAccountUpdated_ConditionsNotMet(t *testing.T) {
	service, accountRepo, referralRepo := NewMock(t)

	accountRepo.EXPECT().GetByID(gomock.Any(), 2).Return(referredAccount(170, domain.KYCPending, true), nil)
	referralRepo.EXPECT().GetEdge(gomock.Any(), 1, 2).Return(&domain.ReferralEdge{
		ReferrerID: 1, ReferredID: 2, Sessions: 169, WalletAdded: true,
	}, nil)
	referralRepo.EXPECT().SyncEdge(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, service.AccountUpdated(context.Background(), 2))
}

func TestAccountUpdated_NoChange(t *testing.T) {
	service, accountRepo, referralRepo := NewMock(t)

	// Flags identical to the mirrored edge: nothing to do.
	accountRepo.EXPECT().GetByID(gomock.Any(), 2).Return(referredAccount(150, domain.KYCVerified, true), nil)
	referralRepo.EXPECT().GetEdge(gomock.Any(), 1, 2).Return(&domain.ReferralEdge{
		ReferrerID: 1, ReferredID: 2, Sessions: 150, KYCVerified: true, WalletAdded: true,
	}, nil)

	assert.NoError(t, service.AccountUpdated(context.Background(), 2))
}

func TestAccountUpdated_NoReferrer(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	accountRepo.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Account{ID: 2}, nil)

	assert.NoError(t, service.AccountUpdated(context.Background(), 2))
}
