package accountservice

import (
	"context"
	"errors"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"github.com/phoenixdao/phxledger/pkg/validate"
	"go.uber.org/zap"
)

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	SetPayoutAddress(ctx context.Context, id int, address string) error
	SetKYCState(ctx context.Context, id int, state domain.KYCState, wallet *string) error
	WalletSubmitted(ctx context.Context, address string) (bool, error)
	RecordSubmission(ctx context.Context, address string, accountID int) error
}

// Hook is notified after a transaction commits that changed an account's kyc
// state or payout address.
type Hook interface {
	AccountUpdated(ctx context.Context, accountID int) error
}

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAddress      = errors.New("invalid payout address")
	ErrWalletAlreadySet    = errors.New("payout address already set")
	ErrKYCAlreadySubmitted = errors.New("kyc already submitted")
	ErrWalletInUse         = errors.New("wallet already used in a kyc submission")
	ErrKYCNotPending       = errors.New("no pending kyc submission")
)

type Service struct {
	accountRepo AccountRepo
	txManager   pg.TXManager
	hook        Hook
}

func New(accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{accountRepo: accountRepo, txManager: txManager}
}

// SetHook wires the post-commit account-update hook; optional, set after
// construction to avoid a dependency cycle with the referral service.
func (s *Service) SetHook(hook Hook) {
	s.hook = hook
}

func (s *Service) notifyUpdated(ctx context.Context, accountID int) {
	if s.hook == nil {
		return
	}
	if err := s.hook.AccountUpdated(ctx, accountID); err != nil {
		zap.L().Warn("account update hook failed", zap.Int("accountID", accountID), zap.Error(err))
	}
}

func (s *Service) GetAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

// SaveWallet registers the account's payout address. The address is
// write-once: once set it can never be changed or removed.
func (s *Service) SaveWallet(ctx context.Context, accountID int, address string) error {
	if !validate.IsPayoutAddress(address) {
		return ErrInvalidAddress
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		if acc.WalletAdded() {
			return ErrWalletAlreadySet
		}
		return s.accountRepo.SetPayoutAddress(ctx, accountID, address)
	})
	if err != nil {
		return err
	}

	s.notifyUpdated(ctx, accountID)
	return nil
}

// SubmitKYC records a verification request against a wallet address. Each
// wallet can back at most one submission ever, across all accounts, so a
// rejected document cannot be recycled under a different login.
func (s *Service) SubmitKYC(ctx context.Context, accountID int, wallet string) error {
	if !validate.IsPayoutAddress(wallet) {
		return ErrInvalidAddress
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		if acc.KYCState == domain.KYCPending || acc.KYCState == domain.KYCVerified {
			return ErrKYCAlreadySubmitted
		}
		used, err := s.accountRepo.WalletSubmitted(ctx, wallet)
		if err != nil {
			return err
		}
		if used {
			return ErrWalletInUse
		}
		if err := s.accountRepo.RecordSubmission(ctx, wallet, accountID); err != nil {
			return err
		}
		return s.accountRepo.SetKYCState(ctx, accountID, domain.KYCPending, &wallet)
	})
}

// ManageKYC resolves a pending submission. Approval keeps the submitted
// wallet on the account; rejection clears it so the state is unambiguous.
func (s *Service) ManageKYC(ctx context.Context, accountID int, approve bool) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		if acc.KYCState != domain.KYCPending {
			return ErrKYCNotPending
		}
		if approve {
			return s.accountRepo.SetKYCState(ctx, accountID, domain.KYCVerified, acc.KYCWallet)
		}
		return s.accountRepo.SetKYCState(ctx, accountID, domain.KYCFailed, nil)
	})
	if err != nil {
		return err
	}

	if approve {
		s.notifyUpdated(ctx, accountID)
	}
	return nil
}
