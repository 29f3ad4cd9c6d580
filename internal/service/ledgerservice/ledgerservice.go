package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"go.uber.org/zap"
)

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	ApplyMining(ctx context.Context, id int, reward float64, now time.Time) error
	CreditPool(ctx context.Context, id int, pool domain.BalancePool, amount float64) error
	DebitWithdrawable(ctx context.Context, id int, amount float64) error
	SetPendingWithdrawal(ctx context.Context, id int, pending bool) error
	SumWithdrawable(ctx context.Context) (float64, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	Finalize(ctx context.Context, id int, status domain.WithdrawalStatus, externalRef, reason *string, processedAt time.Time) error
	ListByAccount(ctx context.Context, accountID int) ([]domain.WithdrawalRequest, error)
	SumApprovedFinal(ctx context.Context) (float64, error)
}

// Hook is notified after a transaction commits that changed an account's kyc
// state, session count or payout address.
type Hook interface {
	AccountUpdated(ctx context.Context, accountID int) error
}

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrRateLimited       = errors.New("can only mine once every 24 hours")
	ErrAlreadyPending    = errors.New("a withdrawal request is already pending")
	ErrNotEligible       = errors.New("account is not eligible for withdrawal")
	ErrBelowMinimum      = errors.New("amount is below the withdrawal minimum")
	ErrInsufficientFunds = errors.New("insufficient balance for amount and fee")
	ErrRequestNotFound   = errors.New("withdrawal request not found")
	ErrAlreadyProcessed  = errors.New("withdrawal request already processed")
)

type SettleOutcome string

const (
	OutcomeApprove SettleOutcome = "approve"
	OutcomeReject  SettleOutcome = "reject"
)

// insufficientAtSettlement is the reason recorded when approval is converted
// to a rejection by the settlement safety valve.
const insufficientAtSettlement = "insufficient funds at settlement"

const batchApprovedRef = "batch_approved"

type SettleResult struct {
	RequestID int
	Status    domain.WithdrawalStatus
	Reason    string
}

type Service struct {
	accountRepo    AccountRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
	cfg            config.Ledger
	hook           Hook
}

func New(accountRepo AccountRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager, cfg config.Ledger) *Service {
	return &Service{
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		cfg:            cfg,
	}
}

// SetHook wires the post-commit account-update hook; it is optional and set
// after construction to avoid a dependency cycle with the referral service.
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

// CreditMining pays out one mining session. The cooldown is checked against
// state re-read inside the transaction, so two concurrent calls cannot both
// pass it.
func (s *Service) CreditMining(ctx context.Context, accountID int, now time.Time) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		if acc.LastMineAt != nil && now.Sub(*acc.LastMineAt) < s.cfg.MiningCooldown {
			return ErrRateLimited
		}
		return s.accountRepo.ApplyMining(ctx, accountID, s.cfg.MiningReward, now)
	})
	if err != nil {
		return err
	}

	s.notifyUpdated(ctx, accountID)
	return nil
}

// ReserveWithdrawal locks the account for a single in-flight request. The
// balance is not debited here; that happens at settlement, so the displayed
// balance stays accurate while the request is queued.
func (s *Service) ReserveWithdrawal(ctx context.Context, accountID int, amount float64) (*domain.WithdrawalRequest, error) {
	var request *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		if acc.HasPendingWithdrawal {
			return ErrAlreadyPending
		}
		if acc.KYCState != domain.KYCVerified || acc.Sessions < s.cfg.SessionsRequired || !acc.WalletAdded() {
			return ErrNotEligible
		}
		if amount < s.cfg.MinWithdrawal {
			return ErrBelowMinimum
		}
		if amount+s.cfg.WithdrawalFee > acc.WithdrawableBalance {
			return ErrInsufficientFunds
		}

		if err := s.accountRepo.SetPendingWithdrawal(ctx, accountID, true); err != nil {
			return err
		}
		request, err = s.withdrawalRepo.Create(ctx, &domain.WithdrawalRequest{
			AccountID:          accountID,
			Amount:             amount,
			Fee:                s.cfg.WithdrawalFee,
			FinalAmount:        amount - s.cfg.WithdrawalFee,
			DestinationAddress: *acc.PayoutAddress,
			Status:             domain.WithdrawalPending,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// SettleWithdrawal finalizes one request exactly once. Redelivery of an
// already-terminal request returns the recorded outcome with
// ErrAlreadyProcessed and mutates nothing. An approval that no longer fits the
// balance is converted to a rejection instead of failing: the request was
// accepted on a balance that has since shrunk, and unlocking the account is
// the safe outcome.
func (s *Service) SettleWithdrawal(ctx context.Context, requestID int, outcome SettleOutcome, externalRef *string) (*SettleResult, error) {
	var result *SettleResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.withdrawalRepo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		if req.Status != domain.WithdrawalPending {
			reason := ""
			if req.RejectionReason != nil {
				reason = *req.RejectionReason
			}
			result = &SettleResult{RequestID: requestID, Status: req.Status, Reason: reason}
			return ErrAlreadyProcessed
		}

		now := time.Now()
		if outcome == OutcomeReject {
			if err := s.accountRepo.SetPendingWithdrawal(ctx, req.AccountID, false); err != nil {
				return err
			}
			if err := s.withdrawalRepo.Finalize(ctx, requestID, domain.WithdrawalRejected, externalRef, nil, now); err != nil {
				return err
			}
			result = &SettleResult{RequestID: requestID, Status: domain.WithdrawalRejected}
			return nil
		}

		acc, err := s.accountRepo.GetByID(ctx, req.AccountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}

		if acc.WithdrawableBalance < req.Amount {
			reason := insufficientAtSettlement
			if err := s.accountRepo.SetPendingWithdrawal(ctx, req.AccountID, false); err != nil {
				return err
			}
			if err := s.withdrawalRepo.Finalize(ctx, requestID, domain.WithdrawalRejected, nil, &reason, now); err != nil {
				return err
			}
			result = &SettleResult{RequestID: requestID, Status: domain.WithdrawalRejected, Reason: reason}
			return nil
		}

		if err := s.accountRepo.DebitWithdrawable(ctx, req.AccountID, req.Amount); err != nil {
			return err
		}
		if err := s.accountRepo.SetPendingWithdrawal(ctx, req.AccountID, false); err != nil {
			return err
		}
		ref := batchApprovedRef
		if externalRef != nil && *externalRef != "" {
			ref = *externalRef
		}
		if err := s.withdrawalRepo.Finalize(ctx, requestID, domain.WithdrawalApproved, &ref, nil, now); err != nil {
			return err
		}
		result = &SettleResult{RequestID: requestID, Status: domain.WithdrawalApproved}
		return nil
	})
	if err != nil && !errors.Is(err, ErrAlreadyProcessed) {
		return nil, err
	}
	return result, err
}

// CreditBonus increments a named balance pool; used by the referral, voting
// and proposal reward flows. Joins the caller's transaction when one is open.
func (s *Service) CreditBonus(ctx context.Context, accountID int, amount float64, pool domain.BalancePool) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		return s.accountRepo.CreditPool(ctx, accountID, pool, amount)
	})
}

func (s *Service) GetBalance(ctx context.Context, accountID int) (*domain.Account, error) {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, accountID int) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.withdrawalRepo.ListByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// CirculatingSupply is the sum of everything paid out through approved
// withdrawals.
func (s *Service) CirculatingSupply(ctx context.Context) (float64, error) {
	return s.withdrawalRepo.SumApprovedFinal(ctx)
}

// TotalSupply is the sum of all withdrawable balances still held inside the
// ledger.
func (s *Service) TotalSupply(ctx context.Context) (float64, error) {
	return s.accountRepo.SumWithdrawable(ctx)
}
