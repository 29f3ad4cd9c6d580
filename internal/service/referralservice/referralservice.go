package referralservice

import (
	"context"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"go.uber.org/zap"
)

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	PayReferralBonus(ctx context.Context, referrerID int, amount float64) error
}

type ReferralRepo interface {
	GetEdge(ctx context.Context, referrerID, referredID int) (*domain.ReferralEdge, error)
	SyncEdge(ctx context.Context, edge *domain.ReferralEdge) error
	MarkBonusPaid(ctx context.Context, referrerID, referredID int) error
	ListByReferrer(ctx context.Context, referrerID int) ([]domain.ReferralEdge, error)
}

type Service struct {
	accountRepo  AccountRepo
	referralRepo ReferralRepo
	txManager    pg.TXManager
	cfg          config.Ledger
}

func New(accountRepo AccountRepo, referralRepo ReferralRepo, txManager pg.TXManager, cfg config.Ledger) *Service {
	return &Service{
		accountRepo:  accountRepo,
		referralRepo: referralRepo,
		txManager:    txManager,
		cfg:          cfg,
	}
}

// AccountUpdated re-evaluates the referrer's bonus condition after any change
// to the referred account's kyc state, session count or payout address. The
// edge sync and the bonus payment commit in one transaction, so a crash can
// neither pay twice nor leave the edge ahead of the payment.
func (s *Service) AccountUpdated(ctx context.Context, accountID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil || acc.ReferredBy == nil {
			return nil
		}
		referrerID := *acc.ReferredBy

		edge, err := s.referralRepo.GetEdge(ctx, referrerID, accountID)
		if err != nil {
			return err
		}
		if edge == nil {
			zap.L().Warn("referral edge missing", zap.Int("referrerID", referrerID), zap.Int("referredID", accountID))
			return nil
		}

		kycVerified := acc.KYCState == domain.KYCVerified
		walletAdded := acc.WalletAdded()

		if edge.KYCVerified == kycVerified && edge.WalletAdded == walletAdded && edge.Sessions == acc.Sessions {
			return nil
		}

		edge.KYCVerified = kycVerified
		edge.WalletAdded = walletAdded
		edge.Sessions = acc.Sessions
		if err := s.referralRepo.SyncEdge(ctx, edge); err != nil {
			return err
		}

		if edge.BonusPaid {
			return nil
		}
		if !kycVerified || !walletAdded || acc.Sessions < s.cfg.SessionsRequired {
			return nil
		}

		if err := s.referralRepo.MarkBonusPaid(ctx, referrerID, accountID); err != nil {
			return err
		}
		if err := s.accountRepo.PayReferralBonus(ctx, referrerID, s.cfg.ReferralBonus); err != nil {
			return err
		}
		zap.L().Info("referral bonus paid",
			zap.Int("referrerID", referrerID),
			zap.Int("referredID", accountID),
			zap.Float64("bonus", s.cfg.ReferralBonus),
		)
		return nil
	})
}

// ListReferred returns the referrer's denormalized view of everyone they
// brought in.
func (s *Service) ListReferred(ctx context.Context, referrerID int) ([]domain.ReferralEdge, error) {
	return s.referralRepo.ListByReferrer(ctx, referrerID)
}
