package accountrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"go.uber.org/zap"
)

const accountColumns = `id, login, password_hash, mined_balance, referral_pending, referral_verified,
        withdrawable_balance, sessions, last_mine_at, kyc_state, kyc_wallet, payout_address,
        has_pending_withdrawal, referred_by, is_admin, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanAccount(row pg.RowScanner) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID, &acc.Login, &acc.PasswordHash, &acc.MinedBalance, &acc.ReferralPending,
		&acc.ReferralVerified, &acc.WithdrawableBalance, &acc.Sessions, &acc.LastMineAt,
		&acc.KYCState, &acc.KYCWallet, &acc.PayoutAddress, &acc.HasPendingWithdrawal,
		&acc.ReferredBy, &acc.IsAdmin, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (login, password_hash, referral_verified, withdrawable_balance, referred_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + accountColumns
	row := r.db.QueryRow(ctx, query, acc.Login, acc.PasswordHash, acc.ReferralVerified, acc.WithdrawableBalance, acc.ReferredBy)
	created, err := scanAccount(row)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) GetByLogin(ctx context.Context, login string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE login = $1`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account by login", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) ApplyMining(ctx context.Context, id int, reward float64, now time.Time) error {
	query := `
        UPDATE accounts
        SET mined_balance = mined_balance + $1,
            withdrawable_balance = withdrawable_balance + $1,
            sessions = sessions + 1,
            last_mine_at = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, reward, now, id); err != nil {
		zap.L().Error("failed to apply mining reward", zap.Error(err))
		return err
	}
	return nil
}

// CreditPool increments one named balance pool; the mined and verified
// referral pools also count toward the withdrawable balance.
func (r *Repository) CreditPool(ctx context.Context, id int, pool domain.BalancePool, amount float64) error {
	var query string
	switch pool {
	case domain.PoolMined:
		query = `UPDATE accounts SET mined_balance = mined_balance + $1, withdrawable_balance = withdrawable_balance + $1 WHERE id = $2`
	case domain.PoolReferralVerified:
		query = `UPDATE accounts SET referral_verified = referral_verified + $1, withdrawable_balance = withdrawable_balance + $1 WHERE id = $2`
	case domain.PoolReferralPending:
		query = `UPDATE accounts SET referral_pending = referral_pending + $1 WHERE id = $2`
	default:
		return fmt.Errorf("unknown balance pool: %s", pool)
	}
	if _, err := r.db.Exec(ctx, query, amount, id); err != nil {
		zap.L().Error("failed to credit pool", zap.String("pool", string(pool)), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DebitWithdrawable(ctx context.Context, id int, amount float64) error {
	query := `UPDATE accounts SET withdrawable_balance = withdrawable_balance - $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, amount, id); err != nil {
		zap.L().Error("failed to debit withdrawable balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetPendingWithdrawal(ctx context.Context, id int, pending bool) error {
	query := `UPDATE accounts SET has_pending_withdrawal = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, pending, id); err != nil {
		zap.L().Error("failed to set pending withdrawal flag", zap.Error(err))
		return err
	}
	return nil
}

// PayReferralBonus moves the confirmed bonus from the referrer's pending pool
// into the verified pool and makes it withdrawable.
func (r *Repository) PayReferralBonus(ctx context.Context, referrerID int, amount float64) error {
	query := `
        UPDATE accounts
        SET referral_pending = GREATEST(referral_pending - $1, 0),
            referral_verified = referral_verified + $1,
            withdrawable_balance = withdrawable_balance + $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, amount, referrerID); err != nil {
		zap.L().Error("failed to pay referral bonus", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetPayoutAddress(ctx context.Context, id int, address string) error {
	query := `UPDATE accounts SET payout_address = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, address, id); err != nil {
		zap.L().Error("failed to set payout address", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetKYCState(ctx context.Context, id int, state domain.KYCState, wallet *string) error {
	query := `UPDATE accounts SET kyc_state = $1, kyc_wallet = $2 WHERE id = $3`
	if _, err := r.db.Exec(ctx, query, state, wallet, id); err != nil {
		zap.L().Error("failed to set kyc state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetAdmin(ctx context.Context, id int, isAdmin bool) error {
	query := `UPDATE accounts SET is_admin = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, isAdmin, id); err != nil {
		zap.L().Error("failed to set admin flag", zap.Error(err))
		return err
	}
	return nil
}

// WalletSubmitted reports whether the address was ever used in a KYC
// submission; a submitted address is burned even if the request is rejected.
func (r *Repository) WalletSubmitted(ctx context.Context, address string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM submitted_kyc_wallets WHERE address = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, address).Scan(&exists); err != nil {
		zap.L().Error("failed to check submitted wallet", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) RecordSubmission(ctx context.Context, address string, accountID int) error {
	query := `INSERT INTO submitted_kyc_wallets (address, account_id) VALUES ($1, $2)`
	if _, err := r.db.Exec(ctx, query, address, accountID); err != nil {
		zap.L().Error("failed to record kyc submission", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountEligibleVoters(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM accounts WHERE kyc_state = 'verified' AND payout_address IS NOT NULL`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("failed to count eligible voters", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SumWithdrawable(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(withdrawable_balance), 0) FROM accounts`
	var sum float64
	if err := r.db.QueryRow(ctx, query).Scan(&sum); err != nil {
		zap.L().Error("failed to sum withdrawable balances", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
