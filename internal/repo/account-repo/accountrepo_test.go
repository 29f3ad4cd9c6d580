package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/phoenixdao/phxledger/internal/domain"
)

var accountTestColumns = []string{
	"id", "login", "password_hash", "mined_balance", "referral_pending", "referral_verified",
	"withdrawable_balance", "sessions", "last_mine_at", "kyc_state", "kyc_wallet", "payout_address",
	"has_pending_withdrawal", "referred_by", "is_admin", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func accountRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(accountTestColumns).
		AddRow(1, "miner42", "hash", 17.119, 0.0, 0.0, 17.119, 170, nil,
			domain.KYCNotSubmitted, nil, nil, false, nil, false, now)
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        INSERT INTO accounts (login, password_hash, referral_verified, withdrawable_balance, referred_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + accountColumns

	tests := []struct {
		name      string
		account   *domain.Account
		mockSetup func()
		expectErr bool
	}{
		{
			name:    "Create account successfully",
			account: &domain.Account{Login: "miner42", PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("miner42", "hash", 0.0, 0.0, (*int)(nil)).
					WillReturnRows(accountRow(now))
			},
			expectErr: false,
		},
		{
			name:    "Database error",
			account: &domain.Account{Login: "miner42", PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("miner42", "hash", 0.0, 0.0, (*int)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(ctx, tt.account)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, "miner42", result.Login)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Account found",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).
					WillReturnRows(accountRow(now))
			},
			found: true,
		},
		{
			name: "Account not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(99).
					WillReturnRows(pgxmock.NewRows(accountTestColumns))
			},
			found: false,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(ctx, tt.id)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, 1, result.ID)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_GetByLogin(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE login = $1`

	t.Run("Account found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("miner42").
			WillReturnRows(accountRow(now))

		result, err := repo.GetByLogin(ctx, "miner42")

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "miner42", result.Login)
	})

	t.Run("Account not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("ghost").
			WillReturnRows(pgxmock.NewRows(accountTestColumns))

		result, err := repo.GetByLogin(ctx, "ghost")

		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_ApplyMining(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        UPDATE accounts
        SET mined_balance = mined_balance + $1,
            withdrawable_balance = withdrawable_balance + $1,
            sessions = sessions + 1,
            last_mine_at = $2
        WHERE id = $3`

	t.Run("Reward applied", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(0.1007, now, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.ApplyMining(ctx, 1, 0.1007, now)

		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(0.1007, now, 1).
			WillReturnError(errors.New("database error"))

		err := repo.ApplyMining(ctx, 1, 0.1007, now)

		assert.Error(t, err)
	})
}

func TestRepository_CreditPool(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		pool      domain.BalancePool
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Mined pool",
			pool: domain.PoolMined,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(
					`UPDATE accounts SET mined_balance = mined_balance + $1, withdrawable_balance = withdrawable_balance + $1 WHERE id = $2`)).
					WithArgs(0.0107, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Pending referral pool",
			pool: domain.PoolReferralPending,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(
					`UPDATE accounts SET referral_pending = referral_pending + $1 WHERE id = $2`)).
					WithArgs(0.0107, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:      "Unknown pool",
			pool:      domain.BalancePool("bogus"),
			mockSetup: func() {},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreditPool(ctx, 1, tt.pool, 0.0107)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_PayReferralBonus(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `
        UPDATE accounts
        SET referral_pending = GREATEST(referral_pending - $1, 0),
            referral_verified = referral_verified + $1,
            withdrawable_balance = withdrawable_balance + $1
        WHERE id = $2`

	t.Run("Bonus moved to verified pool", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(10.07, 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.PayReferralBonus(ctx, 7, 10.07)

		assert.NoError(t, err)
	})
}

func TestRepository_WalletSubmitted(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `SELECT EXISTS (SELECT 1 FROM submitted_kyc_wallets WHERE address = $1)`

	t.Run("Address already used", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("GADDR").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		used, err := repo.WalletSubmitted(ctx, "GADDR")

		assert.NoError(t, err)
		assert.True(t, used)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("GADDR").
			WillReturnError(errors.New("database error"))

		_, err := repo.WalletSubmitted(ctx, "GADDR")

		assert.Error(t, err)
	})
}

func TestRepository_CountEligibleVoters(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `SELECT COUNT(*) FROM accounts WHERE kyc_state = 'verified' AND payout_address IS NOT NULL`

	t.Run("Count returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.CountEligibleVoters(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 42, count)
	})
}

func TestRepository_SumWithdrawable(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `SELECT COALESCE(SUM(withdrawable_balance), 0) FROM accounts`

	t.Run("Sum returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(100500.0))

		sum, err := repo.SumWithdrawable(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 100500.0, sum)
	})
}
