package withdrawalrepo

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

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		request   *domain.WithdrawalRequest
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create request successfully",
			request: &domain.WithdrawalRequest{
				AccountID:          1,
				Amount:             38.0,
				Fee:                0.1,
				FinalAmount:        37.9,
				DestinationAddress: "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT",
				Status:             domain.WithdrawalPending,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO withdrawal_requests (account_id, amount, fee, final_amount, destination_address, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, requested_at`)).
					WithArgs(1, 38.0, 0.1, 37.9, "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", domain.WithdrawalPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "requested_at"}).AddRow(14, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			request: &domain.WithdrawalRequest{
				AccountID:          1,
				Amount:             38.0,
				Fee:                0.1,
				FinalAmount:        37.9,
				DestinationAddress: "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT",
				Status:             domain.WithdrawalPending,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO withdrawal_requests (account_id, amount, fee, final_amount, destination_address, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, requested_at`)).
					WithArgs(1, 38.0, 0.1, 37.9, "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", domain.WithdrawalPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(ctx, tt.request)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 14, result.ID)
				assert.Equal(t, now, result.RequestedAt)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	columns := []string{
		"id", "account_id", "amount", "fee", "final_amount", "destination_address",
		"status", "external_ref", "rejection_reason", "requested_at", "processed_at",
	}
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.WithdrawalRequest
	}{
		{
			name: "Request found",
			id:   14,
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(14, 1, 38.0, 0.1, 37.9, "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT",
						domain.WithdrawalPending, nil, nil, now, nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(14).WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.WithdrawalRequest{
				ID:                 14,
				AccountID:          1,
				Amount:             38.0,
				Fee:                0.1,
				FinalAmount:        37.9,
				DestinationAddress: "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT",
				Status:             domain.WithdrawalPending,
				RequestedAt:        now,
			},
		},
		{
			name: "Request not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(99).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   14,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(14).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(ctx, tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Finalize(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	ref := "tx_9f2c"

	query := `
        UPDATE withdrawal_requests
        SET status = $1, external_ref = $2, rejection_reason = $3, processed_at = $4
        WHERE id = $5 AND status = 'pending'`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Finalize successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.WithdrawalApproved, &ref, (*string)(nil), now, 14).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.WithdrawalApproved, &ref, (*string)(nil), now, 14).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Finalize(ctx, 14, domain.WithdrawalApproved, &ref, nil, now)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ListPendingIDs(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `SELECT id FROM withdrawal_requests WHERE status = 'pending' ORDER BY requested_at`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []int
	}{
		{
			name: "Pending requests found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(3).AddRow(7).AddRow(14)
				mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)
			},
			expectErr: false,
			result:    []int{3, 7, 14},
		},
		{
			name: "No pending requests",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListPendingIDs(ctx)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_SumApprovedFinal(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `SELECT COALESCE(SUM(final_amount), 0) FROM withdrawal_requests WHERE status IN ('approved', 'completed')`

	t.Run("Sum returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(75.8))

		sum, err := repo.SumApprovedFinal(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 75.8, sum)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnError(errors.New("database error"))

		_, err := repo.SumApprovedFinal(ctx)

		assert.Error(t, err)
	})
}
