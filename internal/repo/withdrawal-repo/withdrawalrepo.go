package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"go.uber.org/zap"
)

const withdrawalColumns = `id, account_id, amount, fee, final_amount, destination_address,
        status, external_ref, rejection_reason, requested_at, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanWithdrawal(row pg.RowScanner) (*domain.WithdrawalRequest, error) {
	var w domain.WithdrawalRequest
	err := row.Scan(
		&w.ID, &w.AccountID, &w.Amount, &w.Fee, &w.FinalAmount, &w.DestinationAddress,
		&w.Status, &w.ExternalRef, &w.RejectionReason, &w.RequestedAt, &w.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (account_id, amount, fee, final_amount, destination_address, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, requested_at
    `
	err := r.db.QueryRow(ctx, query, w.AccountID, w.Amount, w.Fee, w.FinalAmount, w.DestinationAddress, w.Status).
		Scan(&w.ID, &w.RequestedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`
	w, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get withdrawal request", zap.Error(err))
		return nil, err
	}
	return w, nil
}

// Finalize records the terminal state of a request. The status guard keeps a
// redelivered settlement from overwriting an already-terminal row.
func (r *Repository) Finalize(ctx context.Context, id int, status domain.WithdrawalStatus, externalRef, reason *string, processedAt time.Time) error {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, external_ref = $2, rejection_reason = $3, processed_at = $4
        WHERE id = $5 AND status = 'pending'
    `
	if _, err := r.db.Exec(ctx, query, status, externalRef, reason, processedAt, id); err != nil {
		zap.L().Error("failed to finalize withdrawal request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPendingIDs(ctx context.Context) ([]int, error) {
	query := `SELECT id FROM withdrawal_requests WHERE status = 'pending' ORDER BY requested_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list pending withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan pending withdrawal id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE account_id = $1 ORDER BY requested_at DESC`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}

	return withdrawals, nil
}

// SumApprovedFinal is the circulating supply: everything actually paid out.
func (r *Repository) SumApprovedFinal(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(final_amount), 0) FROM withdrawal_requests WHERE status IN ('approved', 'completed')`
	var sum float64
	if err := r.db.QueryRow(ctx, query).Scan(&sum); err != nil {
		zap.L().Error("failed to sum approved withdrawals", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
