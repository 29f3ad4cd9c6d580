package referralrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateEdge(ctx context.Context, edge *domain.ReferralEdge) error {
	query := `
        INSERT INTO referral_edges (referrer_id, referred_id, login)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, edge.ReferrerID, edge.ReferredID, edge.Login); err != nil {
		zap.L().Error("failed to create referral edge", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetEdge(ctx context.Context, referrerID, referredID int) (*domain.ReferralEdge, error) {
	query := `
        SELECT referrer_id, referred_id, login, kyc_verified, wallet_added, sessions, bonus_paid, joined_at
        FROM referral_edges
        WHERE referrer_id = $1 AND referred_id = $2
    `
	var edge domain.ReferralEdge
	err := r.db.QueryRow(ctx, query, referrerID, referredID).Scan(
		&edge.ReferrerID, &edge.ReferredID, &edge.Login, &edge.KYCVerified,
		&edge.WalletAdded, &edge.Sessions, &edge.BonusPaid, &edge.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get referral edge", zap.Error(err))
		return nil, err
	}
	return &edge, nil
}

// SyncEdge refreshes the mirrored progress flags; bonus_paid is left alone.
func (r *Repository) SyncEdge(ctx context.Context, edge *domain.ReferralEdge) error {
	query := `
        UPDATE referral_edges
        SET kyc_verified = $1, wallet_added = $2, sessions = $3
        WHERE referrer_id = $4 AND referred_id = $5
    `
	if _, err := r.db.Exec(ctx, query, edge.KYCVerified, edge.WalletAdded, edge.Sessions, edge.ReferrerID, edge.ReferredID); err != nil {
		zap.L().Error("failed to sync referral edge", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkBonusPaid(ctx context.Context, referrerID, referredID int) error {
	query := `
        UPDATE referral_edges
        SET bonus_paid = TRUE
        WHERE referrer_id = $1 AND referred_id = $2 AND bonus_paid = FALSE
    `
	if _, err := r.db.Exec(ctx, query, referrerID, referredID); err != nil {
		zap.L().Error("failed to mark bonus paid", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByReferrer(ctx context.Context, referrerID int) ([]domain.ReferralEdge, error) {
	query := `
        SELECT referrer_id, referred_id, login, kyc_verified, wallet_added, sessions, bonus_paid, joined_at
        FROM referral_edges
        WHERE referrer_id = $1
        ORDER BY joined_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("failed to list referral edges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var edges []domain.ReferralEdge
	for rows.Next() {
		var edge domain.ReferralEdge
		if err := rows.Scan(
			&edge.ReferrerID, &edge.ReferredID, &edge.Login, &edge.KYCVerified,
			&edge.WalletAdded, &edge.Sessions, &edge.BonusPaid, &edge.JoinedAt,
		); err != nil {
			zap.L().Error("failed to scan referral edge row", zap.Error(err))
			return nil, err
		}
		edges = append(edges, edge)
	}

	return edges, nil
}
