package leaderboardrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"go.uber.org/zap"
)

// The cache is a single row; refresh replaces it wholesale.
const cacheID = 1

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context) (*domain.LeaderboardSnapshot, error) {
	query := `SELECT entries, total_power, updated_at FROM leaderboard_cache WHERE id = $1`
	var (
		raw      []byte
		snapshot domain.LeaderboardSnapshot
	)
	err := r.db.QueryRow(ctx, query, cacheID).Scan(&raw, &snapshot.TotalPower, &snapshot.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get leaderboard cache", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(raw, &snapshot.Entries); err != nil {
		zap.L().Error("failed to decode leaderboard entries", zap.Error(err))
		return nil, err
	}
	return &snapshot, nil
}

func (r *Repository) Save(ctx context.Context, snapshot *domain.LeaderboardSnapshot) error {
	raw, err := json.Marshal(snapshot.Entries)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO leaderboard_cache (id, entries, total_power, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (id) DO UPDATE SET entries = $2, total_power = $3, updated_at = now()
    `
	if _, err := r.db.Exec(ctx, query, cacheID, raw, snapshot.TotalPower); err != nil {
		zap.L().Error("failed to save leaderboard cache", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) TopContributions(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	query := `SELECT address, total_amount FROM contributions ORDER BY total_amount DESC, address LIMIT $1`
	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		zap.L().Error("failed to list top contributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Address, &e.Amount); err != nil {
			zap.L().Error("failed to scan contribution row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *Repository) AddContribution(ctx context.Context, address string, amount float64) error {
	query := `
        INSERT INTO contributions (address, total_amount, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (address) DO UPDATE
        SET total_amount = contributions.total_amount + $2, updated_at = now()
    `
	if _, err := r.db.Exec(ctx, query, address, amount); err != nil {
		zap.L().Error("failed to add contribution", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetCursor(ctx context.Context, name string) (string, error) {
	query := `SELECT cursor FROM system_cursors WHERE name = $1`
	var cursor string
	err := r.db.QueryRow(ctx, query, name).Scan(&cursor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		zap.L().Error("failed to get cursor", zap.Error(err))
		return "", err
	}
	return cursor, nil
}

func (r *Repository) SaveCursor(ctx context.Context, name, cursor string) error {
	query := `
        INSERT INTO system_cursors (name, cursor)
        VALUES ($1, $2)
        ON CONFLICT (name) DO UPDATE SET cursor = $2
    `
	if _, err := r.db.Exec(ctx, query, name, cursor); err != nil {
		zap.L().Error("failed to save cursor", zap.Error(err))
		return err
	}
	return nil
}
