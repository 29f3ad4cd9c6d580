package leaderboardrepo

import (
	"context"
	"encoding/json"
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

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	query := `SELECT entries, total_power, updated_at FROM leaderboard_cache WHERE id = $1`

	entries := []domain.LeaderboardEntry{
		{Address: "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", Amount: 120.5},
		{Address: "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ", Amount: 90.0},
	}
	raw, err := json.Marshal(entries)
	assert.NoError(t, err)

	t.Run("Snapshot found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(cacheID).
			WillReturnRows(pgxmock.NewRows([]string{"entries", "total_power", "updated_at"}).
				AddRow(raw, 210.5, now))

		snapshot, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, entries, snapshot.Entries)
		assert.Equal(t, 210.5, snapshot.TotalPower)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Snapshot missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(cacheID).
			WillReturnRows(pgxmock.NewRows([]string{"entries", "total_power", "updated_at"}))

		snapshot, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, snapshot)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Corrupt entries payload", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(cacheID).
			WillReturnRows(pgxmock.NewRows([]string{"entries", "total_power", "updated_at"}).
				AddRow([]byte("{not json"), 210.5, now))

		snapshot, err := repo.Get(ctx)
		assert.Error(t, err)
		assert.Nil(t, snapshot)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(cacheID).
			WillReturnError(errors.New("database error"))

		snapshot, err := repo.Get(ctx)
		assert.Error(t, err)
		assert.Nil(t, snapshot)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `
        INSERT INTO leaderboard_cache (id, entries, total_power, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (id) DO UPDATE SET entries = $2, total_power = $3, updated_at = now()`

	snapshot := &domain.LeaderboardSnapshot{
		Entries: []domain.LeaderboardEntry{
			{Address: "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", Amount: 120.5},
		},
		TotalPower: 120.5,
	}
	raw, err := json.Marshal(snapshot.Entries)
	assert.NoError(t, err)

	t.Run("Save snapshot successfully", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(cacheID, raw, 120.5).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.Save(ctx, snapshot))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(cacheID, raw, 120.5).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Save(ctx, snapshot))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_TopContributions(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `SELECT address, total_amount FROM contributions ORDER BY total_amount DESC, address LIMIT $1`

	t.Run("Top contributors returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(100).
			WillReturnRows(pgxmock.NewRows([]string{"address", "total_amount"}).
				AddRow("GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", 120.5).
				AddRow("GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ", 90.0))

		entries, err := repo.TopContributions(ctx, 100)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, 120.5, entries[0].Amount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No contributions", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(100).
			WillReturnRows(pgxmock.NewRows([]string{"address", "total_amount"}))

		entries, err := repo.TopContributions(ctx, 100)
		assert.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(100).
			WillReturnError(errors.New("database error"))

		entries, err := repo.TopContributions(ctx, 100)
		assert.Error(t, err)
		assert.Nil(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_AddContribution(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `
        INSERT INTO contributions (address, total_amount, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (address) DO UPDATE
        SET total_amount = contributions.total_amount + $2, updated_at = now()`

	t.Run("Add contribution successfully", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs("GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", 50.0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.AddContribution(ctx, "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", 50.0)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs("GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", 50.0).
			WillReturnError(errors.New("database error"))

		err := repo.AddContribution(ctx, "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT", 50.0)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Cursors(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	getQuery := `SELECT cursor FROM system_cursors WHERE name = $1`
	saveQuery := `
        INSERT INTO system_cursors (name, cursor)
        VALUES ($1, $2)
        ON CONFLICT (name) DO UPDATE SET cursor = $2`

	t.Run("Cursor found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
			WithArgs("contributions").
			WillReturnRows(pgxmock.NewRows([]string{"cursor"}).AddRow("173156209135745025-1"))

		cursor, err := repo.GetCursor(ctx, "contributions")
		assert.NoError(t, err)
		assert.Equal(t, "173156209135745025-1", cursor)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cursor missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
			WithArgs("contributions").
			WillReturnRows(pgxmock.NewRows([]string{"cursor"}))

		cursor, err := repo.GetCursor(ctx, "contributions")
		assert.NoError(t, err)
		assert.Empty(t, cursor)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Save cursor successfully", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(saveQuery)).
			WithArgs("contributions", "173156209135745025-1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.SaveCursor(ctx, "contributions", "173156209135745025-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Save cursor error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(saveQuery)).
			WithArgs("contributions", "173156209135745025-1").
			WillReturnError(errors.New("database error"))

		err := repo.SaveCursor(ctx, "contributions", "173156209135745025-1")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
