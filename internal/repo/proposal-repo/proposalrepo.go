package proposalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"go.uber.org/zap"
)

const proposalColumns = `id, title, description, proposer_id, kind, status,
        round1_for, round1_against, round2_for, round2_against,
        amount, recipient, expires_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanProposal(row pg.RowScanner) (*domain.Proposal, error) {
	var p domain.Proposal
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ProposerID, &p.Kind, &p.Status,
		&p.Round1For, &p.Round1Against, &p.Round2For, &p.Round2Against,
		&p.Amount, &p.Recipient, &p.ExpiresAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	query := `
        INSERT INTO proposals (title, description, proposer_id, kind, status, amount, recipient, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, p.Title, p.Description, p.ProposerID, p.Kind, p.Status, p.Amount, p.Recipient, p.ExpiresAt).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create proposal", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1`
	p, err := scanProposal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get proposal", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list proposals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			zap.L().Error("failed to scan proposal row", zap.Error(err))
			return nil, err
		}
		proposals = append(proposals, *p)
	}

	return proposals, nil
}

func (r *Repository) HasVoted(ctx context.Context, proposalID, round, voterID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM proposal_votes WHERE proposal_id = $1 AND round = $2 AND voter_id = $3)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, proposalID, round, voterID).Scan(&exists); err != nil {
		zap.L().Error("failed to check vote existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) InsertVote(ctx context.Context, v *domain.ProposalVote) error {
	query := `
        INSERT INTO proposal_votes (proposal_id, round, voter_id, choice, power)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err := r.db.Exec(ctx, query, v.ProposalID, v.Round, v.VoterID, v.Choice, v.Power); err != nil {
		zap.L().Error("failed to insert vote", zap.Error(err))
		return err
	}
	return nil
}

// SetTally writes the recomputed sums for one round together with the status
// the tallies imply.
func (r *Repository) SetTally(ctx context.Context, id, round int, forSum, againstSum float64, status domain.ProposalStatus) error {
	var query string
	if round == 1 {
		query = `UPDATE proposals SET round1_for = $1, round1_against = $2, status = $3 WHERE id = $4`
	} else {
		query = `UPDATE proposals SET round2_for = $1, round2_against = $2, status = $3 WHERE id = $4`
	}
	if _, err := r.db.Exec(ctx, query, forSum, againstSum, status, id); err != nil {
		zap.L().Error("failed to set tally", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetStatus(ctx context.Context, id int, status domain.ProposalStatus) error {
	query := `UPDATE proposals SET status = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("failed to set proposal status", zap.Error(err))
		return err
	}
	return nil
}

// ListExpiredRound1 returns treasury proposals still in round 1 past their
// deadline, for the scheduled closure sweep.
func (r *Repository) ListExpiredRound1(ctx context.Context, now time.Time) ([]domain.Proposal, error) {
	query := `
        SELECT ` + proposalColumns + `
        FROM proposals
        WHERE kind = 'treasury' AND status = 'active_round1' AND expires_at IS NOT NULL AND expires_at < $1
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to list expired proposals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			zap.L().Error("failed to scan expired proposal row", zap.Error(err))
			return nil, err
		}
		proposals = append(proposals, *p)
	}

	return proposals, nil
}
