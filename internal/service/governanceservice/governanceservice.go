package governanceservice

import (
	"context"
	"errors"
	"time"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/oracle"
	"github.com/phoenixdao/phxledger/internal/pg"
	"github.com/phoenixdao/phxledger/pkg/validate"
	"go.uber.org/zap"
)

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	CountEligibleVoters(ctx context.Context) (int, error)
	SumWithdrawable(ctx context.Context) (float64, error)
}

type ProposalRepo interface {
	Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error)
	GetByID(ctx context.Context, id int) (*domain.Proposal, error)
	List(ctx context.Context) ([]domain.Proposal, error)
	HasVoted(ctx context.Context, proposalID, round, voterID int) (bool, error)
	InsertVote(ctx context.Context, v *domain.ProposalVote) error
	SetTally(ctx context.Context, id, round int, forSum, againstSum float64, status domain.ProposalStatus) error
	SetStatus(ctx context.Context, id int, status domain.ProposalStatus) error
	ListExpiredRound1(ctx context.Context, now time.Time) ([]domain.Proposal, error)
}

type LeaderboardRepo interface {
	Get(ctx context.Context) (*domain.LeaderboardSnapshot, error)
	Save(ctx context.Context, snapshot *domain.LeaderboardSnapshot) error
	TopContributions(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
	AddContribution(ctx context.Context, address string, amount float64) error
	GetCursor(ctx context.Context, name string) (string, error)
	SaveCursor(ctx context.Context, name, cursor string) error
}

// Rewarder credits participation incentives through the ledger. The credit
// joins the caller's transaction when one is open.
type Rewarder interface {
	CreditBonus(ctx context.Context, accountID int, amount float64, pool domain.BalancePool) error
}

// Oracle reads external-network balances and payment pages.
type Oracle interface {
	NativeBalance(address string) (float64, error)
	Payments(account, cursor string, limit int) ([]oracle.Payment, string, error)
}

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrNotEligible      = errors.New("account is not eligible")
	ErrWrongPhase       = errors.New("proposal is not accepting votes for this round")
	ErrAlreadyVoted     = errors.New("already voted in this round")
	ErrInvalidProposal  = errors.New("invalid proposal arguments")
)

const (
	contributionCursor = "contributions"
	paymentsPageLimit  = 200
)

// Eligibility reports which voting rounds an account may participate in.
type Eligibility struct {
	Round1 bool `json:"round1"`
	Round2 bool `json:"round2"`
}

type Service struct {
	accountRepo     AccountRepo
	proposalRepo    ProposalRepo
	leaderboardRepo LeaderboardRepo
	rewarder        Rewarder
	oracle          Oracle
	txManager       pg.TXManager
	cfg             config.Ledger
	contribAccount  string
}

func New(accountRepo AccountRepo, proposalRepo ProposalRepo, leaderboardRepo LeaderboardRepo, rewarder Rewarder, oracleClient Oracle, txManager pg.TXManager, cfg config.Ledger, contribAccount string) *Service {
	return &Service{
		accountRepo:     accountRepo,
		proposalRepo:    proposalRepo,
		leaderboardRepo: leaderboardRepo,
		rewarder:        rewarder,
		oracle:          oracleClient,
		txManager:       txManager,
		cfg:             cfg,
		contribAccount:  contribAccount,
	}
}

// CheckEligibility evaluates both rounds' gates for an account. Round 1
// additionally requires membership in the cached top contributor list.
func (s *Service) CheckEligibility(ctx context.Context, accountID int) (*Eligibility, error) {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}

	elig := &Eligibility{}
	if acc.KYCState != domain.KYCVerified || !acc.WalletAdded() {
		return elig, nil
	}
	elig.Round2 = true

	snapshot, err := s.leaderboardRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		_, elig.Round1 = snapshot.Addresses()[*acc.PayoutAddress]
	}
	return elig, nil
}

// CreateProposal opens a proposal in round 1. The proposer must hold round-1
// eligibility; treasury proposals carry a payout amount, a recipient address
// and an expiry after which the round is swept by simple majority.
func (s *Service) CreateProposal(ctx context.Context, proposerID int, title, description string, kind domain.ProposalKind, amount *float64, recipient *string) (*domain.Proposal, error) {
	if title == "" || description == "" {
		return nil, ErrInvalidProposal
	}
	if kind == domain.ProposalTreasury {
		if amount == nil || *amount <= 0 || recipient == nil || !validate.IsPayoutAddress(*recipient) {
			return nil, ErrInvalidProposal
		}
	}

	elig, err := s.CheckEligibility(ctx, proposerID)
	if err != nil {
		return nil, err
	}
	if !elig.Round1 {
		return nil, ErrNotEligible
	}

	p := &domain.Proposal{
		Title:       title,
		Description: description,
		ProposerID:  proposerID,
		Kind:        kind,
		Status:      domain.ProposalActiveRound1,
	}
	if kind == domain.ProposalTreasury {
		p.Amount = amount
		p.Recipient = recipient
		expires := time.Now().Add(s.cfg.VotingPeriod)
		p.ExpiresAt = &expires
	}

	created, err := s.proposalRepo.Create(ctx, p)
	if err != nil {
		zap.L().Error("failed to create proposal", zap.Error(err))
		return nil, err
	}
	zap.L().Info("proposal created",
		zap.Int("proposalID", created.ID),
		zap.String("kind", string(kind)),
		zap.Int("proposerID", proposerID),
	)
	return created, nil
}

// votingPower resolves the weight one vote carries. General proposals count
// heads; treasury proposals weigh the voter's external-network balance, read
// best-effort before the voting transaction opens.
func (s *Service) votingPower(kind domain.ProposalKind, address string) float64 {
	if kind == domain.ProposalGeneral {
		return 1
	}
	power, err := s.oracle.NativeBalance(address)
	if err != nil {
		zap.L().Warn("oracle balance lookup failed, voting with zero power",
			zap.String("address", address), zap.Error(err))
		return 0
	}
	return power
}

// poolThreshold resolves T, the full eligible pool's size or power for the
// round being voted. Passing requires for > T/2; rejection requires
// against >= T/2.
func (s *Service) poolThreshold(ctx context.Context, kind domain.ProposalKind, round int) (float64, error) {
	if round == 1 {
		snapshot, err := s.leaderboardRepo.Get(ctx)
		if err != nil {
			return 0, err
		}
		if snapshot == nil {
			return 0, nil
		}
		if kind == domain.ProposalTreasury {
			return snapshot.TotalPower, nil
		}
		return float64(len(snapshot.Entries)), nil
	}
	if kind == domain.ProposalTreasury {
		return s.accountRepo.SumWithdrawable(ctx)
	}
	count, err := s.accountRepo.CountEligibleVoters(ctx)
	return float64(count), err
}

// Vote records one ballot on the proposal's current round, pays the voter
// the participation reward and resolves the outcome against the pool
// threshold. The eligibility re-check, the vote insert, the reward and the
// tally update commit in one transaction; power and threshold are snapshotted
// just before it opens so external I/O stays out of the transaction.
func (s *Service) Vote(ctx context.Context, voterID, proposalID int, choice domain.VoteChoice) error {
	voter, err := s.accountRepo.GetByID(ctx, voterID)
	if err != nil {
		return err
	}
	if voter == nil {
		return ErrAccountNotFound
	}

	pre, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return err
	}
	if pre == nil {
		return ErrProposalNotFound
	}
	if pre.Status != domain.ProposalActiveRound1 && pre.Status != domain.ProposalActiveRound2 {
		return ErrWrongPhase
	}
	round := pre.Round()

	elig, err := s.CheckEligibility(ctx, voterID)
	if err != nil {
		return err
	}
	if (round == 1 && !elig.Round1) || (round == 2 && !elig.Round2) {
		return ErrNotEligible
	}

	power := s.votingPower(pre.Kind, *voter.PayoutAddress)
	threshold, err := s.poolThreshold(ctx, pre.Kind, round)
	if err != nil {
		return err
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.proposalRepo.GetByID(ctx, proposalID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProposalNotFound
		}
		if p.Status != pre.Status {
			return ErrWrongPhase
		}

		voted, err := s.proposalRepo.HasVoted(ctx, proposalID, round, voterID)
		if err != nil {
			return err
		}
		if voted {
			return ErrAlreadyVoted
		}

		if err := s.rewarder.CreditBonus(ctx, voterID, s.cfg.VoteReward, domain.PoolMined); err != nil {
			return err
		}
		if err := s.proposalRepo.InsertVote(ctx, &domain.ProposalVote{
			ProposalID: proposalID,
			Round:      round,
			VoterID:    voterID,
			Choice:     choice,
			Power:      power,
		}); err != nil {
			return err
		}

		forSum, againstSum := roundTally(p, round)
		if choice == domain.VoteFor {
			forSum += power
		} else {
			againstSum += power
		}

		status := resolveStatus(p.Status, forSum, againstSum, threshold)
		if err := s.proposalRepo.SetTally(ctx, proposalID, round, forSum, againstSum, status); err != nil {
			return err
		}

		if status == domain.ProposalPassed {
			if err := s.rewarder.CreditBonus(ctx, p.ProposerID, s.cfg.ProposalReward, domain.PoolMined); err != nil {
				return err
			}
			zap.L().Info("proposal passed",
				zap.Int("proposalID", proposalID),
				zap.Int("proposerID", p.ProposerID),
			)
		}
		return nil
	})
}

func roundTally(p *domain.Proposal, round int) (float64, float64) {
	if round == 2 {
		return p.Round2For, p.Round2Against
	}
	return p.Round1For, p.Round1Against
}

// resolveStatus applies the live threshold rule after a vote lands. Passing a
// round takes a strict majority of the whole pool; rejection takes only half,
// so a tied pool rejects.
func resolveStatus(current domain.ProposalStatus, forSum, againstSum, threshold float64) domain.ProposalStatus {
	switch {
	case forSum > threshold/2:
		if current == domain.ProposalActiveRound1 {
			return domain.ProposalActiveRound2
		}
		return domain.ProposalPassed
	case againstSum >= threshold/2 && threshold > 0:
		return domain.ProposalRejected
	default:
		return current
	}
}

// SweepExpired closes treasury round-1 proposals past their expiry by simple
// majority of votes actually cast. Looser than the live rule on purpose: it
// guarantees termination when the strict pool majority is never reached.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) error {
	expired, err := s.proposalRepo.ListExpiredRound1(ctx, now)
	if err != nil {
		return err
	}
	for _, p := range expired {
		status := domain.ProposalRejected
		if p.Round1For > p.Round1Against {
			status = domain.ProposalActiveRound2
		}
		if err := s.proposalRepo.SetStatus(ctx, p.ID, status); err != nil {
			zap.L().Error("failed to sweep expired proposal", zap.Int("proposalID", p.ID), zap.Error(err))
			continue
		}
		zap.L().Info("expired proposal swept",
			zap.Int("proposalID", p.ID),
			zap.String("status", string(status)),
		)
	}
	return nil
}

// RefreshLeaderboard rebuilds the cached top contributor list and its total
// voting power. A refresh that reads zero contributions leaves the previous
// snapshot untouched so a transient empty upstream cannot wipe eligibility.
func (s *Service) RefreshLeaderboard(ctx context.Context) error {
	entries, err := s.leaderboardRepo.TopContributions(ctx, s.cfg.TopN)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		zap.L().Warn("leaderboard refresh observed no contributions, keeping previous snapshot")
		return nil
	}

	var totalPower float64
	for _, e := range entries {
		power, err := s.oracle.NativeBalance(e.Address)
		if err != nil {
			zap.L().Warn("oracle balance lookup failed during refresh, counting zero",
				zap.String("address", e.Address), zap.Error(err))
			continue
		}
		totalPower += power
	}

	snapshot := &domain.LeaderboardSnapshot{
		Entries:    entries,
		TotalPower: totalPower,
		UpdatedAt:  time.Now(),
	}
	if err := s.leaderboardRepo.Save(ctx, snapshot); err != nil {
		return err
	}
	zap.L().Info("leaderboard refreshed",
		zap.Int("entries", len(entries)),
		zap.Float64("totalPower", totalPower),
	)
	return nil
}

// IngestContributions pulls the next page of incoming payments to the
// contribution account and folds them into the contribution ledger. The
// paging cursor persists across runs, so an abandoned run resumes where it
// stopped.
func (s *Service) IngestContributions(ctx context.Context) error {
	cursor, err := s.leaderboardRepo.GetCursor(ctx, contributionCursor)
	if err != nil {
		return err
	}

	payments, next, err := s.oracle.Payments(s.contribAccount, cursor, paymentsPageLimit)
	if err != nil {
		return err
	}
	if next == "" {
		return nil
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, payment := range payments {
			if err := s.leaderboardRepo.AddContribution(ctx, payment.From, payment.Amount); err != nil {
				return err
			}
		}
		return s.leaderboardRepo.SaveCursor(ctx, contributionCursor, next)
	})
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		zap.L().Info("contributions ingested", zap.Int("count", len(payments)), zap.String("cursor", next))
	}
	return nil
}

func (s *Service) Leaderboard(ctx context.Context) (*domain.LeaderboardSnapshot, error) {
	return s.leaderboardRepo.Get(ctx)
}

func (s *Service) GetProposal(ctx context.Context, id int) (*domain.Proposal, error) {
	p, err := s.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProposalNotFound
	}
	return p, nil
}

func (s *Service) ListProposals(ctx context.Context) ([]domain.Proposal, error) {
	return s.proposalRepo.List(ctx)
}
