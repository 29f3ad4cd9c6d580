package repo

import (
	"github.com/phoenixdao/phxledger/internal/pg"
	accountrepo "github.com/phoenixdao/phxledger/internal/repo/account-repo"
	leaderboardrepo "github.com/phoenixdao/phxledger/internal/repo/leaderboard-repo"
	proposalrepo "github.com/phoenixdao/phxledger/internal/repo/proposal-repo"
	referralrepo "github.com/phoenixdao/phxledger/internal/repo/referral-repo"
	withdrawalrepo "github.com/phoenixdao/phxledger/internal/repo/withdrawal-repo"
)

type Repositories struct {
	AccountRepo     *accountrepo.Repository
	ReferralRepo    *referralrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
	ProposalRepo    *proposalrepo.Repository
	LeaderboardRepo *leaderboardrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:     accountrepo.New(conn),
		ReferralRepo:    referralrepo.New(conn),
		WithdrawalRepo:  withdrawalrepo.New(conn),
		ProposalRepo:    proposalrepo.New(conn),
		LeaderboardRepo: leaderboardrepo.New(conn),
	}
}
