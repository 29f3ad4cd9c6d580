package service

import (
	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/oracle"
	"github.com/phoenixdao/phxledger/internal/pg"
	"github.com/phoenixdao/phxledger/internal/repo"
	"github.com/phoenixdao/phxledger/internal/service/accountservice"
	"github.com/phoenixdao/phxledger/internal/service/authservice"
	"github.com/phoenixdao/phxledger/internal/service/governanceservice"
	"github.com/phoenixdao/phxledger/internal/service/ledgerservice"
	"github.com/phoenixdao/phxledger/internal/service/referralservice"

	pkgauth "github.com/phoenixdao/phxledger/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	AccountService    *accountservice.Service
	ReferralService   *referralservice.Service
	LedgerService     *ledgerservice.Service
	GovernanceService *governanceservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, oracleClient *oracle.Client, cfg *config.Config) *Services {
	referralService := referralservice.New(repo.AccountRepo, repo.ReferralRepo, txManager, cfg.Ledger)

	ledgerService := ledgerservice.New(repo.AccountRepo, repo.WithdrawalRepo, txManager, cfg.Ledger)
	ledgerService.SetHook(referralService)

	accountService := accountservice.New(repo.AccountRepo, txManager)
	accountService.SetHook(referralService)

	authService := authservice.New(repo.AccountRepo, repo.ReferralRepo, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.Ledger)

	governanceService := governanceservice.New(
		repo.AccountRepo, repo.ProposalRepo, repo.LeaderboardRepo,
		ledgerService, oracleClient, txManager, cfg.Ledger, cfg.ContributionAccount,
	)

	return &Services{
		AuthService:       authService,
		AccountService:    accountService,
		ReferralService:   referralService,
		LedgerService:     ledgerService,
		GovernanceService: governanceService,
	}
}
