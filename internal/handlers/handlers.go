package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/phoenixdao/phxledger/docs"
	accounthandlers "github.com/phoenixdao/phxledger/internal/handlers/account"
	adminhandlers "github.com/phoenixdao/phxledger/internal/handlers/admin"
	authhandlers "github.com/phoenixdao/phxledger/internal/handlers/auth"
	balancehandlers "github.com/phoenixdao/phxledger/internal/handlers/balance"
	governancehandlers "github.com/phoenixdao/phxledger/internal/handlers/governance"
	supplyhandlers "github.com/phoenixdao/phxledger/internal/handlers/supply"
	"github.com/phoenixdao/phxledger/internal/service"
	"github.com/phoenixdao/phxledger/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	SaveWallet(w http.ResponseWriter, r *http.Request)
	SubmitKYC(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type GovernanceHandler interface {
	CheckEligibility(w http.ResponseWriter, r *http.Request)
	CreateProposal(w http.ResponseWriter, r *http.Request)
	Vote(w http.ResponseWriter, r *http.Request)
	GetProposal(w http.ResponseWriter, r *http.Request)
	ListProposals(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
	EnqueueAllPending(w http.ResponseWriter, r *http.Request)
	ManageKYC(w http.ResponseWriter, r *http.Request)
	GrantAdmin(w http.ResponseWriter, r *http.Request)
}

type SupplyHandler interface {
	Circulating(w http.ResponseWriter, r *http.Request)
	Total(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	AccountHandler    AccountHandler
	BalanceHandler    BalanceHandler
	GovernanceHandler GovernanceHandler
	AdminHandler      AdminHandler
	SupplyHandler     SupplyHandler
}

func New(s *service.Services, dispatcher adminhandlers.Dispatcher) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		AccountHandler:    accounthandlers.New(s.AccountService, s.ReferralService),
		BalanceHandler:    balancehandlers.New(s.LedgerService),
		GovernanceHandler: governancehandlers.New(s.GovernanceService),
		AdminHandler:      adminhandlers.New(s.LedgerService, dispatcher, s.AccountService, s.AuthService),
		SupplyHandler:     supplyhandlers.New(s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/mine", h.BalanceHandler.Mine)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/withdraw", h.BalanceHandler.Withdraw)
			})
			r.Get("/withdrawals", h.BalanceHandler.GetWithdrawals)
			r.Post("/wallet", h.AccountHandler.SaveWallet)
			r.Post("/kyc", h.AccountHandler.SubmitKYC)
			r.Get("/referrals", h.AccountHandler.GetReferrals)
		})
	})

	r.Route("/api/governance", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/eligibility", h.GovernanceHandler.CheckEligibility)
		r.Route("/proposals", func(r chi.Router) {
			r.Get("/", h.GovernanceHandler.ListProposals)
			r.Post("/", h.GovernanceHandler.CreateProposal)
			r.Get("/{id}", h.GovernanceHandler.GetProposal)
			r.Post("/{id}/vote", h.GovernanceHandler.Vote)
		})
		r.Get("/leaderboard", h.GovernanceHandler.Leaderboard)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/enqueue", h.AdminHandler.EnqueueAllPending)
			r.Post("/{id}/settle", h.AdminHandler.Settle)
		})
		r.Post("/kyc", h.AdminHandler.ManageKYC)
		r.Post("/grant", h.AdminHandler.GrantAdmin)
	})

	r.Route("/api/supply", func(r chi.Router) {
		r.Get("/circulating", h.SupplyHandler.Circulating)
		r.Get("/total", h.SupplyHandler.Total)
	})

	return r
}
