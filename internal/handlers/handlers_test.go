package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	_ "github.com/phoenixdao/phxledger/docs"
	"github.com/phoenixdao/phxledger/internal/config"
	adminhandlers "github.com/phoenixdao/phxledger/internal/handlers/admin"
	"github.com/phoenixdao/phxledger/internal/oracle"
	"github.com/phoenixdao/phxledger/internal/pg"
	"github.com/phoenixdao/phxledger/internal/repo"
	"github.com/phoenixdao/phxledger/internal/service"
	"github.com/phoenixdao/phxledger/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	cfg := &config.Config{Ledger: config.DefaultLedger()}
	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)
	oracleClient := oracle.New("https://horizon.example.org", clients.NewHTTPClient())
	services := service.New(repos, txManager, oracleClient, cfg)
	dispatcher := adminhandlers.NewMockDispatcher(ctrl)

	h := New(services, dispatcher)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockAccountHandler := NewMockAccountHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockGovernanceHandler := NewMockGovernanceHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockSupplyHandler := NewMockSupplyHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().SaveWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().SubmitKYC(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().GetReferrals(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Mine(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockGovernanceHandler.EXPECT().CheckEligibility(gomock.Any(), gomock.Any()).AnyTimes()
	mockGovernanceHandler.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).AnyTimes()
	mockGovernanceHandler.EXPECT().Vote(gomock.Any(), gomock.Any()).AnyTimes()
	mockGovernanceHandler.EXPECT().GetProposal(gomock.Any(), gomock.Any()).AnyTimes()
	mockGovernanceHandler.EXPECT().ListProposals(gomock.Any(), gomock.Any()).AnyTimes()
	mockGovernanceHandler.EXPECT().Leaderboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Settle(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().EnqueueAllPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ManageKYC(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GrantAdmin(gomock.Any(), gomock.Any()).AnyTimes()
	mockSupplyHandler.EXPECT().Circulating(gomock.Any(), gomock.Any()).AnyTimes()
	mockSupplyHandler.EXPECT().Total(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		AccountHandler:    mockAccountHandler,
		BalanceHandler:    mockBalanceHandler,
		GovernanceHandler: mockGovernanceHandler,
		AdminHandler:      mockAdminHandler,
		SupplyHandler:     mockSupplyHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/mine", http.StatusUnauthorized},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"POST", "/api/user/balance/withdraw", http.StatusUnauthorized},
		{"GET", "/api/user/withdrawals", http.StatusUnauthorized},
		{"POST", "/api/user/wallet", http.StatusUnauthorized},
		{"POST", "/api/user/kyc", http.StatusUnauthorized},
		{"GET", "/api/user/referrals", http.StatusUnauthorized},
		{"GET", "/api/governance/eligibility", http.StatusUnauthorized},
		{"GET", "/api/governance/proposals", http.StatusUnauthorized},
		{"POST", "/api/governance/proposals", http.StatusUnauthorized},
		{"GET", "/api/governance/proposals/1", http.StatusUnauthorized},
		{"POST", "/api/governance/proposals/1/vote", http.StatusUnauthorized},
		{"GET", "/api/governance/leaderboard", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/enqueue", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/1/settle", http.StatusUnauthorized},
		{"POST", "/api/admin/kyc", http.StatusUnauthorized},
		{"POST", "/api/admin/grant", http.StatusUnauthorized},
		{"GET", "/api/supply/circulating", http.StatusOK},
		{"GET", "/api/supply/total", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
