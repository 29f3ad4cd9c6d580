package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/oracle"
	"github.com/phoenixdao/phxledger/internal/pg"
	"github.com/phoenixdao/phxledger/internal/repo"
	"github.com/phoenixdao/phxledger/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)
	oracleClient := oracle.New("https://horizon.example.org", clients.NewHTTPClient())
	cfg := &config.Config{Ledger: config.DefaultLedger()}

	services := New(repos, txManager, oracleClient, cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.ReferralService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.GovernanceService)
}
