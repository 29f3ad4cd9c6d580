package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/stretchr/testify/assert"
)

type fakeGovernance struct {
	refreshes atomic.Int32
	sweeps    atomic.Int32
	ingests   atomic.Int32
}

func (f *fakeGovernance) RefreshLeaderboard(ctx context.Context) error {
	f.refreshes.Add(1)
	return nil
}

func (f *fakeGovernance) SweepExpired(ctx context.Context, now time.Time) error {
	f.sweeps.Add(1)
	return nil
}

func (f *fakeGovernance) IngestContributions(ctx context.Context) error {
	f.ingests.Add(1)
	return nil
}

func TestStart_RunsAndStops(t *testing.T) {
	cfg := config.DefaultLedger()
	cfg.LeaderboardInterval = 10 * time.Millisecond
	cfg.SweepInterval = 10 * time.Millisecond
	cfg.ContributionInterval = 10 * time.Millisecond

	governance := &fakeGovernance{}
	ctx, cancel := context.WithCancel(context.Background())

	New(governance, cfg).Start(ctx)
	time.Sleep(60 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	refreshes := governance.refreshes.Load()
	sweeps := governance.sweeps.Load()
	ingests := governance.ingests.Load()
	assert.Positive(t, refreshes)
	assert.Positive(t, sweeps)
	assert.Positive(t, ingests)

	// no further runs after cancellation
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, refreshes, governance.refreshes.Load())
	assert.Equal(t, sweeps, governance.sweeps.Load())
	assert.Equal(t, ingests, governance.ingests.Load())
}
