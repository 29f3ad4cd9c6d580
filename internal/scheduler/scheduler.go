package scheduler

import (
	"context"
	"time"

	"github.com/phoenixdao/phxledger/internal/config"
	"go.uber.org/zap"
)

// Governance is the set of periodic maintenance jobs the scheduler drives.
type Governance interface {
	RefreshLeaderboard(ctx context.Context) error
	SweepExpired(ctx context.Context, now time.Time) error
	IngestContributions(ctx context.Context) error
}

type Scheduler struct {
	governance Governance
	cfg        config.Ledger
}

func New(governance Governance, cfg config.Ledger) *Scheduler {
	return &Scheduler{governance: governance, cfg: cfg}
}

// Start launches every periodic loop. Each job runs on its own interval and
// is safe to abandon mid-run; a failed run only logs and waits for the next
// tick.
func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("scheduler started")
	go s.loop(ctx, "leaderboard refresh", s.cfg.LeaderboardInterval, s.governance.RefreshLeaderboard)
	go s.loop(ctx, "proposal expiry sweep", s.cfg.SweepInterval, func(ctx context.Context) error {
		return s.governance.SweepExpired(ctx, time.Now())
	})
	go s.loop(ctx, "contribution ingest", s.cfg.ContributionInterval, s.governance.IngestContributions)
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, job func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping job", zap.String("job", name))
			return
		case <-ticker.C:
			if err := job(ctx); err != nil {
				zap.L().Error("scheduled job failed", zap.String("job", name), zap.Error(err))
			}
		}
	}
}
