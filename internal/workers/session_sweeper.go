package workers

import (
	"context"
	"time"

	"github.com/bishtbros/ledger/internal/logger"
)

// DefaultSweepInterval is how often the sweeper scans the session store when
// no interval is configured.
const DefaultSweepInterval = 10 * time.Minute

// SessionSweeper periodically removes expired sessions from the store. It
// replaces the historical one-timer-per-session design: a single ticker keeps
// memory bounded regardless of how many sessions exist, and the store's lazy
// expiry check at lookup keeps correctness independent of sweep timing.
type SessionSweeper struct {
	store    Sweepable
	interval time.Duration
	logger   *logger.Logger
	ctx      context.Context
}

// NewSessionSweeper constructs a sweeper over store. The sweeper stops when
// ctx is cancelled; interval of zero falls back to DefaultSweepInterval.
func NewSessionSweeper(ctx context.Context, store Sweepable, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &SessionSweeper{
		store:    store,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (s *SessionSweeper) Run() {
	go s.loop()
}

func (s *SessionSweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			if removed := s.store.Sweep(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("swept expired sessions")
			}
		}
	}
}
