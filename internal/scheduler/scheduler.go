package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Xizillimax/homework-bot/internal/domain"
)

// Checker runs one poll iteration.
type Checker interface {
	Check(ctx context.Context) (*domain.CheckStats, error)
}

// Scheduler drives the checker on a fixed interval. The fixed sleep between
// iterations is the only rate limiting; iterations never overlap.
type Scheduler struct {
	checker  Checker
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(checker Checker, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		checker:  checker,
		interval: interval,
		logger:   logger,
	}
}

// Start runs an immediate first check, then one per tick, until ctx is
// cancelled. Check failures are logged and never stop the loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCheck(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCheck(ctx)
		}
	}
}

func (s *Scheduler) runCheck(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	// Last-resort catch-all: a panicking iteration must not kill the loop.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("check panicked", "panic", r)
		}
	}()

	stats, err := s.checker.Check(checkCtx)
	if err != nil {
		s.logger.Error("check failed", "error", err)
		return
	}

	s.logger.Info("check completed",
		"fetched", stats.Fetched,
		"notified", stats.Notified,
		"cursor", stats.Cursor,
		"duration", stats.Duration,
	)
}
