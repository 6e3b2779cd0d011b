package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Xizillimax/homework-bot/internal/domain"
	"github.com/Xizillimax/homework-bot/internal/source/practicum"
)

// Watcher runs one poll iteration at a time: fetch, validate, interpret the
// newest record, notify on change. All state (cursor, dedup memory) is owned
// by the single loop goroutine; nothing is persisted.
type Watcher struct {
	source   Source
	notifier Notifier
	logger   *slog.Logger

	cursor       int64
	lastNotified string
	lastFailure  string
}

// NewWatcher seeds the cursor with startCursor, typically now minus the
// configured lookback window.
func NewWatcher(source Source, notifier Notifier, logger *slog.Logger, startCursor int64) *Watcher {
	return &Watcher{
		source:   source,
		notifier: notifier,
		logger:   logger.With("component", "watcher"),
		cursor:   startCursor,
	}
}

// Check performs a single iteration. Every failure is converted into at most
// one chat notification (deduplicated against the immediately preceding
// failure message) and returned for logging; the caller keeps looping.
func (w *Watcher) Check(ctx context.Context) (*domain.CheckStats, error) {
	start := time.Now()
	stats := &domain.CheckStats{Cursor: w.cursor}

	payload, err := w.source.Fetch(ctx, w.cursor)
	if err != nil {
		w.reportFailure(ctx, err)
		return stats, err
	}

	feed, err := practicum.Validate(payload)
	if err != nil {
		w.reportFailure(ctx, err)
		return stats, err
	}

	// Advance exactly once per successful fetch+validate so the next poll
	// only asks for newer data.
	w.cursor = feed.CurrentDate
	stats.Cursor = w.cursor
	stats.Fetched = len(feed.Homeworks)

	if len(feed.Homeworks) == 0 {
		w.logger.Info("no homework updates in the queried window", "cursor", w.cursor)
	} else {
		message, err := domain.Interpret(feed.Homeworks[0])
		if err != nil {
			w.reportFailure(ctx, err)
			return stats, err
		}

		if message != w.lastNotified {
			w.notifier.Notify(ctx, message)
			w.lastNotified = message
			stats.Notified = true
			w.logger.Info("status change notified",
				"homework", feed.Homeworks[0].Name,
				"status", feed.Homeworks[0].Status,
			)
		} else {
			w.logger.Debug("status unchanged, notification suppressed")
		}
	}

	// A clean iteration re-arms failure reporting.
	w.lastFailure = ""

	stats.Duration = time.Since(start)
	return stats, nil
}

func (w *Watcher) reportFailure(ctx context.Context, err error) {
	message := "Program failure: " + err.Error()
	if message == w.lastFailure {
		w.logger.Debug("repeated failure, notification suppressed", "error", err)
		return
	}
	w.logger.Error("check failed", "error", err, "kind", practicum.KindOf(err).String())
	w.notifier.Notify(ctx, message)
	w.lastFailure = message
}
