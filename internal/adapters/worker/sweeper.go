package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskdeck/auth-service/internal/ports"
)

// SessionSweeper deletes expired session rows on a fixed interval.
// Expired sessions are already rejected at read time; the sweeper only
// keeps the table from accumulating dead rows.
type SessionSweeper struct {
	logger   *slog.Logger
	sessions ports.SessionRepository
	interval time.Duration
	nowFn    func() time.Time
}

// NewSessionSweeper constructs the cleanup loop with sane defaults.
func NewSessionSweeper(logger *slog.Logger, sessions ports.SessionRepository, interval time.Duration) *SessionSweeper {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &SessionSweeper{
		logger:   logger,
		sessions: sessions,
		interval: interval,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}

// Run executes the periodic sweep until context cancellation.
func (w *SessionSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.sweepOnce(ctx); err != nil {
			w.logger.ErrorContext(ctx, "session sweep failed",
				"module", "worker.session_sweeper",
				"layer", "adapter",
				"operation", "sweep_expired_sessions",
				"outcome", "failure",
				"error", err,
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *SessionSweeper) sweepOnce(ctx context.Context) error {
	deleted, err := w.sessions.DeleteExpired(ctx, w.nowFn())
	if err != nil {
		return err
	}
	if deleted > 0 {
		w.logger.InfoContext(ctx, "expired sessions removed",
			"module", "worker.session_sweeper",
			"layer", "adapter",
			"operation", "sweep_expired_sessions",
			"outcome", "success",
			"deleted_count", deleted,
		)
	}
	return nil
}
