package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-session-core/services"
)

// RetrySweeper periodically re-drives unacknowledged events from the
// delivery ledger. The interval should sit at or below the initial retry
// delay; a slower tick only stretches the effective backoff.
type RetrySweeper struct {
	service  *services.EventRetryService
	log      *slog.Logger
	interval time.Duration
}

func NewRetrySweeper(service *services.EventRetryService, log *slog.Logger, interval time.Duration) *RetrySweeper {
	return &RetrySweeper{service: service, log: log, interval: interval}
}

func (w *RetrySweeper) Run(ctx context.Context) error {
	w.log.Info("Starting event retry sweeper", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			retried := w.service.RetryDue(now)
			if retried > 0 {
				w.log.Info("Retry sweep re-published events", "count", retried)
			}
		}
	}
}
