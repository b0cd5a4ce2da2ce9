package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-session-core/services"
)

// RoomSweeper deletes rooms whose auto-delete deadline has passed. One
// instance per process is enough; the sweep tolerates concurrent traffic
// because every room deletion is a single registry transaction.
type RoomSweeper struct {
	service  services.IRoomRegistryService
	log      *slog.Logger
	interval time.Duration
}

func NewRoomSweeper(service services.IRoomRegistryService, log *slog.Logger, interval time.Duration) *RoomSweeper {
	return &RoomSweeper{service: service, log: log, interval: interval}
}

func (w *RoomSweeper) Run(ctx context.Context) error {
	w.log.Info("Starting room sweeper", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			deleted, err := w.service.DeleteExpiredRooms(now)
			if err != nil {
				w.log.Error("Room sweep failed", "error", err)
				continue
			}
			if deleted > 0 {
				w.log.Info("Room sweep removed expired rooms", "count", deleted)
			}
		}
	}
}
