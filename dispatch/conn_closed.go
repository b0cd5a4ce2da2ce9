package dispatch

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/services"
)

// ConnClosedHandler sweeps a vanished connection out of every room it
// belonged to. The actor is gone, so no RESULT event is produced; the
// remaining members still get their LEAVE notifications.
type ConnClosedHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewConnClosedHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *ConnClosedHandler {
	return &ConnClosedHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *ConnClosedHandler) Supports() domain.Action { return domain.ActionConnClosed }

func (h *ConnClosedHandler) Handle(cmd domain.Command) {
	h.runNotifyOnly(cmd, func(cmd domain.Command) (any, error) {
		swept, err := h.service.LeaveAllRoomsForDisconnect(cmd.UserID)
		if err != nil {
			return nil, err
		}
		for _, result := range swept.Results {
			for _, memberID := range result.RemainingOnlineMembers {
				h.sendEvent(h.buildEvent(
					cmd, memberID, domain.EventNotify, domain.ActionLeave, result.NotifyPayload, domain.StatusSuccess))
			}
		}
		return nil, nil
	})
}
