package dispatch

import (
	"log/slog"

	"github.com/samber/lo"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/services"
)

type OfflineHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewOfflineHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *OfflineHandler {
	return &OfflineHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *OfflineHandler) Supports() domain.Action { return domain.ActionOffline }

func (h *OfflineHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		payload, err := decodePayload[leavePayload](cmd.Payload, roomOnlyFieldKinds)
		if err != nil {
			return nil, err
		}
		result, err := h.service.MarkOffline(payload.RoomID, cmd.UserID)
		if err != nil {
			return nil, err
		}
		for _, memberID := range lo.Without(result.OnlineMembers, cmd.UserID) {
			h.sendEvent(h.buildEvent(
				cmd, memberID, domain.EventNotify, domain.ActionOffline, result.NotifyPayload, domain.StatusSuccess))
		}
		return map[string]any{"roomId": result.RoomID}, nil
	})
}
