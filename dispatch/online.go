package dispatch

import (
	"log/slog"

	"github.com/samber/lo"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/services"
)

// OnlineHandler flips the actor's presence bit in one room and answers
// with a fresh room summary so the client can rebuild its view.
type OnlineHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewOnlineHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *OnlineHandler {
	return &OnlineHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *OnlineHandler) Supports() domain.Action { return domain.ActionOnline }

func (h *OnlineHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		payload, err := decodePayload[leavePayload](cmd.Payload, roomOnlyFieldKinds)
		if err != nil {
			return nil, err
		}
		result, err := h.service.MarkOnline(payload.RoomID, cmd.UserID)
		if err != nil {
			return nil, err
		}
		for _, memberID := range lo.Without(result.OnlineMembers, cmd.UserID) {
			h.sendEvent(h.buildEvent(
				cmd, memberID, domain.EventNotify, domain.ActionOnline, result.NotifyPayload, domain.StatusSuccess))
		}
		return h.service.GetRoomSummary(payload.RoomID)
	})
}
