package dispatch

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/errors"
	"chat-session-core/services"
)

type leavePayload struct {
	RoomID string `json:"roomId" validate:"required"`
}

var roomOnlyFieldKinds = map[string]errors.Kind{
	"RoomID": errors.RoomIDRequired,
}

// LeaveHandler removes the actor from a room and tells the remaining
// online members, including the successor when ownership moved.
type LeaveHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewLeaveHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *LeaveHandler {
	return &LeaveHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *LeaveHandler) Supports() domain.Action { return domain.ActionLeave }

func (h *LeaveHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		payload, err := decodePayload[leavePayload](cmd.Payload, roomOnlyFieldKinds)
		if err != nil {
			return nil, err
		}
		result, err := h.service.LeaveRoom(payload.RoomID, cmd.UserID)
		if err != nil {
			return nil, err
		}
		for _, memberID := range result.RemainingOnlineMembers {
			h.sendEvent(h.buildEvent(
				cmd, memberID, domain.EventNotify, domain.ActionLeave, result.NotifyPayload, domain.StatusSuccess))
		}
		return map[string]any{"roomId": result.RoomID}, nil
	})
}
