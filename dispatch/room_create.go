package dispatch

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/services"
)

type RoomCreateHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewRoomCreateHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *RoomCreateHandler {
	return &RoomCreateHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *RoomCreateHandler) Supports() domain.Action { return domain.ActionRoomCreate }

func (h *RoomCreateHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		room, err := h.service.CreateRoom(cmd.UserID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"roomId":    room.RoomID,
			"ownerId":   room.OwnerID,
			"createdAt": domain.FormatWireTime(room.CreatedAt),
		}, nil
	})
}
