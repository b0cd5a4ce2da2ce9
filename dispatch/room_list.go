package dispatch

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/services"
)

type RoomListHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewRoomListHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *RoomListHandler {
	return &RoomListHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *RoomListHandler) Supports() domain.Action { return domain.ActionRoomList }

func (h *RoomListHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		summaries, err := h.service.ListRoomSummaries(cmd.UserID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"rooms": summaries,
			"count": len(summaries),
		}, nil
	})
}
