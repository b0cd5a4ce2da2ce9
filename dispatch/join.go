package dispatch

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/errors"
	"chat-session-core/services"
)

type joinPayload struct {
	RoomID   string `json:"roomId" validate:"required"`
	Nickname string `json:"nickName" validate:"required"`
}

var joinFieldKinds = map[string]errors.Kind{
	"RoomID":   errors.RoomIDRequired,
	"Nickname": errors.NicknameRequired,
}

// JoinHandler admits a token-holding user into a room and announces the
// arrival to everyone already inside.
type JoinHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewJoinHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *JoinHandler {
	return &JoinHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *JoinHandler) Supports() domain.Action { return domain.ActionJoin }

func (h *JoinHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		payload, err := decodePayload[joinPayload](cmd.Payload, joinFieldKinds)
		if err != nil {
			return nil, err
		}
		result, err := h.service.JoinRoom(payload.RoomID, cmd.UserID, payload.Nickname)
		if err != nil {
			return nil, err
		}
		// Every current member gets the arrival notification, the
		// joiner included; the joiner additionally receives the RESULT.
		for _, entry := range result.Summary.Entries {
			h.sendEvent(h.buildEvent(
				cmd, entry.UserID, domain.EventNotify, domain.ActionJoin, result.NotifyPayload, domain.StatusSuccess))
		}
		return result.Summary, nil
	})
}
