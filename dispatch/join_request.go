package dispatch

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/errors"
	"chat-session-core/services"
)

type joinRequestPayload struct {
	RoomID   string `json:"roomId" validate:"required"`
	Nickname string `json:"nickName" validate:"required"`
}

var joinRequestFieldKinds = map[string]errors.Kind{
	"RoomID":   errors.RoomIDRequired,
	"Nickname": errors.NicknameRequired,
}

// JoinRequestHandler asks for admission to a room. Requests from users
// already holding a token, or from the owner, are approved on the spot;
// everything else turns into a notification the owner must answer.
type JoinRequestHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewJoinRequestHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *JoinRequestHandler {
	return &JoinRequestHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *JoinRequestHandler) Supports() domain.Action { return domain.ActionJoinRequest }

func (h *JoinRequestHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		payload, err := decodePayload[joinRequestPayload](cmd.Payload, joinRequestFieldKinds)
		if err != nil {
			return nil, err
		}
		result, err := h.service.PrepareJoinRequest(payload.RoomID, cmd.UserID, payload.Nickname)
		if err != nil {
			return nil, err
		}
		action := domain.ActionJoinRequest
		if result.DirectApprove {
			action = domain.ActionJoinApprove
		}
		h.sendEvent(h.buildEvent(cmd, result.TargetUserID, domain.EventNotify, action, result.Payload, domain.StatusSuccess))
		return map[string]any{
			"roomId":  payload.RoomID,
			"pending": !result.DirectApprove,
		}, nil
	})
}
