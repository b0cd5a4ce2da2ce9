package dispatch

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/errors"
	"chat-session-core/services"
)

type joinApprovePayload struct {
	RoomID          string `json:"roomId" validate:"required"`
	RequestedUserID string `json:"requestedUserId" validate:"required"`
	Approved        bool   `json:"approved"`
}

var joinApproveFieldKinds = map[string]errors.Kind{
	"RoomID": errors.RoomIDRequired,
}

// JoinApproveHandler records the owner's decision on a pending join
// request and notifies the requester either way.
type JoinApproveHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewJoinApproveHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *JoinApproveHandler {
	return &JoinApproveHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *JoinApproveHandler) Supports() domain.Action { return domain.ActionJoinApprove }

func (h *JoinApproveHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		payload, err := decodePayload[joinApprovePayload](cmd.Payload, joinApproveFieldKinds)
		if err != nil {
			return nil, err
		}
		notifyPayload, err := h.service.ApproveJoin(payload.RoomID, cmd.UserID, payload.RequestedUserID, payload.Approved)
		if err != nil {
			return nil, err
		}
		h.sendEvent(h.buildEvent(
			cmd, payload.RequestedUserID, domain.EventNotify, domain.ActionJoinApprove, notifyPayload, domain.StatusSuccess))
		return notifyPayload, nil
	})
}
