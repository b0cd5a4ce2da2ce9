package dispatch

import (
	"log/slog"

	"github.com/samber/lo"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/services"
)

type clientMessagePayload struct {
	RoomID  string `json:"roomId" validate:"required"`
	Message string `json:"message"`
}

// ClientMessageHandler relays a chat line to every online member of the
// room except the sender. The relayed payload carries the sender's
// nickname so receivers never need a second lookup.
type ClientMessageHandler struct {
	exec
	service services.IRoomRegistryService
}

func NewClientMessageHandler(
	service services.IRoomRegistryService,
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *ClientMessageHandler {
	return &ClientMessageHandler{exec: newExec(publisher, presence, log), service: service}
}

func (h *ClientMessageHandler) Supports() domain.Action { return domain.ActionClientMessage }

func (h *ClientMessageHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		payload, err := decodePayload[clientMessagePayload](cmd.Payload, roomOnlyFieldKinds)
		if err != nil {
			return nil, err
		}
		relayPayload, online, err := h.service.PrepareClientMessage(payload.RoomID, cmd.UserID, payload.Message)
		if err != nil {
			return nil, err
		}
		for _, memberID := range lo.Without(online, cmd.UserID) {
			h.sendEvent(h.buildEvent(
				cmd, memberID, domain.EventMessage, domain.ActionClientMessage, relayPayload, domain.StatusSuccess))
		}
		return map[string]any{"roomId": payload.RoomID}, nil
	})
}
