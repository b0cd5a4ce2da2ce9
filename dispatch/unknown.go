package dispatch

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/errors"
	"chat-session-core/services"
)

// UnknownHandler is the dispatcher's fallback: it answers any
// unrecognized action with a stable error event instead of silence.
type UnknownHandler struct {
	exec
}

func NewUnknownHandler(
	publisher services.IEventPublishService,
	presence contract.PresenceLookup,
	log *slog.Logger,
) *UnknownHandler {
	return &UnknownHandler{exec: newExec(publisher, presence, log)}
}

func (h *UnknownHandler) Supports() domain.Action { return domain.ActionUnknown }

func (h *UnknownHandler) Handle(cmd domain.Command) {
	h.run(cmd, func(cmd domain.Command) (any, error) {
		return nil, errors.Newf(errors.UnsupportedAction, "action %q", cmd.Action)
	})
}
