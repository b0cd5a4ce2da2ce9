package dispatch

import (
	"log/slog"

	"chat-session-core/domain"
)

// Dispatcher routes a decoded command to the handler registered for its
// action. The mapping is built once at startup; registering two handlers
// for one action is a configuration error (last one wins, logged).
type Dispatcher struct {
	handlers map[domain.Action]Handler
	log      *slog.Logger
}

func NewDispatcher(log *slog.Logger, handlers ...Handler) *Dispatcher {
	mapped := make(map[domain.Action]Handler, len(handlers))
	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		action := handler.Supports()
		if _, duplicate := mapped[action]; duplicate {
			log.Error("dispatcher: duplicate handler registration", "action", action)
		}
		mapped[action] = handler
	}
	return &Dispatcher{handlers: mapped, log: log}
}

// Dispatch hands the command to its handler, falling back to the UNKNOWN
// handler for unmapped actions. With no fallback registered the command
// is dropped with a warning: a configuration defect, not a runtime fault.
func (d *Dispatcher) Dispatch(cmd domain.Command) {
	handler, ok := d.handlers[cmd.Action]
	if !ok {
		handler, ok = d.handlers[domain.ActionUnknown]
	}
	if !ok {
		d.log.Warn("dispatcher: no handler for action", "action", cmd.Action, "commandId", cmd.CommandID)
		return
	}
	handler.Handle(cmd)
}
