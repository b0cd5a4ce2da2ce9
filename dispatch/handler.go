package dispatch

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"time"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/errors"
	"chat-session-core/services"
)

// Handler processes exactly one command action. A command produces at
// most one RESULT event for its actor; it is never replayed on failure.
type Handler interface {
	Supports() domain.Action
	Handle(cmd domain.Command)
}

// exec is the shared template every handler embeds: it runs the
// action-specific logic and owns the uniform result/error emission. The
// action logic only signals failure; converting a failure into a
// delivered ERROR event happens in exactly one place, here.
type exec struct {
	publisher services.IEventPublishService
	presence  contract.PresenceLookup
	log       *slog.Logger
}

func newExec(publisher services.IEventPublishService, presence contract.PresenceLookup, log *slog.Logger) exec {
	return exec{publisher: publisher, presence: presence, log: log}
}

// run executes do and emits the actor's RESULT event, SUCCESS or ERROR.
func (e exec) run(cmd domain.Command, do func(domain.Command) (any, error)) {
	e.handle(cmd, false, do)
}

// runNotifyOnly executes do without emitting a RESULT event; used for
// actions whose actor has no live connection to answer (disconnect
// cleanup). NOTIFY fan-out inside do still happens.
func (e exec) runNotifyOnly(cmd domain.Command, do func(domain.Command) (any, error)) {
	e.handle(cmd, true, do)
}

func (e exec) handle(cmd domain.Command, suppressResult bool, do func(domain.Command) (any, error)) {
	e.log.Info("command: handle start",
		"action", cmd.Action, "commandId", cmd.CommandID, "requestId", cmd.RequestID, "userId", cmd.UserID)
	resultPayload, err := do(cmd)
	if err != nil {
		e.log.Error("command: handle error",
			"action", cmd.Action, "commandId", cmd.CommandID, "requestId", cmd.RequestID,
			"userId", cmd.UserID, "error", err)
		if !suppressResult {
			e.sendEvent(e.buildResult(cmd, domain.StatusError, e.errorPayload(cmd, err)))
		}
		return
	}
	e.log.Info("command: handle success",
		"action", cmd.Action, "commandId", cmd.CommandID, "requestId", cmd.RequestID, "userId", cmd.UserID)
	if !suppressResult {
		e.sendEvent(e.buildResult(cmd, domain.StatusSuccess, resultPayload))
	}
}

// sendEvent resolves the target's routing key and hands the event to the
// publish service. A missing routing key is not an error: the event is
// still ledgered and expires unacked.
func (e exec) sendEvent(event domain.Event) {
	e.log.Info("command: send event",
		"action", event.Action, "eventId", event.EventID, "userId", event.UserID,
		"type", event.Type, "status", event.Status)
	routingKey, err := e.presence.RoutingKeyByUserID(event.UserID)
	if err != nil {
		e.log.Warn("command: routing key lookup failed", "userId", event.UserID, "error", err)
		routingKey = ""
	}
	e.publisher.SaveAndPublish(routingKey, event)
}

func (e exec) buildEvent(
	cmd domain.Command,
	userID string,
	eventType domain.EventType,
	action domain.Action,
	payload any,
	status domain.Status,
) domain.Event {
	return domain.Event{
		EventID:   domain.NewID("evt"),
		RequestID: cmd.RequestID,
		CommandID: cmd.CommandID,
		UserID:    userID,
		Type:      eventType,
		Action:    action,
		Payload:   writePayload(payload, e.log),
		Status:    status,
		SentAt:    time.Now().UTC(),
	}
}

func (e exec) buildResult(cmd domain.Command, status domain.Status, payload any) domain.Event {
	return e.buildEvent(cmd, cmd.UserID, domain.EventResult, cmd.Action, payload, status)
}

// errorPayload shapes a failure for delivery: recognized kinds keep their
// stable code and reason, anything else is reported as internal.
func (e exec) errorPayload(cmd domain.Command, err error) map[string]any {
	detail := map[string]any{
		"action":    cmd.Action,
		"requestId": cmd.RequestID,
		"commandId": cmd.CommandID,
		"userId":    cmd.UserID,
		"time":      domain.FormatWireTime(time.Now()),
	}
	var recognized *errors.Error
	if stderrors.As(err, &recognized) {
		return map[string]any{
			"code":   recognized.Kind.Code,
			"reason": recognized.Message(),
			"detail": detail,
		}
	}
	return map[string]any{
		"code":   "internal",
		"reason": err.Error(),
		"detail": detail,
	}
}

func writePayload(payload any, log *slog.Logger) string {
	if payload == nil {
		return ""
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		log.Error("command: payload encoding failed", "error", err)
		return ""
	}
	return string(encoded)
}
