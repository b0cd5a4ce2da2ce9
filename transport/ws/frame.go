package ws

import (
	"time"

	"chat-session-core/domain"
)

// Frame kinds exchanged with edge gateways. Every websocket message is
// one JSON frame; the kind field selects which of the optional sections
// is populated.
const (
	kindHello   = "hello"
	kindCommand = "command"
	kindAck     = "ack"
	kindEvent   = "event"
)

type inboundFrame struct {
	Kind    string        `json:"kind"`
	Hello   *helloFrame   `json:"hello,omitempty"`
	Command *commandFrame `json:"command,omitempty"`
	Ack     *ackFrame     `json:"ack,omitempty"`
}

// helloFrame is the gateway's first frame: its stable routing key plus
// the users whose connections it currently holds.
type helloFrame struct {
	RoutingKey string   `json:"routingKey"`
	UserIDs    []string `json:"userIds"`
}

type commandFrame struct {
	CommandID string `json:"commandId"`
	RequestID string `json:"requestId"`
	UserID    string `json:"userId"`
	Action    string `json:"action"`
	Payload   string `json:"payload"`
	SentAt    string `json:"sentAt"`
}

type ackFrame struct {
	AckID   string `json:"ackId"`
	EventID string `json:"eventId"`
	SentAt  string `json:"sentAt"`
}

type eventFrame struct {
	Kind  string       `json:"kind"`
	Event domain.Event `json:"event"`
}

func (f commandFrame) toCommand() domain.Command {
	return domain.Command{
		CommandID: f.CommandID,
		RequestID: f.RequestID,
		UserID:    f.UserID,
		Action:    domain.ActionFrom(f.Action),
		Payload:   f.Payload,
		SentAt:    parseWireTimeOrNow(f.SentAt),
	}
}

func (f ackFrame) toAck() domain.Ack {
	return domain.Ack{
		AckID:   f.AckID,
		EventID: f.EventID,
		SentAt:  parseWireTimeOrNow(f.SentAt),
	}
}

// parseWireTimeOrNow tolerates gateways that omit or garble timestamps;
// the receive time is close enough for every consumer of SentAt.
func parseWireTimeOrNow(value string) time.Time {
	if value == "" {
		return time.Now().UTC()
	}
	parsed, err := domain.ParseWireTime(value)
	if err != nil {
		return time.Now().UTC()
	}
	return parsed
}
