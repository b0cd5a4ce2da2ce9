package domain

import (
	"time"
)

type EventType string

const (
	EventResult  EventType = "RESULT"
	EventNotify  EventType = "NOTIFY"
	EventMessage EventType = "MESSAGE"
)

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

// Event is one outbound message: the result of a command for its actor,
// a notification to other members, or a relayed chat message. Each event
// is persisted in the delivery ledger before any publish attempt.
type Event struct {
	EventID   string    `json:"eventId"`
	RequestID string    `json:"requestId"`
	CommandID string    `json:"commandId"`
	UserID    string    `json:"userId"`
	Type      EventType `json:"type"`
	Action    Action    `json:"action"`
	Payload   string    `json:"payload"`
	Status    Status    `json:"status"`
	SentAt    time.Time `json:"sentAt"`
}

// Ack retires exactly one event from the delivery ledger. Duplicate or
// out-of-order acks are harmless no-ops.
type Ack struct {
	AckID   string
	EventID string
	SentAt  time.Time
}

// RegisteredEvent is a ledger entry paired with its current attempt count.
type RegisteredEvent struct {
	Event      Event
	RetryCount int
}
