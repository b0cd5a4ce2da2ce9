package services

import (
	"log/slog"

	"chat-session-core/domain"
	"chat-session-core/registry"
)

// AcknowledgeService retires delivered events from the ledger. Duplicate
// and out-of-order acks fall through to the registry's idempotent remove.
type AcknowledgeService struct {
	events registry.IEventRegistry
	log    *slog.Logger
}

func NewAcknowledgeService(events registry.IEventRegistry, log *slog.Logger) *AcknowledgeService {
	return &AcknowledgeService{events: events, log: log}
}

func (s *AcknowledgeService) Acknowledge(ack domain.Ack) {
	if ack.EventID == "" {
		s.log.Warn("ack: missing event id", "ackId", ack.AckID)
		return
	}
	s.log.Info("ack: retiring event", "ackId", ack.AckID, "eventId", ack.EventID)
	s.events.Remove(ack.EventID)
}
