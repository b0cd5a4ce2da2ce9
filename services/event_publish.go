//go:generate go run go.uber.org/mock/mockgen -source=event_publish.go -destination=../mocks/mock_event_publish.go -package=mocks
package services

import (
	"log/slog"

	"chat-session-core/contract"
	"chat-session-core/domain"
	"chat-session-core/registry"
)

// IEventPublishService persists an event in the delivery ledger, then
// attempts delivery. The persist always happens first, so a transport
// failure or a gateway crash before acking never loses the event.
type IEventPublishService interface {
	SaveAndPublish(routingKey string, event domain.Event)
}

type EventPublishService struct {
	events    registry.IEventRegistry
	publisher contract.EventPublisher
	log       *slog.Logger
}

func NewEventPublishService(events registry.IEventRegistry, publisher contract.EventPublisher, log *slog.Logger) *EventPublishService {
	return &EventPublishService{events: events, publisher: publisher, log: log}
}

// SaveAndPublish records the event, then fires it at the transport. An
// empty routing key skips publication (the user has no live gateway);
// the ledger entry stays pending until acked or expired. Publish errors
// are logged, never retried inline — recovery belongs to the retry sweep.
func (s *EventPublishService) SaveAndPublish(routingKey string, event domain.Event) {
	s.events.Save(event)
	if routingKey == "" {
		s.log.Warn("event publish: no routing key, delivery skipped",
			"eventId", event.EventID, "userId", event.UserID)
		return
	}
	if err := s.publisher.Publish(routingKey, event); err != nil {
		s.log.Warn("event publish: delivery failed",
			"eventId", event.EventID, "routingKey", routingKey, "error", err)
	}
}
