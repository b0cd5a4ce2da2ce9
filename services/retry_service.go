package services

import (
	"log/slog"
	"time"

	"chat-session-core/contract"
	"chat-session-core/registry"
)

// EventRetryService re-drives pending events from the ledger. Each sweep
// pulls one batch of due events; every event is either re-published and
// rescheduled with exponential backoff, or dropped once it exhausts the
// attempt budget. Dropping is deliberate: an event nobody acked within
// the budget addresses a connection that is long gone.
type EventRetryService struct {
	events      registry.IEventRegistry
	presence    contract.PresenceLookup
	publisher   contract.EventPublisher
	log         *slog.Logger
	batchSize   int
	maxAttempts int
}

func NewEventRetryService(
	events registry.IEventRegistry,
	presence contract.PresenceLookup,
	publisher contract.EventPublisher,
	log *slog.Logger,
	batchSize, maxAttempts int,
) *EventRetryService {
	return &EventRetryService{
		events:      events,
		presence:    presence,
		publisher:   publisher,
		log:         log,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// RetryDue processes one batch of due events and reports how many were
// re-published.
func (s *EventRetryService) RetryDue(now time.Time) int {
	due := s.events.FindDue(now, s.batchSize)
	retried := 0
	for _, registered := range due {
		event := registered.Event
		if s.maxAttempts > 0 && registered.RetryCount >= s.maxAttempts {
			s.log.Warn("event retry: attempt budget exhausted, dropping",
				"eventId", event.EventID, "userId", event.UserID, "attempts", registered.RetryCount)
			s.events.Remove(event.EventID)
			continue
		}
		routingKey, err := s.presence.RoutingKeyByUserID(event.UserID)
		if err != nil {
			s.log.Warn("event retry: presence lookup failed", "eventId", event.EventID, "error", err)
		} else if routingKey != "" {
			if err := s.publisher.Publish(routingKey, event); err != nil {
				s.log.Warn("event retry: delivery failed",
					"eventId", event.EventID, "routingKey", routingKey, "error", err)
			} else {
				retried++
			}
		}
		s.events.Reschedule(event.EventID, s.events.CalculateNextAttemptAt(registered.RetryCount, now))
	}
	return retried
}
