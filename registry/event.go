//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../mocks/mock_event_registry.go -package=mocks
package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"chat-session-core/domain"
)

const (
	eventPayloadPrefix = "evt:payload:"
	eventRetryPrefix   = "evt:retry:"
	eventSchedPrefix   = "evt:sched:"
	eventPendingPrefix = "evt:pending:"

	// The payload TTL must outlive the scheduled attempt, so a retry poll
	// never finds an index entry without its payload.
	eventTTLBuffer = time.Second
)

// IEventRegistry is the at-least-once delivery ledger: every outbound
// event is stored until acknowledged, indexed by its next attempt time.
type IEventRegistry interface {
	Save(event domain.Event)
	SaveAt(event domain.Event, nextAttemptAt time.Time)
	Reschedule(eventID string, nextAttemptAt time.Time)
	Remove(eventID string)
	Get(eventID string) (domain.RegisteredEvent, bool)
	FindDue(now time.Time, batchSize int) []domain.RegisteredEvent
	CalculateNextAttemptAt(retryCount int, base time.Time) time.Time
}

type EventRegistry struct {
	db           *badger.DB
	log          *slog.Logger
	initialDelay time.Duration
	maxExponent  int
}

func NewEventRegistry(db *badger.DB, log *slog.Logger, initialDelay time.Duration, maxExponent int) *EventRegistry {
	return &EventRegistry{db: db, log: log, initialDelay: initialDelay, maxExponent: maxExponent}
}

// Save records the event as pending with a zeroed attempt counter,
// scheduled one initial delay from now. Ledger writes fail silently: a
// broken event is logged and skipped, never propagated to the handler.
func (r *EventRegistry) Save(event domain.Event) {
	r.SaveAt(event, time.Now().Add(r.initialDelay))
}

func (r *EventRegistry) SaveAt(event domain.Event, nextAttemptAt time.Time) {
	if event.EventID == "" {
		r.log.Warn("event registry: skip save, missing event id")
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		r.log.Warn("event registry: skip save, encoding failed", "eventId", event.EventID, "error", err)
		return
	}
	err = runUpdate(r.db, func(txn *badger.Txn) error {
		if err := r.dropPendingSlot(txn, event.EventID); err != nil {
			return err
		}
		entry := badger.NewEntry(eventPayloadKey(event.EventID), payload).WithTTL(payloadTTL(nextAttemptAt))
		if err := txn.SetEntry(entry); err != nil {
			return err
		}
		if err := txn.Set(eventRetryKey(event.EventID), []byte("0")); err != nil {
			return err
		}
		return r.writePendingSlot(txn, event.EventID, nextAttemptAt)
	})
	if err != nil {
		r.log.Error("event registry: save failed", "eventId", event.EventID, "error", err)
	}
}

// Reschedule bumps the attempt counter, moves the event to its new slot
// in the pending index and extends the payload's expiry to match. An
// event whose payload already expired is treated as resolved and its
// ledger remnants are dropped.
func (r *EventRegistry) Reschedule(eventID string, nextAttemptAt time.Time) {
	if eventID == "" {
		return
	}
	err := runUpdate(r.db, func(txn *badger.Txn) error {
		payload, err := readValue(txn, eventPayloadKey(eventID))
		if err != nil {
			return err
		}
		if payload == nil {
			return r.deleteLedgerEntry(txn, eventID)
		}
		retry, err := readValue(txn, eventRetryKey(eventID))
		if err != nil {
			return err
		}
		count := parseRetryCount(retry)
		if err := txn.Set(eventRetryKey(eventID), []byte(strconv.Itoa(count+1))); err != nil {
			return err
		}
		if err := r.dropPendingSlot(txn, eventID); err != nil {
			return err
		}
		entry := badger.NewEntry(eventPayloadKey(eventID), payload).WithTTL(payloadTTL(nextAttemptAt))
		if err := txn.SetEntry(entry); err != nil {
			return err
		}
		return r.writePendingSlot(txn, eventID, nextAttemptAt)
	})
	if err != nil {
		r.log.Error("event registry: reschedule failed", "eventId", eventID, "error", err)
	}
}

// Remove retires an event: payload, attempt counter and pending index
// entry go in one transaction. Unknown ids are a no-op.
func (r *EventRegistry) Remove(eventID string) {
	if eventID == "" {
		return
	}
	err := runUpdate(r.db, func(txn *badger.Txn) error {
		return r.deleteLedgerEntry(txn, eventID)
	})
	if err != nil {
		r.log.Error("event registry: remove failed", "eventId", eventID, "error", err)
	}
}

func (r *EventRegistry) Get(eventID string) (domain.RegisteredEvent, bool) {
	if eventID == "" {
		return domain.RegisteredEvent{}, false
	}
	var registered domain.RegisteredEvent
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		payload, err := readValue(txn, eventPayloadKey(eventID))
		if err != nil || payload == nil {
			return err
		}
		var event domain.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		retry, err := readValue(txn, eventRetryKey(eventID))
		if err != nil {
			return err
		}
		registered = domain.RegisteredEvent{Event: event, RetryCount: parseRetryCount(retry)}
		found = true
		return nil
	})
	if err != nil {
		r.log.Error("event registry: get failed", "eventId", eventID, "error", err)
		return domain.RegisteredEvent{}, false
	}
	return registered, found
}

// FindDue returns up to batchSize pending events scheduled at or before
// now, ordered by scheduled time ascending. Ids whose payload already
// expired are skipped as resolved.
func (r *EventRegistry) FindDue(now time.Time, batchSize int) []domain.RegisteredEvent {
	if batchSize <= 0 {
		return nil
	}
	var due []domain.RegisteredEvent
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(eventPendingPrefix)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		horizon := []byte(fmt.Sprintf("%s%019d", eventPendingPrefix, now.UnixMilli()+1))
		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(due) < batchSize; it.Next() {
			key := it.Item().KeyCopy(nil)
			if string(key) >= string(horizon) {
				break
			}
			eventID := string(key[len(eventPendingPrefix)+19+1:])
			payload, err := readValue(txn, eventPayloadKey(eventID))
			if err != nil {
				return err
			}
			if payload == nil {
				continue
			}
			var event domain.Event
			if err := json.Unmarshal(payload, &event); err != nil {
				r.log.Warn("event registry: skip undecodable event", "eventId", eventID, "error", err)
				continue
			}
			retry, err := readValue(txn, eventRetryKey(eventID))
			if err != nil {
				return err
			}
			due = append(due, domain.RegisteredEvent{Event: event, RetryCount: parseRetryCount(retry)})
		}
		return nil
	})
	if err != nil {
		r.log.Error("event registry: findDue failed", "error", err)
		return nil
	}
	return due
}

// CalculateNextAttemptAt applies exponential backoff to the base time:
// initialDelay * 2^retryCount, with the exponent capped.
func (r *EventRegistry) CalculateNextAttemptAt(retryCount int, base time.Time) time.Time {
	exponent := max(retryCount, 0)
	exponent = min(exponent, r.maxExponent)
	return base.Add(r.initialDelay * (1 << exponent))
}

func (r *EventRegistry) writePendingSlot(txn *badger.Txn, eventID string, at time.Time) error {
	slot := pendingSlotKey(eventID, at)
	if err := txn.Set(slot, []byte(eventID)); err != nil {
		return err
	}
	return txn.Set(eventSchedKey(eventID), slot)
}

// dropPendingSlot removes the event's current pending index entry, if
// one is recorded.
func (r *EventRegistry) dropPendingSlot(txn *badger.Txn, eventID string) error {
	slot, err := readValue(txn, eventSchedKey(eventID))
	if err != nil {
		return err
	}
	if slot == nil {
		return nil
	}
	return txn.Delete(slot)
}

func (r *EventRegistry) deleteLedgerEntry(txn *badger.Txn, eventID string) error {
	if err := r.dropPendingSlot(txn, eventID); err != nil {
		return err
	}
	for _, key := range [][]byte{
		eventPayloadKey(eventID),
		eventRetryKey(eventID),
		eventSchedKey(eventID),
	} {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// payloadTTL keeps the stored event alive until well past its scheduled
// attempt: twice the remaining delay plus a small buffer.
func payloadTTL(nextAttemptAt time.Time) time.Duration {
	delay := max(time.Until(nextAttemptAt), time.Second)
	return 2*delay + eventTTLBuffer
}

func parseRetryCount(value []byte) int {
	if len(value) == 0 {
		return 0
	}
	count, err := strconv.Atoi(string(value))
	if err != nil {
		return 0
	}
	return count
}

func eventPayloadKey(eventID string) []byte {
	return []byte(eventPayloadPrefix + eventID)
}

func eventRetryKey(eventID string) []byte {
	return []byte(eventRetryPrefix + eventID)
}

func eventSchedKey(eventID string) []byte {
	return []byte(eventSchedPrefix + eventID)
}

func pendingSlotKey(eventID string, at time.Time) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", eventPendingPrefix, at.UnixMilli(), eventID))
}
