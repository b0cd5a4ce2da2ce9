package registry

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-session-core/domain"
)

func newTestEventRegistry(t *testing.T) *EventRegistry {
	return NewEventRegistry(openTestDB(t), slog.Default(), 5*time.Second, 10)
}

func testEvent(eventID string) domain.Event {
	return domain.Event{
		EventID:   eventID,
		RequestID: "req-1",
		CommandID: "cmd-1",
		UserID:    "alice",
		Type:      domain.EventResult,
		Action:    domain.ActionJoin,
		Payload:   `{"roomId":"room-1"}`,
		Status:    domain.StatusSuccess,
		SentAt:    time.Now().UTC(),
	}
}

func Test_Ledger_Round_Trip(t *testing.T) {
	req := require.New(t)
	events := newTestEventRegistry(t)
	event := testEvent("evt-1")

	events.Save(event)

	registered, found := events.Get("evt-1")
	req.True(found)
	req.Equal(event.EventID, registered.Event.EventID)
	req.Equal(event.Payload, registered.Event.Payload)
	req.Equal(event.Action, registered.Event.Action)
	req.True(event.SentAt.Equal(registered.Event.SentAt))
	req.Zero(registered.RetryCount)
}

func Test_Find_Due_Honors_Schedule(t *testing.T) {
	req := require.New(t)
	events := newTestEventRegistry(t)
	now := time.Now()

	events.SaveAt(testEvent("evt-early"), now.Add(-time.Second))
	events.SaveAt(testEvent("evt-late"), now.Add(time.Hour))

	due := events.FindDue(now, 10)
	req.Len(due, 1)
	req.Equal("evt-early", due[0].Event.EventID)

	due = events.FindDue(now.Add(2*time.Hour), 10)
	req.Len(due, 2)
	// Ordered by scheduled time ascending
	req.Equal("evt-early", due[0].Event.EventID)
	req.Equal("evt-late", due[1].Event.EventID)
}

func Test_Find_Due_Respects_Batch_Size(t *testing.T) {
	req := require.New(t)
	events := newTestEventRegistry(t)
	now := time.Now()

	events.SaveAt(testEvent("evt-1"), now.Add(-3*time.Second))
	events.SaveAt(testEvent("evt-2"), now.Add(-2*time.Second))
	events.SaveAt(testEvent("evt-3"), now.Add(-time.Second))

	due := events.FindDue(now, 2)
	req.Len(due, 2)
	req.Equal("evt-1", due[0].Event.EventID)
	req.Equal("evt-2", due[1].Event.EventID)
}

func Test_Reschedule_Bumps_Attempt_Counter(t *testing.T) {
	req := require.New(t)
	events := newTestEventRegistry(t)
	now := time.Now()

	events.SaveAt(testEvent("evt-1"), now.Add(-time.Second))

	events.Reschedule("evt-1", now.Add(-time.Second))
	registered, found := events.Get("evt-1")
	req.True(found)
	req.Equal(1, registered.RetryCount)

	events.Reschedule("evt-1", now.Add(-time.Second))
	registered, _ = events.Get("evt-1")
	req.Equal(2, registered.RetryCount)

	// The old pending slot moved instead of accumulating
	due := events.FindDue(now, 10)
	req.Len(due, 1)
}

func Test_Remove_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	events := newTestEventRegistry(t)

	events.SaveAt(testEvent("evt-1"), time.Now().Add(-time.Second))
	events.Remove("evt-1")

	_, found := events.Get("evt-1")
	req.False(found)
	req.Empty(events.FindDue(time.Now(), 10))

	// Acking twice, or acking an unknown id, is harmless
	events.Remove("evt-1")
	events.Remove("evt-ghost")
}

func Test_Backoff_Grows_And_Caps(t *testing.T) {
	req := require.New(t)
	events := NewEventRegistry(openTestDB(t), slog.Default(), 5*time.Second, 10)
	base := time.Now()

	previous := events.CalculateNextAttemptAt(0, base)
	req.Equal(base.Add(5*time.Second), previous)

	for retry := 1; retry <= 10; retry++ {
		next := events.CalculateNextAttemptAt(retry, base)
		req.True(next.After(previous), "backoff must grow with the attempt count")
		previous = next
	}

	capped := events.CalculateNextAttemptAt(10, base)
	req.Equal(capped, events.CalculateNextAttemptAt(11, base))
	req.Equal(capped, events.CalculateNextAttemptAt(50, base))
}
