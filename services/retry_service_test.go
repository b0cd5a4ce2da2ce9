package services_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-session-core/domain"
	"chat-session-core/mocks"
	"chat-session-core/registry"
	"chat-session-core/services"
)

func pendingEvent(eventID, userID string) domain.Event {
	return domain.Event{
		EventID: eventID,
		UserID:  userID,
		Type:    domain.EventResult,
		Action:  domain.ActionJoin,
		Status:  domain.StatusSuccess,
		SentAt:  time.Now().UTC(),
	}
}

func Test_Retry_Republishes_And_Reschedules(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := openTestDB(t)
	events := registry.NewEventRegistry(db, slog.Default(), 5*time.Second, 10)
	presence := registry.NewPresenceStore(db, slog.Default())
	publisher := mocks.NewMockEventPublisher(ctrl)

	req.NoError(presence.Set("alice", "gateway-1"))
	events.SaveAt(pendingEvent("evt-1", "alice"), time.Now().Add(-time.Second))

	publisher.EXPECT().Publish("gateway-1", gomock.Any()).Return(nil).Times(1)

	service := services.NewEventRetryService(events, presence, publisher, slog.Default(), 100, 0)
	retried := service.RetryDue(time.Now())
	req.Equal(1, retried)

	registered, found := events.Get("evt-1")
	req.True(found)
	req.Equal(1, registered.RetryCount)

	// Nothing is due anymore until the backoff elapses
	req.Empty(events.FindDue(time.Now(), 100))
}

func Test_Retry_Skips_Publish_For_Offline_User(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := openTestDB(t)
	events := registry.NewEventRegistry(db, slog.Default(), 5*time.Second, 10)
	presence := registry.NewPresenceStore(db, slog.Default())
	publisher := mocks.NewMockEventPublisher(ctrl)

	events.SaveAt(pendingEvent("evt-1", "alice"), time.Now().Add(-time.Second))

	service := services.NewEventRetryService(events, presence, publisher, slog.Default(), 100, 0)
	retried := service.RetryDue(time.Now())
	req.Zero(retried)

	// The event is still pending, just pushed back
	registered, found := events.Get("evt-1")
	req.True(found)
	req.Equal(1, registered.RetryCount)
}

func Test_Retry_Drops_After_Attempt_Budget(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := openTestDB(t)
	events := registry.NewEventRegistry(db, slog.Default(), 5*time.Second, 10)
	presence := registry.NewPresenceStore(db, slog.Default())
	publisher := mocks.NewMockEventPublisher(ctrl)

	events.SaveAt(pendingEvent("evt-1", "alice"), time.Now().Add(-2*time.Second))
	events.Reschedule("evt-1", time.Now().Add(-time.Second))

	service := services.NewEventRetryService(events, presence, publisher, slog.Default(), 100, 1)
	retried := service.RetryDue(time.Now())
	req.Zero(retried)

	_, found := events.Get("evt-1")
	req.False(found)
}
