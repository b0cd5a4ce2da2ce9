package services_test

import (
	"fmt"
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

func Test_Save_And_Publish_Persists_First(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := registry.NewEventRegistry(openTestDB(t), slog.Default(), 5*time.Second, 10)
	publisher := mocks.NewMockEventPublisher(ctrl)
	service := services.NewEventPublishService(events, publisher, slog.Default())

	event := pendingEvent("evt-1", "alice")
	publisher.EXPECT().Publish("gateway-1", event).Return(nil).Times(1)

	service.SaveAndPublish("gateway-1", event)

	_, found := events.Get("evt-1")
	req.True(found)
}

func Test_Save_And_Publish_Skips_Delivery_Without_Routing_Key(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := registry.NewEventRegistry(openTestDB(t), slog.Default(), 5*time.Second, 10)
	publisher := mocks.NewMockEventPublisher(ctrl)
	service := services.NewEventPublishService(events, publisher, slog.Default())

	// No Publish expectation: the transport must not be touched
	service.SaveAndPublish("", pendingEvent("evt-1", "alice"))

	_, found := events.Get("evt-1")
	req.True(found)
}

func Test_Save_And_Publish_Survives_Transport_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := registry.NewEventRegistry(openTestDB(t), slog.Default(), 5*time.Second, 10)
	publisher := mocks.NewMockEventPublisher(ctrl)
	service := services.NewEventPublishService(events, publisher, slog.Default())

	event := pendingEvent("evt-1", "alice")
	publisher.EXPECT().Publish("gateway-1", event).Return(fmt.Errorf("gateway gone")).Times(1)

	service.SaveAndPublish("gateway-1", event)

	// The ledger entry survives the failed delivery
	_, found := events.Get("evt-1")
	req.True(found)
}

func Test_Acknowledge_Retires_Event(t *testing.T) {
	req := require.New(t)

	events := registry.NewEventRegistry(openTestDB(t), slog.Default(), 5*time.Second, 10)
	service := services.NewAcknowledgeService(events, slog.Default())

	events.Save(pendingEvent("evt-1", "alice"))
	service.Acknowledge(domain.Ack{AckID: "ack-1", EventID: "evt-1", SentAt: time.Now()})

	_, found := events.Get("evt-1")
	req.False(found)

	// A duplicate ack is a no-op
	service.Acknowledge(domain.Ack{AckID: "ack-2", EventID: "evt-1", SentAt: time.Now()})
}
