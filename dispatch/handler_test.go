package dispatch

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-session-core/domain"
	"chat-session-core/mocks"
	"chat-session-core/services"
)

type handlerFixture struct {
	service   *mocks.MockIRoomRegistryService
	publisher *mocks.MockIEventPublishService
	presence  *mocks.MockPresenceLookup
	log       *slog.Logger
}

func newHandlerFixture(t *testing.T) handlerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return handlerFixture{
		service:   mocks.NewMockIRoomRegistryService(ctrl),
		publisher: mocks.NewMockIEventPublishService(ctrl),
		presence:  mocks.NewMockPresenceLookup(ctrl),
		log:       slog.Default(),
	}
}

func command(action domain.Action, payload string) domain.Command {
	return domain.Command{
		CommandID: "cmd-1",
		RequestID: "req-1",
		UserID:    "alice",
		Action:    action,
		Payload:   payload,
		SentAt:    time.Now().UTC(),
	}
}

// capture collects the events a handler emits, keyed by nothing; order
// is the emission order.
func capture(f handlerFixture, events *[]domain.Event) {
	f.publisher.EXPECT().
		SaveAndPublish(gomock.Any(), gomock.Any()).
		Do(func(_ string, event domain.Event) {
			*events = append(*events, event)
		}).
		AnyTimes()
	f.presence.EXPECT().RoutingKeyByUserID(gomock.Any()).Return("gateway-1", nil).AnyTimes()
}

func Test_Room_Create_Emits_Success_Result(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	f.service.EXPECT().CreateRoom("alice").
		Return(domain.Room{RoomID: "room-1", OwnerID: "alice", CreatedAt: createdAt}, nil)

	handler := NewRoomCreateHandler(f.service, f.publisher, f.presence, f.log)
	handler.Handle(command(domain.ActionRoomCreate, ""))

	req.Len(events, 1)
	result := events[0]
	req.Equal(domain.EventResult, result.Type)
	req.Equal(domain.StatusSuccess, result.Status)
	req.Equal(domain.ActionRoomCreate, result.Action)
	req.Equal("alice", result.UserID)
	req.Equal("req-1", result.RequestID)

	var payload map[string]any
	req.NoError(json.Unmarshal([]byte(result.Payload), &payload))
	req.Equal("room-1", payload["roomId"])
	req.Equal("20260314092653000", payload["createdAt"])
}

func Test_Join_Notifies_Current_Members(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	f.service.EXPECT().JoinRoom("room-1", "alice", "Alice").Return(services.JoinResult{
		Summary: domain.RoomSummary{
			RoomID:  "room-1",
			OwnerID: "bob",
			Entries: []domain.RoomEntry{
				{UserID: "alice", Nickname: "Alice"},
				{UserID: "bob", Nickname: "Bob", Online: true},
			},
		},
		NotifyPayload: map[string]any{"userId": "alice", "nickname": "Alice"},
	}, nil)

	handler := NewJoinHandler(f.service, f.publisher, f.presence, f.log)
	handler.Handle(command(domain.ActionJoin, `{"roomId":"room-1","nickName":"Alice"}`))

	req.Len(events, 3)

	// The joiner is a current member too and gets the notification
	// alongside everyone else, on top of the RESULT.
	notified := []string{}
	for _, event := range events[:2] {
		req.Equal(domain.EventNotify, event.Type)
		req.Equal(domain.ActionJoin, event.Action)
		notified = append(notified, event.UserID)
	}
	req.ElementsMatch([]string{"alice", "bob"}, notified)

	result := events[2]
	req.Equal(domain.EventResult, result.Type)
	req.Equal("alice", result.UserID)
	req.Equal(domain.StatusSuccess, result.Status)
}

func Test_Join_Without_Nickname_Is_A_Recognized_Error(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	// The service must never be reached on a validation failure

	handler := NewJoinHandler(f.service, f.publisher, f.presence, f.log)
	handler.Handle(command(domain.ActionJoin, `{"roomId":"room-1"}`))

	req.Len(events, 1)
	result := events[0]
	req.Equal(domain.StatusError, result.Status)

	var payload map[string]any
	req.NoError(json.Unmarshal([]byte(result.Payload), &payload))
	req.Equal("CSM-REQ-001", payload["code"])
}

func Test_Join_Request_Routes_Notification(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	f.service.EXPECT().PrepareJoinRequest("room-1", "alice", "Alice").Return(services.JoinRequestResult{
		DirectApprove: false,
		TargetUserID:  "bob",
		Payload:       map[string]any{"requestedUserId": "alice", "roomId": "room-1"},
	}, nil)

	handler := NewJoinRequestHandler(f.service, f.publisher, f.presence, f.log)
	handler.Handle(command(domain.ActionJoinRequest, `{"roomId":"room-1","nickName":"Alice"}`))

	req.Len(events, 2)
	req.Equal(domain.EventNotify, events[0].Type)
	req.Equal("bob", events[0].UserID)
	req.Equal(domain.ActionJoinRequest, events[0].Action)

	var payload map[string]any
	req.NoError(json.Unmarshal([]byte(events[1].Payload), &payload))
	req.Equal(true, payload["pending"])
}

func Test_Leave_Notifies_Remaining_Online_Members(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	f.service.EXPECT().LeaveRoom("room-1", "alice").Return(services.LeaveResult{
		RoomID:                 "room-1",
		NotifyPayload:          map[string]any{"userId": "alice", "nickname": "Alice"},
		RemainingOnlineMembers: []string{"bob", "clara"},
	}, nil)

	handler := NewLeaveHandler(f.service, f.publisher, f.presence, f.log)
	handler.Handle(command(domain.ActionLeave, `{"roomId":"room-1"}`))

	req.Len(events, 3)
	req.Equal("bob", events[0].UserID)
	req.Equal("clara", events[1].UserID)
	req.Equal(domain.EventResult, events[2].Type)
	req.Equal("alice", events[2].UserID)
}

func Test_Client_Message_Excludes_Sender(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	f.service.EXPECT().PrepareClientMessage("room-1", "alice", "hello").Return(
		map[string]any{"roomId": "room-1", "userId": "alice", "message": "hello", "nickname": "Alice"},
		[]string{"alice", "bob"},
		nil,
	)

	handler := NewClientMessageHandler(f.service, f.publisher, f.presence, f.log)
	handler.Handle(command(domain.ActionClientMessage, `{"roomId":"room-1","message":"hello"}`))

	req.Len(events, 2)
	req.Equal(domain.EventMessage, events[0].Type)
	req.Equal("bob", events[0].UserID)
	req.Equal(domain.EventResult, events[1].Type)
}

func Test_Conn_Closed_Suppresses_Result(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	f.service.EXPECT().LeaveAllRoomsForDisconnect("alice").Return(services.LeaveAllResult{
		Rooms: []string{"room-1"},
		Results: []services.LeaveResult{{
			RoomID:                 "room-1",
			NotifyPayload:          map[string]any{"userId": "alice"},
			RemainingOnlineMembers: []string{"bob"},
		}},
	}, nil)

	handler := NewConnClosedHandler(f.service, f.publisher, f.presence, f.log)
	handler.Handle(command(domain.ActionConnClosed, ""))

	// Only the LEAVE notification: the actor has no connection to answer
	req.Len(events, 1)
	req.Equal(domain.EventNotify, events[0].Type)
	req.Equal("bob", events[0].UserID)
	req.Equal(domain.ActionLeave, events[0].Action)
}

func Test_Unknown_Action_Answers_With_Stable_Code(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	handler := NewUnknownHandler(f.publisher, f.presence, f.log)
	handler.Handle(command(domain.ActionUnknown, ""))

	req.Len(events, 1)
	req.Equal(domain.StatusError, events[0].Status)

	var payload map[string]any
	req.NoError(json.Unmarshal([]byte(events[0].Payload), &payload))
	req.Equal("CSM-CMD-001", payload["code"])
}

func Test_Dispatcher_Falls_Back_To_Unknown(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	var events []domain.Event
	capture(f, &events)

	dispatcher := NewDispatcher(f.log, NewUnknownHandler(f.publisher, f.presence, f.log))
	dispatcher.Dispatch(command(domain.ActionFrom("SELF_DESTRUCT"), ""))

	req.Len(events, 1)
	req.Equal(domain.StatusError, events[0].Status)
}
