package services_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chat-session-core/errors"
	"chat-session-core/registry"
	"chat-session-core/services"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestRoomService(t *testing.T) *services.RoomRegistryService {
	rooms := registry.NewRoomRegistry(openTestDB(t), slog.Default(), time.Minute, time.Hour)
	return services.NewRoomRegistryService(rooms, slog.Default())
}

func Test_Create_Then_Join_As_Owner(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	room, err := service.CreateRoom("alice")
	req.NoError(err)

	result, err := service.JoinRoom(room.RoomID, "alice", "Alice")
	req.NoError(err)
	req.Equal(room.RoomID, result.Summary.RoomID)
	req.Len(result.Summary.Entries, 1)
	req.Equal("Alice", result.Summary.Entries[0].Nickname)
}

func Test_Join_Without_Token_Is_Refused(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	room, err := service.CreateRoom("alice")
	req.NoError(err)

	_, err = service.JoinRoom(room.RoomID, "bob", "Bob")
	kind, recognized := errors.KindOf(err)
	req.True(recognized)
	req.Equal(errors.JoinPermissionRequired, kind)
}

func Test_Join_Twice_Is_Refused(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	room, err := service.CreateRoom("alice")
	req.NoError(err)
	_, err = service.JoinRoom(room.RoomID, "alice", "Alice")
	req.NoError(err)

	_, err = service.JoinRoom(room.RoomID, "alice", "Alice")
	kind, recognized := errors.KindOf(err)
	req.True(recognized)
	req.Equal(errors.AlreadyJoined, kind)
}

func Test_Join_Request_Routes_To_Owner(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	room, err := service.CreateRoom("alice")
	req.NoError(err)

	// Bob holds no token: the request must reach the owner
	result, err := service.PrepareJoinRequest(room.RoomID, "bob", "Bob")
	req.NoError(err)
	req.False(result.DirectApprove)
	req.Equal("alice", result.TargetUserID)
	req.Equal("bob", result.Payload["requestedUserId"])

	// The owner's own request short-circuits to a direct approval
	result, err = service.PrepareJoinRequest(room.RoomID, "alice", "Alice")
	req.NoError(err)
	req.True(result.DirectApprove)
	req.Equal("alice", result.TargetUserID)
}

func Test_Approve_Join_Requires_Ownership(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	room, err := service.CreateRoom("alice")
	req.NoError(err)

	_, err = service.ApproveJoin(room.RoomID, "mallory", "bob", true)
	kind, recognized := errors.KindOf(err)
	req.True(recognized)
	req.Equal(errors.NotRoomOwner, kind)

	payload, err := service.ApproveJoin(room.RoomID, "alice", "bob", true)
	req.NoError(err)
	req.Equal(true, payload["approved"])

	_, err = service.JoinRoom(room.RoomID, "bob", "Bob")
	req.NoError(err)
}

func Test_Leave_Passes_Ownership_And_Notifies(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	room, err := service.CreateRoom("alice")
	req.NoError(err)
	_, err = service.JoinRoom(room.RoomID, "alice", "Alice")
	req.NoError(err)
	_, err = service.ApproveJoin(room.RoomID, "alice", "bob", true)
	req.NoError(err)
	_, err = service.JoinRoom(room.RoomID, "bob", "Bob")
	req.NoError(err)
	_, err = service.MarkOnline(room.RoomID, "bob")
	req.NoError(err)

	result, err := service.LeaveRoom(room.RoomID, "alice")
	req.NoError(err)
	req.Equal(room.RoomID, result.RoomID)
	req.Equal("bob", result.NotifyPayload["newOwnerId"])
	req.Equal([]string{"bob"}, result.RemainingOnlineMembers)
}

func Test_Leave_Requires_Membership(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	room, err := service.CreateRoom("alice")
	req.NoError(err)

	_, err = service.LeaveRoom(room.RoomID, "bob")
	kind, recognized := errors.KindOf(err)
	req.True(recognized)
	req.Equal(errors.NotRoomMember, kind)
}

func Test_Disconnect_Sweep_Leaves_Every_Room(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	first, err := service.CreateRoom("alice")
	req.NoError(err)
	second, err := service.CreateRoom("alice")
	req.NoError(err)
	for _, roomID := range []string{first.RoomID, second.RoomID} {
		_, err = service.JoinRoom(roomID, "alice", "Alice")
		req.NoError(err)
	}

	swept, err := service.LeaveAllRoomsForDisconnect("alice")
	req.NoError(err)
	req.Len(swept.Rooms, 2)
	req.Len(swept.Results, 2)

	summaries, err := service.ListRoomSummaries("alice")
	req.NoError(err)
	req.Empty(summaries)
}

func Test_Presence_Requires_Membership(t *testing.T) {
	req := require.New(t)
	service := newTestRoomService(t)

	room, err := service.CreateRoom("alice")
	req.NoError(err)

	_, err = service.MarkOnline(room.RoomID, "bob")
	kind, recognized := errors.KindOf(err)
	req.True(recognized)
	req.Equal(errors.NotRoomMember, kind)

	_, err = service.MarkOnline("", "bob")
	kind, recognized = errors.KindOf(err)
	req.True(recognized)
	req.Equal(errors.RoomIDRequired, kind)
}

func Test_Delete_Expired_Rooms(t *testing.T) {
	req := require.New(t)
	rooms := registry.NewRoomRegistry(openTestDB(t), slog.Default(), time.Minute, time.Hour)
	service := services.NewRoomRegistryService(rooms, slog.Default())

	room, err := service.CreateRoom("alice")
	req.NoError(err)

	deleted, err := service.DeleteExpiredRooms(time.Now())
	req.NoError(err)
	req.Zero(deleted)

	deleted, err = service.DeleteExpiredRooms(time.Now().Add(2 * time.Hour))
	req.NoError(err)
	req.Equal(1, deleted)

	summary, err := service.GetRoomSummary(room.RoomID)
	req.Error(err)
	req.Empty(summary.RoomID)
}
