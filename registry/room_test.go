package registry

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chat-session-core/domain"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestRoomRegistry(t *testing.T) *RoomRegistry {
	return NewRoomRegistry(openTestDB(t), slog.Default(), time.Minute, time.Hour)
}

func Test_Create_Room_And_Join(t *testing.T) {
	req := require.New(t)
	rooms := newTestRoomRegistry(t)

	room, err := rooms.CreateRoom("alice")
	req.NoError(err)
	req.NotEmpty(room.RoomID)
	req.Equal("alice", room.OwnerID)

	// The owner received an implicit join token at creation
	has, err := rooms.HasJoinApproveToken(room.RoomID, "alice")
	req.NoError(err)
	req.True(has)

	added, err := rooms.AddMemberWithNickname(room.RoomID, "alice", "Alice")
	req.NoError(err)
	req.True(added)

	saved, err := rooms.SaveJoinApproveToken(room.RoomID, "bob")
	req.NoError(err)
	req.True(saved)
	added, err = rooms.AddMemberWithNickname(room.RoomID, "bob", "Bob")
	req.NoError(err)
	req.True(added)

	summary, err := rooms.GetRoomSummary(room.RoomID)
	req.NoError(err)
	req.NotNil(summary)
	req.Equal("alice", summary.OwnerID)
	req.Equal([]domain.RoomEntry{
		{UserID: "alice", Nickname: "Alice"},
		{UserID: "bob", Nickname: "Bob"},
	}, summary.Entries)
	req.NotNil(summary.AutoDeleteAt)

	member, err := rooms.IsMember(room.RoomID, "bob")
	req.NoError(err)
	req.True(member)

	bobRooms, err := rooms.FindRooms("bob")
	req.NoError(err)
	req.Equal([]string{room.RoomID}, bobRooms)
}

func Test_Join_Without_Room_Fails(t *testing.T) {
	req := require.New(t)
	rooms := newTestRoomRegistry(t)

	added, err := rooms.AddMemberWithNickname("room-ghost", "bob", "Bob")
	req.NoError(err)
	req.False(added)

	saved, err := rooms.SaveJoinApproveToken("room-ghost", "bob")
	req.NoError(err)
	req.False(saved)
}

func Test_Token_Save_And_Revoke(t *testing.T) {
	req := require.New(t)
	rooms := newTestRoomRegistry(t)

	room, err := rooms.CreateRoom("alice")
	req.NoError(err)

	saved, err := rooms.SaveJoinApproveToken(room.RoomID, "bob")
	req.NoError(err)
	req.True(saved)

	has, err := rooms.HasJoinApproveToken(room.RoomID, "bob")
	req.NoError(err)
	req.True(has)

	req.NoError(rooms.RevokeJoinApproveToken(room.RoomID, "bob"))
	has, err = rooms.HasJoinApproveToken(room.RoomID, "bob")
	req.NoError(err)
	req.False(has)

	// Revoking twice stays a no-op
	req.NoError(rooms.RevokeJoinApproveToken(room.RoomID, "bob"))
}

func Test_Last_Member_Leave_Deletes_Room(t *testing.T) {
	req := require.New(t)
	rooms := newTestRoomRegistry(t)

	room, err := rooms.CreateRoom("alice")
	req.NoError(err)
	_, err = rooms.AddMemberWithNickname(room.RoomID, "alice", "Alice")
	req.NoError(err)
	_, err = rooms.MarkOnline(room.RoomID, "alice")
	req.NoError(err)

	removed, err := rooms.RemoveMember(room.RoomID, "alice")
	req.NoError(err)
	req.True(removed)

	// The room and every key referencing it are gone
	ownerID, err := rooms.FindOwnerID(room.RoomID)
	req.NoError(err)
	req.Empty(ownerID)

	summary, err := rooms.GetRoomSummary(room.RoomID)
	req.NoError(err)
	req.Nil(summary)

	all, err := rooms.FindAllRooms()
	req.NoError(err)
	req.Empty(all)

	aliceRooms, err := rooms.FindRooms("alice")
	req.NoError(err)
	req.Empty(aliceRooms)

	has, err := rooms.HasJoinApproveToken(room.RoomID, "alice")
	req.NoError(err)
	req.False(has)

	nickname, err := rooms.FindMemberNickname(room.RoomID, "alice")
	req.NoError(err)
	req.Empty(nickname)
}

func Test_Owner_Leave_Passes_Ownership(t *testing.T) {
	req := require.New(t)
	rooms := newTestRoomRegistry(t)

	room, err := rooms.CreateRoom("alice")
	req.NoError(err)
	_, err = rooms.AddMemberWithNickname(room.RoomID, "alice", "Alice")
	req.NoError(err)
	_, err = rooms.AddMemberWithNickname(room.RoomID, "bob", "Bob")
	req.NoError(err)

	removed, err := rooms.RemoveMember(room.RoomID, "alice")
	req.NoError(err)
	req.True(removed)

	ownerID, err := rooms.FindOwnerID(room.RoomID)
	req.NoError(err)
	req.Equal("bob", ownerID)

	members, err := rooms.FindMembers(room.RoomID)
	req.NoError(err)
	req.Equal([]string{"bob"}, members)
}

func Test_Mark_Presence_Reports_Change(t *testing.T) {
	req := require.New(t)
	rooms := newTestRoomRegistry(t)

	room, err := rooms.CreateRoom("alice")
	req.NoError(err)
	_, err = rooms.AddMemberWithNickname(room.RoomID, "alice", "Alice")
	req.NoError(err)

	changed, err := rooms.MarkOnline(room.RoomID, "alice")
	req.NoError(err)
	req.True(changed)

	changed, err = rooms.MarkOnline(room.RoomID, "alice")
	req.NoError(err)
	req.False(changed)

	online, err := rooms.FindOnlineMembers(room.RoomID)
	req.NoError(err)
	req.Equal([]string{"alice"}, online)

	changed, err = rooms.MarkOffline(room.RoomID, "alice")
	req.NoError(err)
	req.True(changed)

	online, err = rooms.FindOnlineMembers(room.RoomID)
	req.NoError(err)
	req.Empty(online)
}

func Test_Delete_Room_Removes_Back_References(t *testing.T) {
	req := require.New(t)
	rooms := newTestRoomRegistry(t)

	room, err := rooms.CreateRoom("alice")
	req.NoError(err)
	_, err = rooms.AddMemberWithNickname(room.RoomID, "alice", "Alice")
	req.NoError(err)
	_, err = rooms.AddMemberWithNickname(room.RoomID, "bob", "Bob")
	req.NoError(err)
	_, err = rooms.MarkOnline(room.RoomID, "bob")
	req.NoError(err)

	req.NoError(rooms.DeleteRoom(room.RoomID))

	summary, err := rooms.GetRoomSummary(room.RoomID)
	req.NoError(err)
	req.Nil(summary)

	for _, userID := range []string{"alice", "bob"} {
		userRooms, err := rooms.FindRooms(userID)
		req.NoError(err)
		req.Empty(userRooms)
	}

	all, err := rooms.FindAllRooms()
	req.NoError(err)
	req.Empty(all)
}

func Test_Auto_Delete_Deadline(t *testing.T) {
	req := require.New(t)
	rooms := newTestRoomRegistry(t)

	room, err := rooms.CreateRoom("alice")
	req.NoError(err)

	at, err := rooms.FindAutoDeleteAt(room.RoomID)
	req.NoError(err)
	req.NotNil(at)

	due, err := rooms.IsAutoDeleteDue(room.RoomID, time.Now())
	req.NoError(err)
	req.False(due)

	due, err = rooms.IsAutoDeleteDue(room.RoomID, at.Add(time.Second))
	req.NoError(err)
	req.True(due)
}

func Test_Auto_Delete_Disabled_Without_TTL(t *testing.T) {
	req := require.New(t)
	rooms := NewRoomRegistry(openTestDB(t), slog.Default(), time.Minute, 0)

	room, err := rooms.CreateRoom("alice")
	req.NoError(err)

	at, err := rooms.FindAutoDeleteAt(room.RoomID)
	req.NoError(err)
	req.Nil(at)

	due, err := rooms.IsAutoDeleteDue(room.RoomID, time.Now().Add(24*time.Hour))
	req.NoError(err)
	req.False(due)
}
