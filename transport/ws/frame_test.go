package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-session-core/domain"
)

func Test_Command_Frame_Maps_To_Domain(t *testing.T) {
	req := require.New(t)

	frame := commandFrame{
		CommandID: "cmd-1",
		RequestID: "req-1",
		UserID:    "alice",
		Action:    "JOIN",
		Payload:   `{"roomId":"room-1","nickName":"Alice"}`,
		SentAt:    "20260314092653123",
	}

	cmd := frame.toCommand()
	req.Equal("cmd-1", cmd.CommandID)
	req.Equal(domain.ActionJoin, cmd.Action)
	req.Equal(time.Date(2026, 3, 14, 9, 26, 53, 123000000, time.UTC), cmd.SentAt)
}

func Test_Unknown_Action_String_Maps_To_Unknown(t *testing.T) {
	req := require.New(t)

	cmd := commandFrame{Action: "SELF_DESTRUCT"}.toCommand()
	req.Equal(domain.ActionUnknown, cmd.Action)
}

func Test_Garbled_Timestamp_Falls_Back_To_Now(t *testing.T) {
	req := require.New(t)

	before := time.Now().UTC()
	cmd := commandFrame{Action: "JOIN", SentAt: "not-a-time"}.toCommand()
	req.False(cmd.SentAt.Before(before))
}
