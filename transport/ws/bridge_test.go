package ws

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"chat-session-core/domain"
)

func Test_Publish_Without_Gateway_Drops_Silently(t *testing.T) {
	req := require.New(t)
	bridge := NewBridge(slog.Default())

	// No gateway registered: the ledger covers recovery, so no error
	err := bridge.Publish("gateway-ghost", domain.Event{EventID: "evt-1", UserID: "alice"})
	req.NoError(err)
}
