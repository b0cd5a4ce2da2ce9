package registry

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Presence_Set_Get_Clear(t *testing.T) {
	req := require.New(t)
	presence := NewPresenceStore(openTestDB(t), slog.Default())

	routingKey, err := presence.RoutingKeyByUserID("alice")
	req.NoError(err)
	req.Empty(routingKey)

	req.NoError(presence.Set("alice", "gateway-1"))
	routingKey, err = presence.RoutingKeyByUserID("alice")
	req.NoError(err)
	req.Equal("gateway-1", routingKey)

	// A reconnect through another gateway overwrites the binding
	req.NoError(presence.Set("alice", "gateway-2"))
	routingKey, err = presence.RoutingKeyByUserID("alice")
	req.NoError(err)
	req.Equal("gateway-2", routingKey)

	req.NoError(presence.Clear("alice"))
	routingKey, err = presence.RoutingKeyByUserID("alice")
	req.NoError(err)
	req.Empty(routingKey)
}
