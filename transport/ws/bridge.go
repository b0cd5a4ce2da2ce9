package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"chat-session-core/domain"
)

const writeTimeout = 10 * time.Second

// Bridge maps routing keys to live gateway connections and implements
// the outbound event transport. Losing a gateway mid-delivery is not an
// error worth surfacing: the ledger keeps every event pending until the
// receiving gateway acks it.
type Bridge struct {
	mu    sync.RWMutex
	conns map[string]*gatewayConn
	log   *slog.Logger
}

// gatewayConn serializes writes; gorilla/websocket allows only one
// concurrent writer per connection.
type gatewayConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewBridge(log *slog.Logger) *Bridge {
	return &Bridge{conns: make(map[string]*gatewayConn), log: log}
}

// Register binds a routing key to a connection. A reconnecting gateway
// reuses its key; the stale connection is closed and replaced.
func (b *Bridge) Register(routingKey string, conn *websocket.Conn) {
	b.mu.Lock()
	previous, exists := b.conns[routingKey]
	b.conns[routingKey] = &gatewayConn{conn: conn}
	b.mu.Unlock()
	if exists {
		b.log.Warn("bridge: replacing gateway connection", "routingKey", routingKey)
		_ = previous.conn.Close()
	}
}

// Unregister drops the binding only if it still points at conn, so a
// reconnect that already replaced the entry is left alone.
func (b *Bridge) Unregister(routingKey string, conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if current, ok := b.conns[routingKey]; ok && current.conn == conn {
		delete(b.conns, routingKey)
	}
}

// Publish writes the event frame to the gateway behind routingKey. An
// unknown key means the gateway is gone; the event is dropped here and
// recovered by the retry sweep once the gateway returns.
func (b *Bridge) Publish(routingKey string, event domain.Event) error {
	b.mu.RLock()
	gateway, ok := b.conns[routingKey]
	b.mu.RUnlock()
	if !ok {
		b.log.Warn("bridge: no gateway for routing key, event dropped",
			"routingKey", routingKey, "eventId", event.EventID)
		return nil
	}

	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if err := gateway.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return gateway.conn.WriteJSON(eventFrame{Kind: kindEvent, Event: event})
}
