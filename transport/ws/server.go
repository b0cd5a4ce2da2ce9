package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"chat-session-core/dispatch"
	"chat-session-core/domain"
	"chat-session-core/registry"
	"chat-session-core/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Server accepts edge-gateway websocket connections and feeds their
// frames into the dispatch pipeline. It runs as a supervised worker:
// Run blocks until the context is canceled, then shuts the listener
// down gracefully.
type Server struct {
	addr       string
	bridge     *Bridge
	dispatcher *dispatch.Dispatcher
	acks       *services.AcknowledgeService
	presence   *registry.PresenceStore
	log        *slog.Logger
}

func NewServer(
	addr string,
	bridge *Bridge,
	dispatcher *dispatch.Dispatcher,
	acks *services.AcknowledgeService,
	presence *registry.PresenceStore,
	log *slog.Logger,
) *Server {
	return &Server{
		addr:       addr,
		bridge:     bridge,
		dispatcher: dispatcher,
		acks:       acks,
		presence:   presence,
		log:        log,
	}
}

func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/gateway", s.handleGateway)

	server := &http.Server{Addr: s.addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting gateway listener", "addr", s.addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleGateway(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("gateway upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	go s.serveConn(conn)
}

// serveConn owns one gateway connection: it insists on a hello frame
// first, then pumps command and ack frames until the connection dies.
// Teardown clears presence and synthesizes a CONN_CLOSED command per
// announced user so room state never outlives the connection.
func (s *Server) serveConn(conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	hello, ok := s.awaitHello(conn)
	if !ok {
		return
	}
	s.bridge.Register(hello.RoutingKey, conn)
	for _, userID := range hello.UserIDs {
		if err := s.presence.Set(userID, hello.RoutingKey); err != nil {
			s.log.Warn("gateway presence write failed", "userId", userID, "error", err)
		}
	}
	s.log.Info("Gateway connected", "routingKey", hello.RoutingKey, "users", len(hello.UserIDs))

	defer s.teardown(hello, conn)

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			s.log.Info("Gateway disconnected", "routingKey", hello.RoutingKey, "error", err)
			return
		}
		switch frame.Kind {
		case kindCommand:
			if frame.Command == nil {
				s.log.Warn("gateway command frame without body", "routingKey", hello.RoutingKey)
				continue
			}
			s.dispatcher.Dispatch(frame.Command.toCommand())
		case kindAck:
			if frame.Ack == nil {
				s.log.Warn("gateway ack frame without body", "routingKey", hello.RoutingKey)
				continue
			}
			s.acks.Acknowledge(frame.Ack.toAck())
		default:
			s.log.Warn("gateway frame of unknown kind", "kind", frame.Kind, "routingKey", hello.RoutingKey)
		}
	}
}

func (s *Server) awaitHello(conn *websocket.Conn) (*helloFrame, bool) {
	var frame inboundFrame
	if err := conn.ReadJSON(&frame); err != nil {
		s.log.Warn("gateway hello read failed", "error", err)
		return nil, false
	}
	if frame.Kind != kindHello || frame.Hello == nil || frame.Hello.RoutingKey == "" {
		s.log.Warn("gateway first frame is not a valid hello", "kind", frame.Kind)
		return nil, false
	}
	return frame.Hello, true
}

func (s *Server) teardown(hello *helloFrame, conn *websocket.Conn) {
	s.bridge.Unregister(hello.RoutingKey, conn)
	for _, userID := range hello.UserIDs {
		if err := s.presence.Clear(userID); err != nil {
			s.log.Warn("gateway presence clear failed", "userId", userID, "error", err)
		}
		s.dispatcher.Dispatch(domain.Command{
			CommandID: domain.NewID("cmd"),
			UserID:    userID,
			Action:    domain.ActionConnClosed,
			SentAt:    time.Now().UTC(),
		})
	}
}
