package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-session-core/dispatch"
	"chat-session-core/registry"
	"chat-session-core/runtime/workers"
	"chat-session-core/services"
	"chat-session-core/transport/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so defers (database cleanup included)
// always execute before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Registries & Services
	rooms := registry.NewRoomRegistry(db, log, config.JoinApproveTTL, config.RoomAutoDeleteTTL)
	events := registry.NewEventRegistry(db, log, config.InitialRetryDelay, config.MaxBackoffExponent)
	presence := registry.NewPresenceStore(db, log)

	bridge := ws.NewBridge(log)
	roomService := services.NewRoomRegistryService(rooms, log)
	publishService := services.NewEventPublishService(events, bridge, log)
	ackService := services.NewAcknowledgeService(events, log)
	retryService := services.NewEventRetryService(
		events, presence, bridge, log, config.RetryBatchSize, config.MaxRetryAttempts)

	// 4. Dispatch pipeline
	dispatcher := dispatch.NewDispatcher(log,
		dispatch.NewRoomCreateHandler(roomService, publishService, presence, log),
		dispatch.NewRoomListHandler(roomService, publishService, presence, log),
		dispatch.NewJoinRequestHandler(roomService, publishService, presence, log),
		dispatch.NewJoinApproveHandler(roomService, publishService, presence, log),
		dispatch.NewJoinHandler(roomService, publishService, presence, log),
		dispatch.NewLeaveHandler(roomService, publishService, presence, log),
		dispatch.NewOnlineHandler(roomService, publishService, presence, log),
		dispatch.NewOfflineHandler(roomService, publishService, presence, log),
		dispatch.NewClientMessageHandler(roomService, publishService, presence, log),
		dispatch.NewConnClosedHandler(roomService, publishService, presence, log),
		dispatch.NewUnknownHandler(publishService, presence, log),
	)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised workers: gateway listener plus the two sweepers
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := ws.NewServer(address, bridge, dispatcher, ackService, presence, log)

	sup := workers.NewSupervisor(log)
	sup.Add(
		server,
		workers.NewRoomSweeper(roomService, log, config.RoomSweepInterval),
		workers.NewRetrySweeper(retryService, log, config.RetrySweepInterval),
	)

	log.Info("Starting session core", "address", address)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}
