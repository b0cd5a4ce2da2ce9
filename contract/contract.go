//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-session-core/domain"
)

// EventPublisher is the outbound transport. Delivery failures are the
// retry sweep's problem, not the caller's: publish errors are logged and
// the ledger keeps the event pending.
type EventPublisher interface {
	Publish(routingKey string, event domain.Event) error
}

// PresenceLookup resolves the routing key of the gateway currently
// serving a user. An empty key means the user has no live connection.
type PresenceLookup interface {
	RoutingKeyByUserID(userID string) (string, error)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
