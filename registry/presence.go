package registry

import (
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// PresenceStore maps a user to the routing key of the gateway currently
// holding their connection. The gateway bridge writes it; handlers only
// read it to address outbound events.
type PresenceStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPresenceStore(db *badger.DB, log *slog.Logger) *PresenceStore {
	return &PresenceStore{db: db, log: log}
}

func (p *PresenceStore) RoutingKeyByUserID(userID string) (string, error) {
	if userID == "" {
		return "", nil
	}
	var routingKey string
	err := p.db.View(func(txn *badger.Txn) error {
		value, err := readValue(txn, presenceKey(userID))
		if err != nil {
			return err
		}
		routingKey = string(value)
		return nil
	})
	return routingKey, err
}

func (p *PresenceStore) Set(userID, routingKey string) error {
	if userID == "" || routingKey == "" {
		return nil
	}
	return runUpdate(p.db, func(txn *badger.Txn) error {
		return txn.Set(presenceKey(userID), []byte(routingKey))
	})
}

func (p *PresenceStore) Clear(userID string) error {
	if userID == "" {
		return nil
	}
	return runUpdate(p.db, func(txn *badger.Txn) error {
		return txn.Delete(presenceKey(userID))
	})
}
