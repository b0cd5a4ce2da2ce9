package registry

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Compound operations are optimistic transactions; a conflicting
	// concurrent commit is retried a bounded number of times.
	conflictRetries = 5

	cleanupBatchSize = 100
)

var setMarker = []byte("1")

// runUpdate executes fn as one atomic transaction, retrying on commit
// conflicts. All sub-writes succeed or none take effect.
func runUpdate(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for range conflictRetries {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func keyExists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func readValue(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func hasAnyWithPrefix(txn *badger.Txn, prefix []byte) bool {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()
	it.Seek(prefix)
	return it.ValidForPrefix(prefix)
}

// suffixesWithPrefix lists the id part of every set entry under prefix,
// in ascending key order. A non-positive limit means no limit.
func suffixesWithPrefix(txn *badger.Txn, prefix []byte, limit int) []string {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	var ids []string
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		ids = append(ids, string(it.Item().Key()[len(prefix):]))
		if limit > 0 && len(ids) == limit {
			break
		}
	}
	return ids
}

// deletePrefixBatched removes every key under prefix in bounded batches,
// each batch in its own transaction, so cleanup of an arbitrarily large
// set never blocks the store. forEach, when set, runs per removed id
// inside the batch transaction.
func deletePrefixBatched(db *badger.DB, prefix []byte, forEach func(txn *badger.Txn, id string) error) error {
	for {
		var ids []string
		err := db.View(func(txn *badger.Txn) error {
			ids = suffixesWithPrefix(txn, prefix, cleanupBatchSize)
			return nil
		})
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		err = runUpdate(db, func(txn *badger.Txn) error {
			for _, id := range ids {
				if err := txn.Delete(append(prefix[:len(prefix):len(prefix)], id...)); err != nil {
					return err
				}
				if forEach != nil {
					if err := forEach(txn, id); err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		if len(ids) < cleanupBatchSize {
			return nil
		}
	}
}
