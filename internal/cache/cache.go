// Package cache provides the shared key-value store with per-entry TTL,
// backed by an embedded Badger database. Values are stored as JSON.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// Store wraps a Badger database for JSON value storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store at the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache store at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that lives only for the process lifetime.
// Used by tests and one-shot CLI runs.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory cache store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get unmarshals the value stored under key into dest. A missing key returns
// (false, nil); TTL expiry surfaces as a missing key.
func (s *Store) Get(key string, dest any) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache read failed for %s: %w", key, err)
	}
	return true, nil
}

// SetWithTTL stores value under key, expiring after ttl.
func (s *Store) SetWithTTL(key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value for %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), data).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("cache write failed for %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil && err != badger.ErrKeyNotFound {
		return fmt.Errorf("cache delete failed for %s: %w", key, err)
	}
	return nil
}
