// Package depstore persists the per-module dependency information discovered
// during generation, for later linking and dead-code elimination.
package depstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store gives access to the dependency database.
type Store struct {
	db *bolt.DB
}

var initDB = map[string]func(tx *bolt.Tx) error{}

// Open opens the dependency database at the given path, creating it if it
// does not exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStore(db)
}

// NewStore creates a Store from a bolt database, initializing any missing
// buckets.
func NewStore(db *bolt.DB) (*Store, error) {
	s := &Store{db}
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
