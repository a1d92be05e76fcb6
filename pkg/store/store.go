// Package store keeps the history of a calculator session in a bbolt
// database.
package store

import (
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.rpncalc.dev/pkg/logutil"
	. "src.rpncalc.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const bucketCmd = "cmd"

// DBStore is the permanent storage backend for a session.
type DBStore interface {
	Store
}

type dbStore struct {
	db *bolt.DB
	// Removed when the store is closed; empty if the store does not own its
	// file.
	tempPath string
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return newStoreFromDB(db)
}

// NewTempStore creates a new Store backed by a temporary file, which is
// removed when the Store is closed.
func NewTempStore() (DBStore, error) {
	f, err := os.CreateTemp("", "rpncalc-session-*.db")
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}
	name := f.Name()
	f.Close()

	st, err := NewStore(name)
	if err != nil {
		os.Remove(name)
		return nil, err
	}
	st.(*dbStore).tempPath = name
	logger.Println("session store at", name)
	return st, nil
}

func newStoreFromDB(db *bolt.DB) (DBStore, error) {
	st := &dbStore{db: db}
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the store, removing its file if it is temporary.
func (s *dbStore) Close() error {
	err := s.db.Close()
	if s.tempPath != "" {
		if rmErr := os.Remove(s.tempPath); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	return err
}
