// Package store persists local client state in BoltDB: small markers
// (visitor session id, last-tracked date) and last-known query
// snapshots. With no data directory it runs memory-only, and every
// operation degrades silently when the database is unusable.
package store

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketMarkers   = []byte("markers")
	bucketSnapshots = []byte("snapshots")
)

// Store implements domain.LocalStorage and domain.SnapshotStore.
type Store struct {
	db     *bolt.DB
	logger *slog.Logger
	mu     sync.RWMutex

	// In-memory mirror; sole storage in memory-only mode
	markers   map[string]string
	snapshots map[string][]byte
}

// Open creates or opens the local store under dataDir. An empty dataDir
// selects memory-only mode (no persistence across restarts).
func Open(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		logger:    logger,
		markers:   make(map[string]string),
		snapshots: make(map[string][]byte),
	}
	if dataDir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "shoplight.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketMarkers, bucketSnapshots} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === domain.LocalStorage ===

// Get reads a marker. A missing key or an unusable database both read
// as absent.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	if v, ok := s.markers[key]; ok {
		s.mu.RUnlock()
		return v, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return "", false
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bucketMarkers); b != nil {
			if v := b.Get([]byte(key)); v != nil {
				value = make([]byte, len(v))
				copy(value, v)
			}
		}
		return nil
	})
	if err != nil || value == nil {
		return "", false
	}

	s.mu.Lock()
	s.markers[key] = string(value)
	s.mu.Unlock()

	return string(value), true
}

// Set writes a marker. Write failures are logged, never surfaced:
// callers degrade rather than crash.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	s.markers[key] = value
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketMarkers).Put([]byte(key), []byte(value))
	})
	if err != nil {
		s.logger.Warn("failed to persist marker", "key", key, "error", err)
	}
}

// === domain.SnapshotStore ===

func (s *Store) GetSnapshot(key string) ([]byte, bool) {
	s.mu.RLock()
	if data, ok := s.snapshots[key]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bucketSnapshots); b != nil {
			if v := b.Get([]byte(key)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
		}
		return nil
	})
	if data == nil {
		return nil, false
	}

	s.mu.Lock()
	s.snapshots[key] = data
	s.mu.Unlock()

	return data, true
}

func (s *Store) SaveSnapshot(key string, data []byte) error {
	s.mu.Lock()
	s.snapshots[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(key), data)
	})
}

// DeleteSnapshots removes every snapshot addressed by the key prefix,
// matching the cache's prefix semantics (the bare key and its
// parameterized children).
func (s *Store) DeleteSnapshots(prefix string) {
	s.mu.Lock()
	for k := range s.snapshots {
		if matchesPrefix(k, prefix) {
			delete(s.snapshots, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.Seek([]byte(prefix)); k != nil && strings.HasPrefix(string(k), prefix); k, _ = c.Next() {
			if matchesPrefix(string(k), prefix) {
				if err := b.Delete(k); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Clear wipes all markers and snapshots (logout)
func (s *Store) Clear() {
	s.mu.Lock()
	s.markers = make(map[string]string)
	s.snapshots = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketMarkers, bucketSnapshots} {
			if err := tx.DeleteBucket(bucket); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("failed to clear store", "error", err)
	}
}

func matchesPrefix(key, prefix string) bool {
	if key == prefix {
		return true
	}
	if strings.HasSuffix(prefix, ":") {
		return strings.HasPrefix(key, prefix)
	}
	return strings.HasPrefix(key, prefix+":")
}
