package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/kiosk/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketState = []byte("state")
	bucketViews = []byte("views")
)

// StateStore implements domain.Store using BoltDB.
type StateStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

var _ domain.Store = (*StateStore)(nil)

// NewStateStore opens (or creates) the state database at path.
// An empty path keeps everything in memory.
func NewStateStore(path string) (*StateStore, error) {
	if path == "" {
		// Memory-only mode (no persistence)
		return &StateStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketState, bucketViews} {
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

	return &StateStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *StateStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func itemKey(kind domain.Kind, id string) string {
	return string(kind) + ":" + id
}

// === Generic helpers ===

func (s *StateStore) get(bucket []byte, key string, dest any) (bool, error) {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return true, json.Unmarshal(data, dest)
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false, nil
	}

	// Read from BoltDB
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return true, json.Unmarshal(data, dest)
}

func (s *StateStore) set(bucket []byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if s.db != nil {
		err = s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucket).Put([]byte(key), data)
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.cache[string(bucket)+":"+key] = data
	s.mu.Unlock()
	return nil
}

func (s *StateStore) delete(bucket []byte, key string) error {
	s.mu.Lock()
	delete(s.cache, string(bucket)+":"+key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}

// scan returns every value under prefix, keyed by the remainder of the key
func (s *StateStore) scan(bucket []byte, prefix string) (map[string][]byte, error) {
	out := make(map[string][]byte)

	if s.db == nil {
		// Memory-only: the cache is the whole store
		cachePrefix := string(bucket) + ":" + prefix
		s.mu.RLock()
		for k, v := range s.cache {
			if rest, ok := strings.CutPrefix(k, cachePrefix); ok {
				out[rest] = v
			}
		}
		s.mu.RUnlock()
		return out, nil
	}

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucket).Cursor()
		p := []byte(prefix)
		for k, v := c.Seek(p); k != nil && strings.HasPrefix(string(k), prefix); k, v = c.Next() {
			data := make([]byte, len(v))
			copy(data, v)
			out[strings.TrimPrefix(string(k), prefix)] = data
		}
		return nil
	})
	return out, err
}

// === User state ===

func (s *StateStore) GetState(kind domain.Kind, id string) (domain.UserState, bool) {
	var state domain.UserState
	ok, err := s.get(bucketState, itemKey(kind, id), &state)
	if err != nil {
		return domain.UserState{}, false
	}
	return state, ok
}

func (s *StateStore) SaveState(kind domain.Kind, id string, state domain.UserState) error {
	return s.set(bucketState, itemKey(kind, id), state)
}

// States returns every persisted state of kind, keyed by item id
func (s *StateStore) States(kind domain.Kind) (map[string]domain.UserState, error) {
	raw, err := s.scan(bucketState, string(kind)+":")
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.UserState, len(raw))
	for id, data := range raw {
		var state domain.UserState
		if err := json.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("corrupt state for %s %q: %w", kind, id, err)
		}
		out[id] = state
	}
	return out, nil
}

func (s *StateStore) DeleteState(kind domain.Kind, id string) error {
	return s.delete(bucketState, itemKey(kind, id))
}

// === Saved views ===

func (s *StateStore) SaveView(kind domain.Kind, name string, view any) error {
	return s.set(bucketViews, itemKey(kind, name), view)
}

// GetView decodes the saved view into dest
func (s *StateStore) GetView(kind domain.Kind, name string, dest any) (bool, error) {
	return s.get(bucketViews, itemKey(kind, name), dest)
}

// Views lists saved view names of kind, sorted
func (s *StateStore) Views(kind domain.Kind) ([]string, error) {
	raw, err := s.scan(bucketViews, string(kind)+":")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *StateStore) DeleteView(kind domain.Kind, name string) error {
	return s.delete(bucketViews, itemKey(kind, name))
}
