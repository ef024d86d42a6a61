package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Hassaan9289/AirlinePoc/internal/models"
)

// FileStore persists reservations to a JSON file keyed by reservation
// identifier. Writes replace the file atomically (write-temp-then-rename)
// so a concurrent reader never observes a partial file. Persistence
// failures are logged, not raised: a write that fails to persist still
// updates in-memory state for the remainder of the process lifetime.
type FileStore struct {
	path string

	mu    sync.Mutex
	cache map[string]models.Reservation
}

// NewFileStore creates a file-backed store. The file is not required to
// exist; an absent file is an empty store.
func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path:  path,
		cache: make(map[string]models.Reservation),
	}
	s.Refresh()
	return s
}

// Refresh reloads all reservations from disk, replacing the entire
// in-memory set. The set is left untouched if the file is absent or
// unreadable at the top level; individual records that fail to decode are
// skipped and logged.
func (s *FileStore) Refresh() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: unable to load reservation store: %v", err)
		}
		return
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("store: reservation store was not a JSON object; ignoring refresh: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]models.Reservation, len(entries))
	for id, payload := range entries {
		var r models.Reservation
		if err := json.Unmarshal(payload, &r); err != nil {
			log.Printf("store: skipping invalid reservation entry %s: %v", id, err)
			continue
		}
		s.cache[id] = r
	}
}

// Get returns the reservation with the given identifier.
func (s *FileStore) Get(reservationID string) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.cache[reservationID]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

// Put stores a reservation in the cache. Callers persist afterwards.
func (s *FileStore) Put(r *models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[r.ReservationID] = *r
}

// All returns every cached reservation.
func (s *FileStore) All() []*models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Reservation, 0, len(s.cache))
	for id := range s.cache {
		r := s.cache[id]
		out = append(out, &r)
	}
	return out
}

// Persist serializes every cached reservation back to the file, overwriting
// it via an atomic replace. Failures are logged and do not roll back the
// in-memory mutation.
func (s *FileStore) Persist() {
	s.mu.Lock()
	snapshot := make(map[string]models.Reservation, len(s.cache))
	for id, r := range s.cache {
		snapshot[id] = r
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Printf("store: failed to encode reservation store: %v", err)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".reservations-*.json")
	if err != nil {
		log.Printf("store: failed to persist reservation store: %v", err)
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		log.Printf("store: failed to persist reservation store: %v", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		log.Printf("store: failed to persist reservation store: %v", err)
		return
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		log.Printf("store: failed to persist reservation store: %v", err)
	}
}
