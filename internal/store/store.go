// Package store holds the canonical copy of every reservation. The durable
// file is the source of truth across processes; the in-memory map is a
// read-through/write-through cache refreshed on every externally visible
// operation.
package store

import (
	"errors"
	"sync"

	"github.com/Hassaan9289/AirlinePoc/internal/models"
)

// ErrNotFound is returned when a reservation identifier is unknown.
var ErrNotFound = errors.New("reservation not found")

// Store is the reservation persistence abstraction. Refresh reloads the
// cache from durable storage and Persist writes it back; both are
// best-effort for implementations whose durable medium can fail.
type Store interface {
	Refresh()
	Get(reservationID string) (*models.Reservation, error)
	Put(r *models.Reservation)
	All() []*models.Reservation
	Persist()
}

// Memory is an in-memory-only Store used by tests.
type Memory struct {
	mu           sync.Mutex
	reservations map[string]models.Reservation
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{reservations: make(map[string]models.Reservation)}
}

func (m *Memory) Refresh() {}

func (m *Memory) Get(reservationID string) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[reservationID]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *Memory) Put(r *models.Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[r.ReservationID] = *r
}

func (m *Memory) All() []*models.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Reservation, 0, len(m.reservations))
	for id := range m.reservations {
		r := m.reservations[id]
		out = append(out, &r)
	}
	return out
}

func (m *Memory) Persist() {}
