// Package websocket fans reservation lifecycle events out to clients
// watching a flight's cabin.
package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// MessageType identifies a broadcast event.
type MessageType string

const (
	MessageTypeSeatsSelected        MessageType = "seats_selected"
	MessageTypeReservationConfirmed MessageType = "reservation_confirmed"
)

// SeatUpdate reports one seat's new state.
type SeatUpdate struct {
	SeatID string `json:"seatId"`
	Status string `json:"status"`
}

// Message is a broadcast payload.
type Message struct {
	Type          MessageType  `json:"type"`
	FlightID      string       `json:"flightId"`
	ReservationID string       `json:"reservationId,omitempty"`
	Seats         []SeatUpdate `json:"seats,omitempty"`
	Message       string       `json:"message,omitempty"`
	Timestamp     int64        `json:"timestamp"`
}

// Hub manages client connections per flight.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

// NewHub creates a hub. Callers start its loop with go hub.Run().
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run processes registrations and broadcasts until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.flightID] == nil {
				h.clients[client.flightID] = make(map[*Client]bool)
			}
			h.clients[client.flightID][client] = true
			log.Printf("websocket: client registered for flight %s (total: %d)", client.flightID, len(h.clients[client.flightID]))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.flightID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.flightID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("websocket: failed to marshal message: %v", err)
				continue
			}

			h.mu.RLock()
			clients := h.clients[message.FlightID]
			h.mu.RUnlock()

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[message.FlightID], client)
					close(client.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// SeatSelectionUpdated broadcasts a reservation's new seat selection to
// clients watching its flight.
func (h *Hub) SeatSelectionUpdated(flightID, reservationID string, seatIDs []string) {
	seats := make([]SeatUpdate, len(seatIDs))
	for i, seatID := range seatIDs {
		seats[i] = SeatUpdate{SeatID: seatID, Status: "selected"}
	}
	h.broadcast <- &Message{
		Type:          MessageTypeSeatsSelected,
		FlightID:      flightID,
		ReservationID: reservationID,
		Seats:         seats,
		Message:       "Seat selection updated",
		Timestamp:     time.Now().UnixMilli(),
	}
}

// ReservationConfirmed notifies watchers that a reservation was created on
// their flight.
func (h *Hub) ReservationConfirmed(flightID, reservationID string, seatIDs []string) {
	seats := make([]SeatUpdate, len(seatIDs))
	for i, seatID := range seatIDs {
		seats[i] = SeatUpdate{SeatID: seatID, Status: "booked"}
	}
	h.broadcast <- &Message{
		Type:          MessageTypeReservationConfirmed,
		FlightID:      flightID,
		ReservationID: reservationID,
		Seats:         seats,
		Message:       "Reservation confirmed",
		Timestamp:     time.Now().UnixMilli(),
	}
}

// ClientCount returns the number of clients watching a flight.
func (h *Hub) ClientCount(flightID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[flightID])
}
