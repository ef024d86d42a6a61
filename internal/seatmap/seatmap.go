// Package seatmap derives a cabin occupancy view for a reservation. No
// persisted seat-status table exists: statuses are recomputed on every read
// from the flight's reported seat count, the reservation's stored seat
// selections, and a generator seeded from the (flight, reservation) pair,
// so repeated calls yield identical maps.
package seatmap

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Hassaan9289/AirlinePoc/internal/models"
	"github.com/cespare/xxhash/v2"
)

var (
	seatColumns     = []string{"A", "B", "C", "D", "E", "F"}
	seatTypePattern = []string{"window", "middle", "aisle", "aisle", "middle", "window"}
)

const defaultSeatRows = 18

// SeatStatus is the derived occupancy state of a single seat.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusHeld      SeatStatus = "held"
	StatusPending   SeatStatus = "pending"
	StatusBooked    SeatStatus = "booked"
	StatusSelected  SeatStatus = "selected"
)

// Seat is one cabin position in the derived map.
type Seat struct {
	ID       string     `json:"id"`
	Display  string     `json:"display"`
	Status   SeatStatus `json:"status"`
	Type     string     `json:"type"`
	Selected bool       `json:"selected"`
	Extra    SeatExtra  `json:"extra"`
}

// SeatExtra flags seat perks.
type SeatExtra struct {
	Legroom bool `json:"legroom"`
	ExitRow bool `json:"exitRow"`
}

// Row is one cabin row.
type Row struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Seats []Seat `json:"seats"`
}

// Section is a contiguous cabin block with its summary metadata.
type Section struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
	Rows     []Row  `json:"rows"`
}

// Meta summarizes the derived map.
type Meta struct {
	TotalSeats     int                    `json:"totalSeats"`
	AvailableSeats int                    `json:"availableSeats"`
	BookedSeats    int                    `json:"bookedSeats"`
	HeldSeats      int                    `json:"heldSeats"`
	PendingSeats   int                    `json:"pendingSeats"`
	SelectedSeats  int                    `json:"selectedSeats"`
	UpdatedAt      string                 `json:"updatedAt"`
	Layout         string                 `json:"layout"`
	Inventory      map[string]interface{} `json:"inventory"`
}

// Map is the full derived cabin view for one reservation.
type Map struct {
	Sections []Section `json:"sections"`
	Meta     Meta      `json:"meta"`
}

// NormalizeSeatIDs uppercases, trims, and deduplicates seat identifiers
// while preserving the order of first occurrence.
func NormalizeSeatIDs(values []string) []string {
	seen := make(map[string]bool, len(values))
	normalized := make([]string, 0, len(values))
	for _, entry := range values {
		text := strings.ToUpper(strings.TrimSpace(entry))
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		normalized = append(normalized, text)
	}
	return normalized
}

func seatTypeFor(columnIndex int) string {
	if columnIndex >= 0 && columnIndex < len(seatTypePattern) {
		return seatTypePattern[columnIndex]
	}
	return "middle"
}

func buildBaseRows(totalRows int) []Row {
	rows := make([]Row, 0, totalRows)
	for rowNumber := 1; rowNumber <= totalRows; rowNumber++ {
		seats := make([]Seat, 0, len(seatColumns))
		for columnIndex, columnLetter := range seatColumns {
			seatID := fmt.Sprintf("%d%s", rowNumber, columnLetter)
			seats = append(seats, Seat{
				ID:      seatID,
				Display: seatID,
				Status:  StatusAvailable,
				Type:    seatTypeFor(columnIndex),
				Extra: SeatExtra{
					Legroom: rowNumber == 1 || rowNumber == 2,
					ExitRow: rowNumber == 9 || rowNumber == 10,
				},
			})
		}
		rows = append(rows, Row{
			ID:    fmt.Sprintf("row-%d", rowNumber),
			Label: fmt.Sprintf("%d", rowNumber),
			Seats: seats,
		})
	}
	return rows
}

// seedFor derives a stable shuffle seed from the flight and reservation
// identifiers so the map is reproducible across calls and processes.
func seedFor(flightID, reservationID string) int64 {
	return int64(xxhash.Sum64String(flightID + ":" + reservationID))
}

// Generate derives the cabin map for a reservation.
func Generate(r *models.Reservation) Map {
	flight := &r.FlightDetails

	seatsAvailable := flight.SeatsAvailable
	if seatsAvailable < 0 {
		seatsAvailable = 0
	}

	estimatedRows := seatsAvailable/len(seatColumns) + 6
	if estimatedRows < 10 {
		estimatedRows = 10
	}
	if estimatedRows > 24 {
		estimatedRows = 24
	}
	totalRows := estimatedRows
	if totalRows < defaultSeatRows {
		totalRows = defaultSeatRows
	}

	rows := buildBaseRows(totalRows)
	seatIDs := make([]string, 0, totalRows*len(seatColumns))
	for _, row := range rows {
		for _, seat := range row.Seats {
			seatIDs = append(seatIDs, seat.ID)
		}
	}
	totalCapacity := len(seatIDs)

	selected := NormalizeSeatIDs(r.SeatAssignments)
	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	effectiveAvailable := seatsAvailable
	if effectiveAvailable > totalCapacity {
		effectiveAvailable = totalCapacity
	}
	if len(selected) > effectiveAvailable {
		effectiveAvailable = len(selected)
	}

	bookedTarget := totalCapacity - effectiveAvailable
	if bookedTarget < 0 {
		bookedTarget = 0
	}
	heldTarget := bookedTarget / 4
	if heldTarget > 6 {
		heldTarget = 6
	}
	pendingTarget := effectiveAvailable / 10
	if pendingTarget > 4 {
		pendingTarget = 4
	}

	rng := rand.New(rand.NewSource(seedFor(flight.FlightID, r.ReservationID)))
	shuffled := make([]string, len(seatIDs))
	copy(shuffled, seatIDs)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	bookedSet := make(map[string]bool, bookedTarget)
	heldSet := make(map[string]bool, heldTarget)
	pendingSet := make(map[string]bool, pendingTarget)
	for _, seatID := range shuffled {
		if selectedSet[seatID] {
			continue
		}
		switch {
		case len(bookedSet) < bookedTarget:
			bookedSet[seatID] = true
		case len(heldSet) < heldTarget:
			heldSet[seatID] = true
		case len(pendingSet) < pendingTarget:
			pendingSet[seatID] = true
		}
	}

	availableCount := 0
	for ri := range rows {
		for si := range rows[ri].Seats {
			seat := &rows[ri].Seats[si]
			switch {
			case selectedSet[seat.ID]:
				seat.Status = StatusSelected
				seat.Selected = true
			case bookedSet[seat.ID]:
				seat.Status = StatusBooked
			case heldSet[seat.ID]:
				seat.Status = StatusHeld
			case pendingSet[seat.ID]:
				seat.Status = StatusPending
			default:
				seat.Status = StatusAvailable
				availableCount++
			}
		}
	}

	layout := fmt.Sprintf("%d-%d configuration", len(seatColumns)/2, len(seatColumns)/2)
	meta := Meta{
		TotalSeats:     totalCapacity,
		AvailableSeats: availableCount,
		BookedSeats:    len(bookedSet),
		HeldSeats:      len(heldSet),
		PendingSeats:   len(pendingSet),
		SelectedSeats:  len(selected),
		UpdatedAt:      r.SeatsUpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
		Layout:         layout,
		Inventory: map[string]interface{}{
			"reportedAvailable": flight.SeatsAvailable,
		},
	}

	return Map{
		Sections: []Section{
			{
				ID:       "main-cabin",
				Label:    fmt.Sprintf("%s cabin", flight.AircraftType),
				Subtitle: fmt.Sprintf("Rows 1-%d · %s", totalRows, layout),
				Rows:     rows,
			},
		},
		Meta: meta,
	}
}
