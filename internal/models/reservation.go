package models

import (
	"math"
	"time"
)

// ClassMultiplier maps a seat class to its fare multiplier over the base
// economy price. Unknown classes fall back to 1.0.
var ClassMultiplier = map[string]float64{
	"Economy":         1.0,
	"Premium Economy": 1.4,
	"Business":        2.5,
	"First":           4.0,
}

// MultiplierFor returns the fare multiplier for a seat class.
func MultiplierFor(seatClass string) float64 {
	if m, ok := ClassMultiplier[seatClass]; ok {
		return m
	}
	return 1.0
}

// Round2 rounds a currency amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Passenger is a validated traveller on a reservation. Invalid passengers
// never enter a confirmed reservation.
type Passenger struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"gte=0,lte=130"`
	Gender string `json:"gender" validate:"required"`
	DOB    string `json:"dob" validate:"required,datetime=2006-01-02"`
	Email  string `json:"email" validate:"required,email"`
}

// Reservation is a confirmed booking. The store exclusively owns the
// canonical copy; reservations are created only by a successful confirm and
// never deleted by this engine.
type Reservation struct {
	ReservationID            string      `json:"reservation_id"`
	FlightID                 string      `json:"flight_id"`
	Passengers               []Passenger `json:"passengers"`
	PassengerCount           int         `json:"passenger_count"`
	SeatClass                string      `json:"seat_class"`
	TotalPriceUSD            float64     `json:"total_price_usd"`
	BookedAt                 time.Time   `json:"booked_at"`
	FlightDetails            Flight      `json:"flight_details"`
	SeatAssignments          []string    `json:"seat_assignments"`
	SeatAssignmentsUpdatedAt *time.Time  `json:"seat_assignments_updated_at,omitempty"`
}

// SeatsUpdatedAt returns when seats were last explicitly updated, falling
// back to the booking time.
func (r *Reservation) SeatsUpdatedAt() time.Time {
	if r.SeatAssignmentsUpdatedAt != nil {
		return *r.SeatAssignmentsUpdatedAt
	}
	return r.BookedAt
}
