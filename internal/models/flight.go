package models

import "time"

// FlightStatus represents the operational status of a flight
type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusDelayed   FlightStatus = "delayed"
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusCancelled FlightStatus = "cancelled"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusArrived   FlightStatus = "arrived"
)

// Flight represents a flight in the catalog. Records are immutable once
// loaded for a search; SeatsAvailable is an upper-bound hint, not a live
// inventory ledger.
type Flight struct {
	FlightID             string       `json:"flight_id"`
	Airline              string       `json:"airline"`
	FlightNumber         string       `json:"flight_number"`
	DepartureCity        string       `json:"departure_city"`
	ArrivalCity          string       `json:"arrival_city"`
	DepartureAirportCode string       `json:"departure_airport_code"`
	ArrivalAirportCode   string       `json:"arrival_airport_code"`
	DepartureTime        time.Time    `json:"departure_time"`
	ArrivalTime          time.Time    `json:"arrival_time"`
	Status               FlightStatus `json:"status"`
	SeatsAvailable       int          `json:"seats_available"`
	AvailableClasses     []string     `json:"available_classes"`
	PriceUSD             float64      `json:"price_usd"`
	AircraftType         string       `json:"aircraft_type"`
}

// HasClass reports whether the flight offers the given seat class.
func (f *Flight) HasClass(seatClass string) bool {
	for _, c := range f.AvailableClasses {
		if c == seatClass {
			return true
		}
	}
	return false
}

// Public returns the externally visible view of the flight.
func (f *Flight) Public() map[string]interface{} {
	return map[string]interface{}{
		"flight_id":              f.FlightID,
		"airline":                f.Airline,
		"flight_number":          f.FlightNumber,
		"departure_city":         f.DepartureCity,
		"arrival_city":           f.ArrivalCity,
		"departure_airport_code": f.DepartureAirportCode,
		"arrival_airport_code":   f.ArrivalAirportCode,
		"departure_time":         f.DepartureTime.Format(time.RFC3339),
		"arrival_time":           f.ArrivalTime.Format(time.RFC3339),
		"status":                 f.Status,
		"seats_available":        f.SeatsAvailable,
		"available_classes":      f.AvailableClasses,
		"price_usd":              f.PriceUSD,
		"aircraft_type":          f.AircraftType,
	}
}
