// Package catalog loads and filters the flight catalog. The catalog is
// read-only input per call; bookings never mutate it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Hassaan9289/AirlinePoc/internal/models"
)

// Provider returns the current flight catalog.
type Provider interface {
	Flights() []models.Flight
}

// Static serves a fixed set of flights.
type Static struct {
	flights []models.Flight
}

// NewStatic creates a provider over a fixed flight list.
func NewStatic(flights []models.Flight) *Static {
	return &Static{flights: flights}
}

func (s *Static) Flights() []models.Flight {
	out := make([]models.Flight, len(s.flights))
	copy(out, s.flights)
	return out
}

// LoadFile reads a flight catalog from a JSON file. The file holds either a
// bare array of flights or an object with a "flights" key.
func LoadFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flight catalog: %w", err)
	}

	var flights []models.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		var wrapper struct {
			Flights []models.Flight `json:"flights"`
		}
		if err2 := json.Unmarshal(raw, &wrapper); err2 != nil {
			return nil, fmt.Errorf("failed to decode flight catalog: %w", err)
		}
		flights = wrapper.Flights
	}
	return NewStatic(flights), nil
}

// FindByID returns the flight with the given identifier, or nil.
func FindByID(flights []models.Flight, flightID string) *models.Flight {
	for i := range flights {
		if flights[i].FlightID == flightID {
			return &flights[i]
		}
	}
	return nil
}

// NewSample creates a provider with a built-in demo dataset, used when no
// catalog file is configured.
func NewSample() *Static {
	day := func(d int, hour int) time.Time {
		base := time.Now().UTC().Truncate(24 * time.Hour)
		return base.AddDate(0, 0, d).Add(time.Duration(hour) * time.Hour)
	}
	return NewStatic([]models.Flight{
		{
			FlightID:             "AR101",
			Airline:              "Aroya Air",
			FlightNumber:         "AR101",
			DepartureCity:        "New York",
			ArrivalCity:          "London",
			DepartureAirportCode: "JFK",
			ArrivalAirportCode:   "LHR",
			DepartureTime:        day(1, 9),
			ArrivalTime:          day(1, 21),
			Status:               models.FlightStatusScheduled,
			SeatsAvailable:       64,
			AvailableClasses:     []string{"Economy", "Premium Economy", "Business"},
			PriceUSD:             420.00,
			AircraftType:         "Boeing 777",
		},
		{
			FlightID:             "AR102",
			Airline:              "Aroya Air",
			FlightNumber:         "AR102",
			DepartureCity:        "New York",
			ArrivalCity:          "London",
			DepartureAirportCode: "EWR",
			ArrivalAirportCode:   "LGW",
			DepartureTime:        day(2, 18),
			ArrivalTime:          day(3, 6),
			Status:               models.FlightStatusDelayed,
			SeatsAvailable:       12,
			AvailableClasses:     []string{"Economy", "Business", "First"},
			PriceUSD:             385.50,
			AircraftType:         "Airbus A350",
		},
		{
			FlightID:             "AR201",
			Airline:              "Aroya Air",
			FlightNumber:         "AR201",
			DepartureCity:        "London",
			ArrivalCity:          "Dubai",
			DepartureAirportCode: "LHR",
			ArrivalAirportCode:   "DXB",
			DepartureTime:        day(1, 14),
			ArrivalTime:          day(1, 22),
			Status:               models.FlightStatusScheduled,
			SeatsAvailable:       110,
			AvailableClasses:     []string{"Economy", "Premium Economy", "Business", "First"},
			PriceUSD:             510.00,
			AircraftType:         "Airbus A380",
		},
		{
			FlightID:             "AR301",
			Airline:              "Aroya Air",
			FlightNumber:         "AR301",
			DepartureCity:        "Dubai",
			ArrivalCity:          "Singapore",
			DepartureAirportCode: "DXB",
			ArrivalAirportCode:   "SIN",
			DepartureTime:        day(4, 2),
			ArrivalTime:          day(4, 10),
			Status:               models.FlightStatusCancelled,
			SeatsAvailable:       0,
			AvailableClasses:     []string{"Economy"},
			PriceUSD:             290.00,
			AircraftType:         "Boeing 787",
		},
	})
}
