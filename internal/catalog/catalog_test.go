package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Hassaan9289/AirlinePoc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlight(id string, status models.FlightStatus, seats int) models.Flight {
	return models.Flight{
		FlightID:             id,
		Airline:              "Aroya Air",
		FlightNumber:         id,
		DepartureCity:        "Paris",
		ArrivalCity:          "Rome",
		DepartureAirportCode: "CDG",
		ArrivalAirportCode:   "FCO",
		DepartureTime:        time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC),
		ArrivalTime:          time.Date(2026, 9, 10, 10, 45, 0, 0, time.UTC),
		Status:               status,
		SeatsAvailable:       seats,
		AvailableClasses:     []string{"Economy", "Business"},
		PriceUSD:             120.00,
		AircraftType:         "Airbus A320",
	}
}

func TestBookable(t *testing.T) {
	tests := []struct {
		name     string
		status   models.FlightStatus
		seats    int
		bookable bool
	}{
		{name: "scheduled with seats", status: models.FlightStatusScheduled, seats: 10, bookable: true},
		{name: "delayed with seats", status: models.FlightStatusDelayed, seats: 1, bookable: true},
		{name: "boarding with seats", status: models.FlightStatusBoarding, seats: 3, bookable: true},
		{name: "cancelled", status: models.FlightStatusCancelled, seats: 10, bookable: false},
		{name: "departed", status: models.FlightStatusDeparted, seats: 10, bookable: false},
		{name: "scheduled without seats", status: models.FlightStatusScheduled, seats: 0, bookable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFlight("FL1", tt.status, tt.seats)
			assert.Equal(t, tt.bookable, Bookable(&f))
		})
	}
}

func TestMatchesCities(t *testing.T) {
	f := testFlight("FL1", models.FlightStatusScheduled, 10)

	tests := []struct {
		name     string
		criteria models.SearchCriteria
		matches  bool
	}{
		{name: "no filters", criteria: models.SearchCriteria{}, matches: true},
		{name: "departure only", criteria: models.SearchCriteria{DepartureCity: "paris"}, matches: true},
		{name: "both cities case-insensitive", criteria: models.SearchCriteria{DepartureCity: "PARIS", ArrivalCity: " rome "}, matches: true},
		{name: "wrong arrival", criteria: models.SearchCriteria{DepartureCity: "Paris", ArrivalCity: "Berlin"}, matches: false},
		{name: "wrong departure", criteria: models.SearchCriteria{DepartureCity: "Madrid"}, matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, MatchesCities(&f, tt.criteria))
		})
	}
}

func TestMatchesDate(t *testing.T) {
	f := testFlight("FL1", models.FlightStatusScheduled, 10)

	assert.True(t, MatchesDate(&f, ""))
	assert.True(t, MatchesDate(&f, "2026-09-10"))
	assert.False(t, MatchesDate(&f, "2026-09-11"))
}

func TestFacets(t *testing.T) {
	flights := []models.Flight{
		testFlight("FL1", models.FlightStatusScheduled, 10),
		testFlight("FL2", models.FlightStatusCancelled, 10),
	}
	other := testFlight("FL3", models.FlightStatusScheduled, 5)
	other.ArrivalCity = "Berlin"
	flights = append(flights, other)

	facets := Facets(flights, models.SearchCriteria{DepartureCity: "Paris"})

	assert.ElementsMatch(t, []string{"Berlin", "Rome"}, facets["destinations"])
	assert.Contains(t, facets["departure_dates"], "2026-09-10")
	assert.ElementsMatch(t, []string{"Economy", "Business"}, facets["classes"])
}

func TestFindByID(t *testing.T) {
	flights := []models.Flight{
		testFlight("FL1", models.FlightStatusScheduled, 10),
		testFlight("FL2", models.FlightStatusScheduled, 10),
	}

	found := FindByID(flights, "FL2")
	require.NotNil(t, found)
	assert.Equal(t, "FL2", found.FlightID)

	assert.Nil(t, FindByID(flights, "FL9"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("bare array", func(t *testing.T) {
		path := filepath.Join(dir, "flights.json")
		data, err := json.Marshal([]models.Flight{testFlight("FL1", models.FlightStatusScheduled, 10)})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		provider, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, provider.Flights(), 1)
	})

	t.Run("wrapped object", func(t *testing.T) {
		path := filepath.Join(dir, "wrapped.json")
		data, err := json.Marshal(map[string]interface{}{
			"flights": []models.Flight{testFlight("FL1", models.FlightStatusScheduled, 10)},
		})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		provider, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, provider.Flights(), 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestArrivalCalendar(t *testing.T) {
	early := testFlight("FL1", models.FlightStatusScheduled, 10)
	late := testFlight("FL2", models.FlightStatusScheduled, 10)
	late.ArrivalTime = time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	out := ArrivalCalendar([]models.Flight{late, early})

	calendar := out["calendar"].([]map[string]interface{})
	require.Len(t, calendar, 2)
	assert.Equal(t, "2026-09-10", calendar[0]["date"])
	assert.Equal(t, "2026-09-12", calendar[1]["date"])
	assert.Equal(t, "Thursday", calendar[0]["weekday"])

	meta := out["meta"].(map[string]interface{})
	assert.Equal(t, 2, meta["total_flights"])
	assert.Equal(t, "2026-09-10", meta["first_arrival"])
	assert.Equal(t, "2026-09-12", meta["last_arrival"])
}

func TestFormatOffset(t *testing.T) {
	utc := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "UTC+00:00", FormatOffset(utc))

	plus := utc.In(time.FixedZone("IST", 5*3600+1800))
	assert.Equal(t, "UTC+05:30", FormatOffset(plus))

	minus := utc.In(time.FixedZone("EST", -5*3600))
	assert.Equal(t, "UTC-05:00", FormatOffset(minus))
}
