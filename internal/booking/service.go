package booking

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Hassaan9289/AirlinePoc/internal/catalog"
	"github.com/Hassaan9289/AirlinePoc/internal/dates"
	"github.com/Hassaan9289/AirlinePoc/internal/models"
	"github.com/Hassaan9289/AirlinePoc/internal/seatmap"
	"github.com/Hassaan9289/AirlinePoc/internal/store"
	"github.com/google/uuid"
)

// SearchRequest carries raw flight-search input. Date synonyms are
// accepted and coerced before matching.
type SearchRequest struct {
	DepartureCity   string `json:"departure_city,omitempty"`
	ArrivalCity     string `json:"arrival_city,omitempty"`
	DepartureDate   string `json:"departure_date,omitempty"`
	Date            string `json:"date,omitempty"`
	TravelDate      string `json:"travel_date,omitempty"`
	Passengers      int    `json:"passengers,omitempty"`
	ClassPreference string `json:"class_preference,omitempty"`
}

// Notifier receives reservation lifecycle events for fan-out to watchers.
type Notifier interface {
	ReservationConfirmed(flightID, reservationID string, seatIDs []string)
	SeatSelectionUpdated(flightID, reservationID string, seatIDs []string)
}

// Service is the reservation lifecycle engine. Every operation returns an
// envelope; no error crosses this boundary for an expected business
// outcome.
type Service interface {
	SearchFlights(ctx context.Context, req SearchRequest) models.Envelope
	CreateReservation(ctx context.Context, req BookingRequest) models.Envelope
	GetReservation(ctx context.Context, reservationID string) models.Envelope
	UpdateReservationSeats(ctx context.Context, reservationID string, seatCodes []string) models.Envelope
	ArrivalCalendar(ctx context.Context) map[string]interface{}
}

type service struct {
	catalog  catalog.Provider
	store    store.Store
	notifier Notifier
	now      func() time.Time

	// Serializes reservation mutations within the process; the store's
	// durable file provides cross-process visibility, not atomicity.
	mu sync.Mutex
}

// NewService creates the booking service.
func NewService(provider catalog.Provider, st store.Store, notifier Notifier) Service {
	return &service{
		catalog:  provider,
		store:    st,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SearchFlights filters and sorts the catalog against the given criteria.
func (s *service) SearchFlights(ctx context.Context, req SearchRequest) models.Envelope {
	rawDate := req.DepartureDate
	if rawDate == "" {
		rawDate = req.TravelDate
	}
	if rawDate == "" {
		rawDate = req.Date
	}
	parsedDate, _ := dates.CoerceToISO(rawDate)

	criteria := models.SearchCriteria{
		DepartureCity:   req.DepartureCity,
		ArrivalCity:     req.ArrivalCity,
		DepartureDate:   parsedDate,
		Passengers:      req.Passengers,
		ClassPreference: req.ClassPreference,
	}
	if criteria.Passengers == 0 {
		criteria.Passengers = 1
	}
	if criteria.Passengers < 1 {
		return models.NewEnvelope(false, models.CodeFlightSearchInvalidInput,
			"Invalid search criteria.", map[string]interface{}{
				"error":    fmt.Sprintf("passengers must be at least 1, got %d", req.Passengers),
				"criteria": criteria,
			})
	}

	flights := s.catalog.Flights()

	var filtered []models.Flight
	for i := range flights {
		f := &flights[i]
		if !catalog.MatchesCities(f, criteria) || !catalog.Bookable(f) {
			continue
		}
		if f.SeatsAvailable < criteria.Passengers {
			continue
		}
		if criteria.ClassPreference != "" && !f.HasClass(criteria.ClassPreference) {
			continue
		}
		if !catalog.MatchesDate(f, criteria.DepartureDate) {
			continue
		}
		filtered = append(filtered, *f)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].PriceUSD != filtered[j].PriceUSD {
			return filtered[i].PriceUSD < filtered[j].PriceUSD
		}
		return filtered[i].SeatsAvailable > filtered[j].SeatsAvailable
	})

	public := make([]map[string]interface{}, 0, len(filtered))
	for i := range filtered {
		public = append(public, filtered[i].Public())
	}

	needs := []string{}
	if criteria.DepartureCity == "" {
		needs = append(needs, "departure_city")
	}
	if criteria.DepartureCity != "" && criteria.ArrivalCity == "" {
		needs = append(needs, "arrival_city")
	}

	var code, msg string
	switch {
	case criteria.DepartureCity != "" && criteria.ArrivalCity != "" && len(public) > 0:
		code = models.CodeFlightSearchOK
		msg = fmt.Sprintf("Found %d flight(s) from %s to %s.", len(public), criteria.DepartureCity, criteria.ArrivalCity)
	case criteria.DepartureCity != "" && criteria.ArrivalCity != "":
		code = models.CodeFlightSearchPartialOK
		msg = fmt.Sprintf("No exact-date results yet for %s to %s. Here are available dates you can pick.",
			criteria.DepartureCity, criteria.ArrivalCity)
	default:
		code = models.CodeFlightSearchExplore
		msg = "Select a destination and/or date from the available options."
	}

	return models.NewEnvelope(true, code, msg, map[string]interface{}{
		"criteria": criteria,
		"flights":  public,
		"facets":   catalog.Facets(flights, criteria),
		"needs":    needs,
	})
}

// CreateReservation runs the booking pipeline. With Confirm unset it is a
// pure preview: validation and pricing with no store mutation. With Confirm
// set it additionally requires a clean validation pass and persists the
// reservation.
func (s *service) CreateReservation(ctx context.Context, req BookingRequest) models.Envelope {
	flights := s.catalog.Flights()
	flight := catalog.FindByID(flights, req.FlightID)
	if flight == nil {
		return models.NewEnvelope(false, models.CodeReservationFlightNotFound,
			"Flight not found.", map[string]interface{}{"flight_id": req.FlightID})
	}

	if !catalog.Bookable(flight) {
		return models.NewEnvelope(false, models.CodeReservationUnbookable,
			fmt.Sprintf("Flight status is '%s'. Not bookable.", flight.Status),
			map[string]interface{}{"flight": flight.Public()})
	}

	seatClass := req.SeatClass
	if seatClass == "" {
		seatClass = "Economy"
	}
	if !flight.HasClass(seatClass) {
		return models.NewEnvelope(false, models.CodeReservationClassNotAvailable,
			fmt.Sprintf("Seat class '%s' not available for this flight.", seatClass),
			map[string]interface{}{"available": flight.AvailableClasses})
	}

	parsed := normalizePassengers(req)

	if flight.SeatsAvailable < parsed.Count {
		return models.NewEnvelope(false, models.CodeReservationNoSeats,
			fmt.Sprintf("Only %d seat(s) left; requested %d.", flight.SeatsAvailable, parsed.Count),
			map[string]interface{}{
				"flight":               flight.Public(),
				"requested_passengers": parsed.Count,
			})
	}

	validated, issues := validatePassengers(parsed.Records, parsed.Count, s.now())

	unitPrice := unitPriceForClass(flight, seatClass)
	bill := newBill(unitPrice, parsed.Count)

	if !req.Confirm {
		nextAction := "ask_confirmation"
		if len(issues) > 0 || len(parsed.ParseErrors) > 0 {
			nextAction = "collect_missing_passenger_details"
		}
		return models.NewEnvelope(true, models.CodeReservationPreview,
			"Preview generated. Provide any missing/invalid passenger details, then confirm to book.",
			map[string]interface{}{
				"flight":          flight.Public(),
				"seat_class":      seatClass,
				"passenger_count": parsed.Count,
				"passengers":      validated,
				"pending_entries": parsed.Records,
				"validation":      validationPayload(issues, parsed.ParseErrors),
				"bill":            bill,
				"next_action":     nextAction,
			})
	}

	if len(issues) > 0 || len(parsed.ParseErrors) > 0 || len(validated) != parsed.Count {
		return models.NewEnvelope(false, models.CodeReservationValidationFailed,
			"Passenger details failed validation. Please correct before confirming.",
			map[string]interface{}{
				"passenger_count": parsed.Count,
				"provided_valid":  len(validated),
				"validation":      validationPayload(issues, parsed.ParseErrors),
			})
	}

	bookedAt := s.now()
	reservation := &models.Reservation{
		ReservationID:            uuid.NewString(),
		FlightID:                 flight.FlightID,
		Passengers:               validated,
		PassengerCount:           parsed.Count,
		SeatClass:                seatClass,
		TotalPriceUSD:            bill["total"].(float64),
		BookedAt:                 bookedAt,
		FlightDetails:            *flight,
		SeatAssignments:          []string{},
		SeatAssignmentsUpdatedAt: &bookedAt,
	}

	s.mu.Lock()
	s.store.Refresh()
	s.store.Put(reservation)
	s.store.Persist()
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.ReservationConfirmed(reservation.FlightID, reservation.ReservationID, nil)
	}

	return models.NewEnvelope(true, models.CodeReservationConfirmed,
		"Your reservation is confirmed.", s.reservationPayload(reservation))
}

// GetReservation retrieves a previously confirmed reservation.
func (s *service) GetReservation(ctx context.Context, reservationID string) models.Envelope {
	s.store.Refresh()
	reservation, err := s.store.Get(reservationID)
	if err != nil {
		return models.NewEnvelope(false, models.CodeReservationNotFound,
			"Reservation not found.", map[string]interface{}{"reservation_id": reservationID})
	}
	return models.NewEnvelope(true, models.CodeReservationFound,
		"Reservation retrieved.", s.reservationPayload(reservation))
}

// UpdateReservationSeats stores a normalized seat selection and returns the
// refreshed payload with a regenerated cabin map. Oversupplied selections
// are truncated to the passenger count, preserving order.
func (s *service) UpdateReservationSeats(ctx context.Context, reservationID string, seatCodes []string) models.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Refresh()
	reservation, err := s.store.Get(reservationID)
	if err != nil {
		return models.NewEnvelope(false, models.CodeReservationNotFound,
			"Reservation not found.", map[string]interface{}{"reservation_id": reservationID})
	}

	normalizedSeats := seatmap.NormalizeSeatIDs(seatCodes)
	maxAllowed := reservation.PassengerCount
	if maxAllowed < 1 {
		maxAllowed = 1
	}
	if len(normalizedSeats) > maxAllowed {
		trimmed := normalizedSeats[:maxAllowed]
		log.Printf("booking: trimming seat selection for %s to passenger count (%v -> %v)",
			reservationID, normalizedSeats, trimmed)
		normalizedSeats = trimmed
	}

	updatedAt := s.now()
	reservation.SeatAssignments = normalizedSeats
	reservation.SeatAssignmentsUpdatedAt = &updatedAt
	s.store.Put(reservation)
	s.store.Persist()

	if s.notifier != nil {
		s.notifier.SeatSelectionUpdated(reservation.FlightID, reservationID, normalizedSeats)
	}

	return models.NewEnvelope(true, models.CodeSeatSelectionUpdated,
		"Seat selection updated.", s.reservationPayload(reservation))
}

// ArrivalCalendar builds the arrivals view over the current catalog.
func (s *service) ArrivalCalendar(ctx context.Context) map[string]interface{} {
	return catalog.ArrivalCalendar(s.catalog.Flights())
}

// reservationPayload assembles the full reservation response: the stored
// record, a display bill, the current seat selection, and the derived map.
func (s *service) reservationPayload(r *models.Reservation) map[string]interface{} {
	selected := seatmap.NormalizeSeatIDs(r.SeatAssignments)
	return map[string]interface{}{
		"reservation": r,
		"bill":        reservationBill(r),
		"seat_selection": map[string]interface{}{
			"selected_seats": selected,
			"updated_at":     r.SeatsUpdatedAt().Format(time.RFC3339),
		},
		"seat_map": seatmap.Generate(r),
	}
}
