package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Hassaan9289/AirlinePoc/internal/booking"
	"github.com/Hassaan9289/AirlinePoc/internal/models"
	"github.com/gorilla/mux"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	bookingService booking.Service
}

// NewHandler creates a new Handler instance
func NewHandler(bookingService booking.Service) *Handler {
	return &Handler{bookingService: bookingService}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps an envelope outcome to a transport status code. The engine
// never signals outcomes any other way.
func statusFor(env models.Envelope, okStatus int) int {
	if env.OK {
		return okStatus
	}
	switch env.Code {
	case models.CodeReservationNotFound, models.CodeReservationFlightNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// SearchFlights handles GET /api/flights
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	passengers := 0
	if raw := q.Get("passengers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "passengers must be an integer")
			return
		}
		passengers = n
	}

	req := booking.SearchRequest{
		DepartureCity:   q.Get("departure_city"),
		ArrivalCity:     q.Get("arrival_city"),
		DepartureDate:   q.Get("departure_date"),
		Date:            q.Get("date"),
		TravelDate:      q.Get("travel_date"),
		Passengers:      passengers,
		ClassPreference: q.Get("class_preference"),
	}

	env := h.bookingService.SearchFlights(r.Context(), req)
	respondJSON(w, statusFor(env, http.StatusOK), env)
}

// GetArrivalCalendar handles GET /api/arrivals
func (h *Handler) GetArrivalCalendar(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.ArrivalCalendar(r.Context()))
}

// CreateReservation handles POST /api/reservations. The request either
// previews or confirms depending on the confirm flag.
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req booking.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FlightID == "" {
		respondError(w, http.StatusBadRequest, "Flight ID is required")
		return
	}

	env := h.bookingService.CreateReservation(r.Context(), req)
	okStatus := http.StatusOK
	if env.Code == models.CodeReservationConfirmed {
		okStatus = http.StatusCreated
	}
	respondJSON(w, statusFor(env, okStatus), env)
}

// GetReservation handles GET /api/reservations/{id}
func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["id"]
	env := h.bookingService.GetReservation(r.Context(), reservationID)
	respondJSON(w, statusFor(env, http.StatusOK), env)
}

// UpdateReservationSeats handles PUT /api/reservations/{id}/seats
func (h *Handler) UpdateReservationSeats(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["id"]

	var req struct {
		SeatCodes []string `json:"seat_codes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	env := h.bookingService.UpdateReservationSeats(r.Context(), reservationID, req.SeatCodes)
	respondJSON(w, statusFor(env, http.StatusOK), env)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
