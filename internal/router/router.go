package router

import (
	"net/http"

	"github.com/Hassaan9289/AirlinePoc/internal/handlers"
	"github.com/Hassaan9289/AirlinePoc/internal/websocket"
	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler, hub *websocket.Hub) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights", h.SearchFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/arrivals", h.GetArrivalCalendar).Methods(http.MethodGet, http.MethodOptions)

	// Reservations
	api.HandleFunc("/reservations", h.CreateReservation).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/reservations/{id}", h.GetReservation).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/reservations/{id}/seats", h.UpdateReservationSeats).Methods(http.MethodPut, http.MethodOptions)

	// WebSocket for real-time seat updates
	api.HandleFunc("/flights/{id}/ws", websocket.ServeWS(hub))

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
