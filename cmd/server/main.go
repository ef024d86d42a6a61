package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hassaan9289/AirlinePoc/internal/booking"
	"github.com/Hassaan9289/AirlinePoc/internal/catalog"
	"github.com/Hassaan9289/AirlinePoc/internal/handlers"
	"github.com/Hassaan9289/AirlinePoc/internal/router"
	"github.com/Hassaan9289/AirlinePoc/internal/store"
	"github.com/Hassaan9289/AirlinePoc/internal/websocket"
	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "8080"
	DefaultReservationsPath = "reservations_store.json"
)

func main() {
	// Load .env if present; real environment wins
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = DefaultPort
	}

	reservationsPath := os.Getenv("RESERVATIONS_PATH")
	if reservationsPath == "" {
		reservationsPath = DefaultReservationsPath
	}

	// Flight catalog: JSON file if configured, built-in sample otherwise
	var provider catalog.Provider
	if flightsPath := os.Getenv("FLIGHTS_PATH"); flightsPath != "" {
		loaded, err := catalog.LoadFile(flightsPath)
		if err != nil {
			log.Fatalf("Failed to load flight catalog: %v", err)
		}
		provider = loaded
		log.Printf("Loaded flight catalog from %s", flightsPath)
	} else {
		provider = catalog.NewSample()
		log.Printf("Using built-in sample flight catalog")
	}

	reservationStore := store.NewFileStore(reservationsPath)

	hub := websocket.NewHub()
	go hub.Run()

	bookingService := booking.NewService(provider, reservationStore, hub)

	h := handlers.NewHandler(bookingService)
	r := router.SetupRouter(h, hub)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("API Server starting on port %s", port)
		log.Printf("Reservation store at %s", reservationsPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
