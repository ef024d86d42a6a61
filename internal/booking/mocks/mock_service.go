package mocks

import (
	"context"

	"github.com/Hassaan9289/AirlinePoc/internal/booking"
	"github.com/Hassaan9289/AirlinePoc/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of booking.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) SearchFlights(ctx context.Context, req booking.SearchRequest) models.Envelope {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Envelope)
}

func (m *MockService) CreateReservation(ctx context.Context, req booking.BookingRequest) models.Envelope {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Envelope)
}

func (m *MockService) GetReservation(ctx context.Context, reservationID string) models.Envelope {
	args := m.Called(ctx, reservationID)
	return args.Get(0).(models.Envelope)
}

func (m *MockService) UpdateReservationSeats(ctx context.Context, reservationID string, seatCodes []string) models.Envelope {
	args := m.Called(ctx, reservationID, seatCodes)
	return args.Get(0).(models.Envelope)
}

func (m *MockService) ArrivalCalendar(ctx context.Context) map[string]interface{} {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]interface{})
}
