package models

// Response codes returned in envelopes. The HTTP layer maps these to
// transport status codes; the engine itself never raises for an expected
// business outcome.
const (
	CodeFlightSearchOK           = "FLIGHT_SEARCH_OK"
	CodeFlightSearchPartialOK    = "FLIGHT_SEARCH_PARTIAL_OK"
	CodeFlightSearchExplore      = "FLIGHT_SEARCH_EXPLORE"
	CodeFlightSearchInvalidInput = "FLIGHT_SEARCH_INVALID_INPUT"

	CodeReservationPreview           = "RESERVATION_PREVIEW"
	CodeReservationConfirmed         = "RESERVATION_CONFIRMED"
	CodeReservationFound             = "RESERVATION_FOUND"
	CodeReservationNotFound          = "RESERVATION_NOT_FOUND"
	CodeReservationFlightNotFound    = "RESERVATION_FLIGHT_NOT_FOUND"
	CodeReservationUnbookable        = "RESERVATION_UNBOOKABLE"
	CodeReservationClassNotAvailable = "RESERVATION_CLASS_NOT_AVAILABLE"
	CodeReservationNoSeats           = "RESERVATION_NO_SEATS"
	CodeReservationValidationFailed  = "RESERVATION_VALIDATION_FAILED"

	CodeSeatSelectionUpdated = "SEAT_SELECTION_UPDATED"
)

// Envelope is the uniform response wrapper every engine operation returns.
// It is the sole channel for success and failure information.
type Envelope struct {
	OK      bool                   `json:"ok"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// NewEnvelope builds a response envelope.
func NewEnvelope(ok bool, code, message string, data map[string]interface{}) Envelope {
	if data == nil {
		data = map[string]interface{}{}
	}
	return Envelope{OK: ok, Code: code, Message: message, Data: data}
}
