package models

// SearchCriteria filters and sorts catalog flights. Never persisted.
type SearchCriteria struct {
	DepartureCity   string `json:"departure_city,omitempty"`
	ArrivalCity     string `json:"arrival_city,omitempty"`
	DepartureDate   string `json:"departure_date,omitempty"` // ISO date
	Passengers      int    `json:"passengers"`
	ClassPreference string `json:"class_preference,omitempty"`
}
