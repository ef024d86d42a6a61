package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// PassengerInput is a raw, possibly incomplete passenger record as
// submitted by a caller. Validation decides what is usable.
type PassengerInput struct {
	Name   string `json:"name"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
	DOB    string `json:"dob"`
	Email  string `json:"email"`
}

func (p PassengerInput) empty() bool {
	return p.Name == "" && p.Age == nil && p.Gender == "" && p.DOB == "" && p.Email == ""
}

// BookingRequest carries every accepted shape of a booking submission.
// Passenger data arrives as a structured list, a JSON-encoded list, or a
// flattened single-passenger field set; the normalizer reduces them to one
// ordered record list.
type BookingRequest struct {
	FlightID  string `json:"flight_id"`
	SeatClass string `json:"seat_class"`
	Confirm   bool   `json:"confirm"`

	PassengerCount *int             `json:"passenger_count,omitempty"`
	Passengers     []PassengerInput `json:"passengers,omitempty"`
	PassengersJSON string           `json:"passengers_json,omitempty"`

	PassengerName   string `json:"passenger_name,omitempty"`
	PassengerAge    *int   `json:"passenger_age,omitempty"`
	PassengerGender string `json:"passenger_gender,omitempty"`
	PassengerDOB    string `json:"passenger_dob,omitempty"`
	PassengerEmail  string `json:"passenger_email,omitempty"`
}

// normalized is the uniform output of passenger-input normalization.
type normalized struct {
	Records     []PassengerInput
	Count       int
	ParseErrors []string
}

// normalizePassengers reduces the mutually exclusive input shapes to an
// ordered record list and an inferred headcount. A malformed encoded list
// yields a parse error and an empty record list, never a failure. An
// explicit positive passenger_count is the authoritative headcount; short
// record lists are padded during validation, not here.
func normalizePassengers(req BookingRequest) normalized {
	var records []PassengerInput
	var parseErrors []string

	switch {
	case len(req.Passengers) > 0:
		records = req.Passengers
	case req.PassengersJSON != "":
		records, parseErrors = decodePassengersJSON(req.PassengersJSON)
	default:
		single := PassengerInput{
			Name:   req.PassengerName,
			Age:    req.PassengerAge,
			Gender: req.PassengerGender,
			DOB:    req.PassengerDOB,
			Email:  req.PassengerEmail,
		}
		if !single.empty() {
			records = []PassengerInput{single}
		}
	}

	count := 0
	if req.PassengerCount != nil && *req.PassengerCount > 0 {
		count = *req.PassengerCount
	} else if len(records) > 0 {
		count = len(records)
	} else {
		count = 1
	}

	return normalized{Records: records, Count: count, ParseErrors: parseErrors}
}

// decodePassengersJSON extracts passenger records from an encoded list.
// gjson lets a numeric-looking age pass whether it arrives as a number or
// a string.
func decodePassengersJSON(encoded string) ([]PassengerInput, []string) {
	if !gjson.Valid(encoded) {
		return nil, []string{"invalid passengers_json: not valid JSON"}
	}
	parsed := gjson.Parse(encoded)
	if !parsed.IsArray() {
		return nil, []string{"passengers_json must be a JSON array"}
	}

	var records []PassengerInput
	var parseErrors []string
	for i, entry := range parsed.Array() {
		if !entry.IsObject() {
			parseErrors = append(parseErrors, fmt.Sprintf("passengers_json entry %d is not an object", i))
			records = append(records, PassengerInput{})
			continue
		}
		rec := PassengerInput{
			Name:   strings.TrimSpace(entry.Get("name").String()),
			Gender: strings.TrimSpace(entry.Get("gender").String()),
			DOB:    strings.TrimSpace(entry.Get("dob").String()),
			Email:  strings.TrimSpace(entry.Get("email").String()),
		}
		if age := entry.Get("age"); age.Exists() {
			switch age.Type {
			case gjson.Number:
				v := int(age.Int())
				rec.Age = &v
			case gjson.String:
				if v, err := strconv.Atoi(strings.TrimSpace(age.String())); err == nil {
					rec.Age = &v
				}
			}
		}
		records = append(records, rec)
	}
	return records, parseErrors
}
