package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNormalizePassengers(t *testing.T) {
	structured := []PassengerInput{
		{Name: "Ada Lovelace", Age: intPtr(36), Gender: "female", DOB: "1990-05-10", Email: "ada@example.com"},
		{Name: "Alan Turing", Age: intPtr(34), Gender: "male", DOB: "1992-06-23", Email: "alan@example.com"},
		{Name: "Grace Hopper", Age: intPtr(30), Gender: "female", DOB: "1996-12-09", Email: "grace@example.com"},
	}

	tests := []struct {
		name            string
		req             BookingRequest
		expectedCount   int
		expectedRecords int
		expectedErrors  int
	}{
		{
			name:            "count inferred from structured list",
			req:             BookingRequest{Passengers: structured},
			expectedCount:   3,
			expectedRecords: 3,
		},
		{
			name:            "explicit count overrides record count",
			req:             BookingRequest{PassengerCount: intPtr(5), Passengers: structured[:2]},
			expectedCount:   5,
			expectedRecords: 2,
		},
		{
			name:            "non-positive explicit count is ignored",
			req:             BookingRequest{PassengerCount: intPtr(0), Passengers: structured[:2]},
			expectedCount:   2,
			expectedRecords: 2,
		},
		{
			name:            "no input defaults to one passenger",
			req:             BookingRequest{},
			expectedCount:   1,
			expectedRecords: 0,
		},
		{
			name: "flattened single passenger",
			req: BookingRequest{
				PassengerName:  "Ada Lovelace",
				PassengerAge:   intPtr(36),
				PassengerEmail: "ada@example.com",
			},
			expectedCount:   1,
			expectedRecords: 1,
		},
		{
			name:            "encoded list",
			req:             BookingRequest{PassengersJSON: `[{"name":"Ada Lovelace","age":36,"gender":"female","dob":"1990-05-10","email":"ada@example.com"}]`},
			expectedCount:   1,
			expectedRecords: 1,
		},
		{
			name:            "malformed encoded list reports error without raising",
			req:             BookingRequest{PassengersJSON: `{"name": "not a list"`},
			expectedCount:   1,
			expectedRecords: 0,
			expectedErrors:  1,
		},
		{
			name:            "encoded non-array reports error",
			req:             BookingRequest{PassengersJSON: `{"name":"Ada"}`},
			expectedCount:   1,
			expectedRecords: 0,
			expectedErrors:  1,
		},
		{
			name: "structured list takes precedence over encoded list",
			req: BookingRequest{
				Passengers:     structured[:1],
				PassengersJSON: `[{"name":"Someone Else"}]`,
			},
			expectedCount:   1,
			expectedRecords: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizePassengers(tt.req)
			assert.Equal(t, tt.expectedCount, got.Count)
			assert.Len(t, got.Records, tt.expectedRecords)
			assert.Len(t, got.ParseErrors, tt.expectedErrors)
		})
	}
}

func TestDecodePassengersJSON_TolerantAge(t *testing.T) {
	records, parseErrors := decodePassengersJSON(`[
		{"name":"Ada Lovelace","age":36,"gender":"female","dob":"1990-05-10","email":"ada@example.com"},
		{"name":"Alan Turing","age":"34","gender":"male","dob":"1992-06-23","email":"alan@example.com"},
		{"name":"No Age Given"}
	]`)

	require.Empty(t, parseErrors)
	require.Len(t, records, 3)

	require.NotNil(t, records[0].Age)
	assert.Equal(t, 36, *records[0].Age)

	require.NotNil(t, records[1].Age, "numeric string ages are accepted")
	assert.Equal(t, 34, *records[1].Age)

	assert.Nil(t, records[2].Age)
}

func TestDecodePassengersJSON_NonObjectEntry(t *testing.T) {
	records, parseErrors := decodePassengersJSON(`[{"name":"Ada Lovelace"}, 42]`)

	assert.Len(t, records, 2)
	assert.Len(t, parseErrors, 1)
}
