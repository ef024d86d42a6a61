package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoerceToISO(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "RFC3339 with trailing Z",
			input:    "2025-03-14T22:10:00Z",
			expected: "2025-03-14",
			ok:       true,
		},
		{
			name:     "RFC3339 with numeric offset",
			input:    "2025-03-14T22:10:00+05:30",
			expected: "2025-03-14",
			ok:       true,
		},
		{
			name:     "bare ISO date",
			input:    "1990-05-10",
			expected: "1990-05-10",
			ok:       true,
		},
		{
			name:     "natural language date",
			input:    "March 5, 1990",
			expected: "1990-03-05",
			ok:       true,
		},
		{
			name:  "unparsable input",
			input: "not a date at all",
			ok:    false,
		},
		{
			name:  "empty input",
			input: "",
			ok:    false,
		},
		{
			name:  "whitespace only",
			input: "   ",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceToISO(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dob      string
		expected int
		ok       bool
	}{
		{name: "birthday already passed this year", dob: "1990-05-10", expected: 36, ok: true},
		{name: "birthday not yet reached", dob: "1990-12-01", expected: 35, ok: true},
		{name: "birthday today", dob: "2000-08-31", expected: 26, ok: true},
		{name: "invalid dob", dob: "soon", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AgeAt(tt.dob, now)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
