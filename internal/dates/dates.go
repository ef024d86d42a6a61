// Package dates coerces the date shapes accepted across the booking API
// (ISO date-times, bare dates, free-form strings) into ISO dates.
package dates

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const isoDate = "2006-01-02"

// CoerceToISO reduces a raw date string to an ISO date (YYYY-MM-DD).
// Accepted forms, in order: an RFC3339 date-time (a trailing "Z" is
// normalized to a numeric offset), a bare ISO date, and finally anything a
// best-effort natural-language parse can resolve. Unparsable input yields
// ("", false) rather than an error; callers decide whether that is fatal.
func CoerceToISO(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	normalized := s
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}
	if t, err := time.Parse(time.RFC3339, normalized); err == nil {
		return t.Format(isoDate), true
	}
	if t, err := time.Parse(isoDate, s); err == nil {
		return t.Format(isoDate), true
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return t.Format(isoDate), true
	}
	return "", false
}

// ParseISO parses an ISO date string.
func ParseISO(s string) (time.Time, bool) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AgeAt computes whole years between an ISO date of birth and a reference
// time, accounting for a birthday not yet reached in the reference year.
func AgeAt(dobISO string, at time.Time) (int, bool) {
	dob, ok := ParseISO(dobISO)
	if !ok {
		return 0, false
	}
	years := at.Year() - dob.Year()
	anniversary := time.Date(at.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	ref := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	if ref.Before(anniversary) {
		years--
	}
	return years, true
}
