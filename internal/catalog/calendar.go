package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/Hassaan9289/AirlinePoc/internal/models"
)

// SplitDateTime breaks a timestamp into the display parts the calendar
// view needs, including a formatted UTC offset.
func SplitDateTime(t time.Time) map[string]interface{} {
	return map[string]interface{}{
		"iso":        t.Format(time.RFC3339),
		"date":       t.Format("2006-01-02"),
		"time":       t.Format("15:04"),
		"weekday":    t.Weekday().String(),
		"utc_offset": FormatOffset(t),
	}
}

// FormatOffset renders a timestamp's zone as "UTC±HH:MM".
func FormatOffset(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offset/3600, (offset%3600)/60)
}

// ArrivalCalendar groups catalog flights by arrival date, ascending, with
// per-flight departure/arrival display parts.
func ArrivalCalendar(flights []models.Flight) map[string]interface{} {
	byDate := map[string][]map[string]interface{}{}
	enriched := make([]map[string]interface{}, 0, len(flights))

	for i := range flights {
		f := &flights[i]
		arrival := SplitDateTime(f.ArrivalTime)
		summary := map[string]interface{}{
			"flight_id":              f.FlightID,
			"airline":                f.Airline,
			"flight_number":          f.FlightNumber,
			"departure_city":         f.DepartureCity,
			"arrival_city":           f.ArrivalCity,
			"departure_airport_code": f.DepartureAirportCode,
			"arrival_airport_code":   f.ArrivalAirportCode,
			"status":                 f.Status,
			"arrival":                arrival,
			"departure":              SplitDateTime(f.DepartureTime),
		}
		enriched = append(enriched, summary)
		date := arrival["date"].(string)
		byDate[date] = append(byDate[date], summary)
	}

	ordered := make([]string, 0, len(byDate))
	for date := range byDate {
		ordered = append(ordered, date)
	}
	sort.Strings(ordered)

	calendar := make([]map[string]interface{}, 0, len(ordered))
	for _, date := range ordered {
		day, _ := time.Parse("2006-01-02", date)
		calendar = append(calendar, map[string]interface{}{
			"date":    date,
			"weekday": day.Weekday().String(),
			"flights": byDate[date],
		})
	}

	meta := map[string]interface{}{}
	if len(ordered) > 0 {
		meta = map[string]interface{}{
			"total_flights": len(enriched),
			"first_arrival": ordered[0],
			"last_arrival":  ordered[len(ordered)-1],
		}
	}

	return map[string]interface{}{
		"calendar": calendar,
		"flights":  enriched,
		"meta":     meta,
	}
}
