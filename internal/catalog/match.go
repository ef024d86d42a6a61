package catalog

import (
	"sort"
	"strings"

	"github.com/Hassaan9289/AirlinePoc/internal/models"
)

// bookableStatuses is the set of flight statuses open for reservation.
var bookableStatuses = map[models.FlightStatus]bool{
	models.FlightStatusScheduled: true,
	models.FlightStatusDelayed:   true,
	models.FlightStatusBoarding:  true,
}

// Normalize canonicalizes a city name for comparison.
func Normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Bookable reports whether a flight can accept new reservations.
func Bookable(f *models.Flight) bool {
	return bookableStatuses[f.Status] && f.SeatsAvailable > 0
}

// MatchesCities reports whether a flight matches whichever city filters the
// criteria carries. Absent filters match everything.
func MatchesCities(f *models.Flight, c models.SearchCriteria) bool {
	if c.DepartureCity != "" && Normalize(f.DepartureCity) != Normalize(c.DepartureCity) {
		return false
	}
	if c.ArrivalCity != "" && Normalize(f.ArrivalCity) != Normalize(c.ArrivalCity) {
		return false
	}
	return true
}

// MatchesDate reports whether a flight departs on the given ISO date. An
// empty date matches everything.
func MatchesDate(f *models.Flight, isoDate string) bool {
	if isoDate == "" {
		return true
	}
	return f.DepartureTime.Format("2006-01-02") == isoDate
}

// Facets summarizes what the catalog offers around a set of criteria:
// destinations reachable from the departure filter, travel dates on the
// selected route, and the union of seat classes.
func Facets(flights []models.Flight, c models.SearchCriteria) map[string]interface{} {
	destSet := map[string]bool{}
	dateSet := map[string]bool{}
	classSet := map[string]bool{}

	for i := range flights {
		f := &flights[i]
		if !Bookable(f) {
			continue
		}
		if c.DepartureCity == "" || Normalize(f.DepartureCity) == Normalize(c.DepartureCity) {
			destSet[f.ArrivalCity] = true
		}
		if MatchesCities(f, c) {
			dateSet[f.DepartureTime.Format("2006-01-02")] = true
			for _, cls := range f.AvailableClasses {
				classSet[cls] = true
			}
		}
	}

	return map[string]interface{}{
		"destinations":    sortedKeys(destSet),
		"departure_dates": sortedKeys(dateSet),
		"classes":         sortedKeys(classSet),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
