package booking

import (
	"fmt"
	"time"

	"github.com/Hassaan9289/AirlinePoc/internal/dates"
	"github.com/Hassaan9289/AirlinePoc/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Issue is one structured validation finding, tagged with the passenger
// index it concerns.
type Issue struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func missingField(field string, index int) Issue {
	return Issue{Index: index, Field: field, Message: "Required field is missing."}
}

// validatePassengers checks every record up to max(count, len(records)),
// treating indexes past the supplied records as empty submissions. It
// collects all issues rather than failing fast and always returns the full
// issue list. An age that disagrees with the date of birth is a soft
// warning: the issue is reported but the passenger is still accepted.
func validatePassengers(records []PassengerInput, count int, now time.Time) ([]models.Passenger, []Issue) {
	issues := []Issue{}
	validated := []models.Passenger{}

	total := count
	if len(records) > total {
		total = len(records)
	}

	for idx := 0; idx < total; idx++ {
		var entry PassengerInput
		if idx < len(records) {
			entry = records[idx]
		}

		var missing []Issue
		if entry.Name == "" {
			missing = append(missing, missingField("name", idx))
		}
		if entry.Age == nil {
			missing = append(missing, missingField("age", idx))
		}
		if entry.Gender == "" {
			missing = append(missing, missingField("gender", idx))
		}
		if entry.DOB == "" {
			missing = append(missing, missingField("dob", idx))
		}
		if entry.Email == "" {
			missing = append(missing, missingField("email", idx))
		}
		if len(missing) > 0 {
			issues = append(issues, missing...)
			continue
		}

		dob := entry.DOB
		if iso, ok := dates.CoerceToISO(dob); ok {
			dob = iso
		}

		passenger := models.Passenger{
			Name:   entry.Name,
			Age:    *entry.Age,
			Gender: entry.Gender,
			DOB:    dob,
			Email:  entry.Email,
		}
		if err := validate.Struct(passenger); err != nil {
			issues = append(issues, Issue{Index: idx, Field: "passenger", Message: err.Error()})
			continue
		}

		if expected, ok := dates.AgeAt(passenger.DOB, now); ok && expected != passenger.Age {
			issues = append(issues, Issue{
				Index:   idx,
				Field:   "age",
				Message: fmt.Sprintf("Age does not match DOB; expected approximately %d.", expected),
			})
		}

		validated = append(validated, passenger)
	}

	return validated, issues
}

// validationPayload is the structured validation block embedded in preview
// and failure envelopes.
func validationPayload(issues []Issue, parseErrors []string) map[string]interface{} {
	if parseErrors == nil {
		parseErrors = []string{}
	}
	return map[string]interface{}{
		"ok":           len(issues) == 0 && len(parseErrors) == 0,
		"issues":       issues,
		"parse_errors": parseErrors,
	}
}
