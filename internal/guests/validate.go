package guests

import (
	"errors"

	"github.com/mmynk/guestlist/internal/models"
)

// Reason identifies the rule a draft failed.
type Reason string

const (
	ReasonMissingFields    Reason = "missing_fields"
	ReasonAgeUnderOne      Reason = "age_under_one"
	ReasonMinorMarkedAdult Reason = "minor_marked_adult"
)

var reasonMessages = map[Reason]string{
	ReasonMissingFields:    "missing required fields",
	ReasonAgeUnderOne:      "age cannot be negative or under one year",
	ReasonMinorMarkedAdult: "a guest under 18 cannot be marked as an adult",
}

// ErrValidation matches every *ValidationError under errors.Is.
var ErrValidation = errors.New("guest rejected")

// Sentinels for each rule, for use with errors.Is.
var (
	ErrMissingFields    = &ValidationError{Reason: ReasonMissingFields}
	ErrAgeUnderOne      = &ValidationError{Reason: ReasonAgeUnderOne}
	ErrMinorMarkedAdult = &ValidationError{Reason: ReasonMinorMarkedAdult}
)

// ValidationError is returned when a draft cannot be added.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	if msg, ok := reasonMessages[e.Reason]; ok {
		return msg
	}
	return string(e.Reason)
}

// Is reports whether target is ErrValidation or a ValidationError with the
// same reason.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	t, ok := target.(*ValidationError)
	return ok && t.Reason == e.Reason
}

// AdultAge is the age from which a guest may be marked as an adult.
const AdultAge = 18

// Validate checks a draft against the admission rules, in order; the first
// failing rule wins. It has no side effects.
func Validate(d models.Draft) error {
	if d.Name == "" || d.Age == 0 || len(models.ParseHobbies(d.Hobbies)) == 0 {
		return ErrMissingFields
	}
	if d.Age < 1 {
		return ErrAgeUnderOne
	}
	if d.Age < AdultAge && d.Major {
		return ErrMinorMarkedAdult
	}
	return nil
}
