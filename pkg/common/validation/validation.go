package validation

import (
	"fmt"
	"time"

	cperrors "github.com/vnykmshr/cronplan/pkg/common/errors"
)

// ValidateRange validates that an integer value lies within the
// inclusive range [min, max]. Returns a ValidationError otherwise.
func ValidateRange(module, field string, value, min, max int) error {
	if value < min || value > max {
		return cperrors.NewValidationError(module, field, value,
			fmt.Sprintf("must be between %d and %d", min, max)).
			WithHint(fmt.Sprintf("use a value from %d to %d", min, max))
	}
	return nil
}

// ValidateWeekday validates that a time.Weekday holds one of the seven
// canonical values. Casts like time.Weekday(7) are rejected.
func ValidateWeekday(module, field string, day time.Weekday) error {
	if day < time.Sunday || day > time.Saturday {
		return cperrors.NewValidationError(module, field, int(day), "not a recognized weekday").
			WithHint("use one of the seven time.Weekday constants")
	}
	return nil
}

// ValidateMonth validates that a time.Month holds one of the twelve
// canonical values.
func ValidateMonth(module, field string, month time.Month) error {
	if month < time.January || month > time.December {
		return cperrors.NewValidationError(module, field, int(month), "not a recognized month").
			WithHint("use one of the twelve time.Month constants")
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func ValidateNotEmpty(module, field, value string) error {
	if value == "" {
		return cperrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}
