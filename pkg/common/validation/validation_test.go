package validation

import (
	"testing"
	"time"

	"github.com/vnykmshr/cronplan/pkg/common/errors"
)

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		min       int
		max       int
		wantError bool
	}{
		{"at lower bound", 0, 0, 59, false},
		{"at upper bound", 59, 0, 59, false},
		{"inside range", 30, 0, 59, false},
		{"below lower bound", -1, 0, 59, true},
		{"above upper bound", 60, 0, 59, true},
		{"one-based lower bound", 1, 1, 31, false},
		{"zero in one-based range", 0, 1, 31, true},
		{"single value range", 5, 5, 5, false},
		{"outside single value range", 6, 5, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange("test", "value", tt.value, tt.min, tt.max)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidateWeekday(t *testing.T) {
	tests := []struct {
		name      string
		day       time.Weekday
		wantError bool
	}{
		{"Sunday", time.Sunday, false},
		{"Monday", time.Monday, false},
		{"Saturday", time.Saturday, false},
		{"below range", time.Weekday(-1), true},
		{"above range", time.Weekday(7), true},
		{"far above range", time.Weekday(100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeekday("test", "day", tt.day)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		name      string
		month     time.Month
		wantError bool
	}{
		{"January", time.January, false},
		{"December", time.December, false},
		{"zero month", time.Month(0), true},
		{"thirteenth month", time.Month(13), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMonth("test", "month", tt.month)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantError bool
	}{
		{"non-empty string", "value", false},
		{"single char", "a", false},
		{"whitespace", " ", false}, // whitespace is not empty
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty("test", "name", tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	t.Run("ValidateRange error details", func(t *testing.T) {
		err := ValidateRange("cronexpr", "hour", 24, 0, 23)
		if err == nil {
			t.Fatal("expected error")
		}

		valErr, ok := err.(*errors.ValidationError)
		if !ok {
			t.Fatal("could not cast to ValidationError")
		}

		if valErr.Module != "cronexpr" {
			t.Errorf("Module = %q, want %q", valErr.Module, "cronexpr")
		}
		if valErr.Field != "hour" {
			t.Errorf("Field = %q, want %q", valErr.Field, "hour")
		}
		if valErr.Value != 24 {
			t.Errorf("Value = %v, want %v", valErr.Value, 24)
		}
		if valErr.Reason != "must be between 0 and 23" {
			t.Errorf("Reason = %q, want %q", valErr.Reason, "must be between 0 and 23")
		}
		if valErr.Hint != "use a value from 0 to 23" {
			t.Errorf("Hint = %q, want %q", valErr.Hint, "use a value from 0 to 23")
		}
	})

	t.Run("ValidateWeekday error details", func(t *testing.T) {
		err := ValidateWeekday("cronexpr", "day", time.Weekday(9))
		if err == nil {
			t.Fatal("expected error")
		}

		valErr, ok := err.(*errors.ValidationError)
		if !ok {
			t.Fatal("could not cast to ValidationError")
		}

		if valErr.Reason != "not a recognized weekday" {
			t.Errorf("Reason = %q, want %q", valErr.Reason, "not a recognized weekday")
		}
		if valErr.Value != 9 {
			t.Errorf("Value = %v, want %v", valErr.Value, 9)
		}
	})
}

func TestValidationErrorWrapping(t *testing.T) {
	// All validation failures belong to the invalid-argument class.
	testCases := []struct {
		name string
		err  error
	}{
		{"ValidateRange", ValidateRange("test", "field", -1, 0, 59)},
		{"ValidateWeekday", ValidateWeekday("test", "field", time.Weekday(7))},
		{"ValidateMonth", ValidateMonth("test", "field", time.Month(0))},
		{"ValidateNotEmpty", ValidateNotEmpty("test", "field", "")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsValidationError(tc.err) {
				t.Error("error should be a ValidationError")
			}
			if !errors.IsInvalidArgument(tc.err) {
				t.Error("error should wrap ErrInvalidArgument")
			}
		})
	}
}
