package tui

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ElevationValidator accepts elevation degrees within [1, 90].
func ElevationValidator(value string) error {
	deg, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("enter an elevation in degrees [1-90]")
	}
	if deg < 1 || deg > 90 {
		return fmt.Errorf("elevation must be between 1 and 90 degrees")
	}
	return nil
}

// DurationValidator accepts whole minutes within [1, max].
func DurationValidator(max int) Validator {
	return func(value string) error {
		mins, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("enter a whole number of minutes [1-%d]", max)
		}
		if mins < 1 || mins > max {
			return fmt.Errorf("contact duration must be between 1 and %d minutes", max)
		}
		return nil
	}
}

// DateValidator accepts calendar dates in YYYY-MM-DD form.
func DateValidator(value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("enter a valid date in the YYYY-MM-DD format")
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD value as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// FormatDate renders a time as its YYYY-MM-DD date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
