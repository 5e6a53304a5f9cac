package domain

import (
	"math"
	"time"

	"harmony/errors"
)

// Date layouts accepted at the API boundary. The dashboard sends dd/mm/yyyy,
// imported records arrive as ISO dates.
var dateLayouts = []string{"02/01/2006", "2006-01-02"}

// ParseDate parses a date string in either accepted layout and normalizes it
// to midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, dateStr); err == nil {
			return NormalizeDate(parsed), nil
		}
	}
	return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid date, expected dd/mm/yyyy or yyyy-mm-dd", nil)
}

// NightsBetween computes the whole number of nights between two dates.
// Swapped arguments still yield a positive count; callers that need the
// stricter contract use NightsBetweenStrict.
func NightsBetween(checkIn, checkOut time.Time) int {
	start := NormalizeDate(checkIn)
	end := NormalizeDate(checkOut)
	days := end.Sub(start).Hours() / 24
	return int(math.Round(math.Abs(days)))
}

// NightsBetweenStrict is NightsBetween with the rule billing and availability
// both rely on: check-out strictly after check-in.
func NightsBetweenStrict(checkIn, checkOut time.Time) (int, error) {
	if !NormalizeDate(checkOut).After(NormalizeDate(checkIn)) {
		return 0, errors.NewAppError(errors.ErrCodeInvalidRange, "check-out date must be after check-in date", nil)
	}
	return NightsBetween(checkIn, checkOut), nil
}
