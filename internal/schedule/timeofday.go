package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pranavb/lockin/internal/errors"
)

// TimeOfDay is a count of minutes since midnight, 0..1439.
// All schedule times are stored as "HH:MM" strings at the boundary and
// converted to this form for computation.
type TimeOfDay int

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ParseClock parses a strict clock string into a TimeOfDay.
// The hour may be one or two digits (0-23); the minute must be exactly
// two digits (00-59). "9:05" is accepted, "9:5", "25:00" and "abc" are not.
func ParseClock(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, errors.NewInvalidTime(s)
	}
	if len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, errors.NewInvalidTime(s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, errors.NewInvalidTime(s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, errors.NewInvalidTime(s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Valid reports whether t falls within a calendar day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Clock formats t as "HH:MM" with zero-padded fields.
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
