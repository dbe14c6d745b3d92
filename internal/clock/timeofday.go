// Package clock holds the pure time arithmetic behind reminders and countdowns.
// Nothing here reads the wall clock; callers pass "now" already converted to
// the bot's timezone.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrFormat is matched by every *FormatError via errors.Is.
var ErrFormat = errors.New("invalid time of day")

// FormatError reports a time-of-day string that is not a valid "HH:MM".
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time of day %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (leading zeros optional).
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, &FormatError{Input: text, Reason: "want HH:MM"}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, &FormatError{Input: text, Reason: "hour is not a number"}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, &FormatError{Input: text, Reason: "minute is not a number"}
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, &FormatError{Input: text, Reason: "hour out of range"}
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, &FormatError{Input: text, Reason: "minute out of range"}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant at t on the calendar day of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}
