package clock

import (
	"errors"
	"time"

	"github.com/teambition/rrule-go"
)

// ErrNoTetDate is returned when the lunar new year table has run out.
var ErrNoTetDate = errors.New("no known Tet date after now")

// tetDates lists the first day of the lunar new year (Vietnam).
var tetDates = []struct {
	year  int
	month time.Month
	day   int
}{
	{2024, time.February, 10},
	{2025, time.January, 29},
	{2026, time.February, 17},
	{2027, time.February, 6},
	{2028, time.January, 26},
	{2029, time.February, 13},
	{2030, time.February, 3},
	{2031, time.January, 23},
	{2032, time.February, 11},
	{2033, time.January, 31},
	{2034, time.February, 19},
	{2035, time.February, 8},
	{2036, time.January, 28},
	{2037, time.February, 15},
	{2038, time.February, 4},
	{2039, time.January, 24},
	{2040, time.February, 12},
	{2041, time.February, 1},
	{2042, time.January, 22},
	{2043, time.February, 10},
	{2044, time.January, 30},
	{2045, time.February, 17},
	{2046, time.February, 6},
	{2047, time.January, 26},
	{2048, time.February, 14},
	{2049, time.February, 2},
	{2050, time.January, 23},
}

type ShiftStatus struct {
	Remaining int
	Ended     bool
}

type HolidayCountdown struct {
	Remaining int
	Arrived   bool
}

// ShiftEndStatus reports how long until the shift ends today. Being exactly at
// the end instant still counts as "not ended" with zero seconds remaining.
func ShiftEndStatus(now time.Time, shiftEnd TimeOfDay) ShiftStatus {
	end := shiftEnd.On(now)
	if now.After(end) {
		return ShiftStatus{Ended: true}
	}
	return ShiftStatus{Remaining: SecondsUntil(now, end)}
}

// HolidayStatus reports the countdown to target; zero or negative remaining
// time means the holiday has arrived.
func HolidayStatus(now, target time.Time) HolidayCountdown {
	remaining := SecondsUntil(now, target)
	if remaining > 0 {
		return HolidayCountdown{Remaining: remaining}
	}
	return HolidayCountdown{Arrived: true}
}

// NextAnnualOccurrence returns midnight of month/day in now's location: this
// year if that instant is strictly after now, next matching year otherwise.
// Equality counts as passed. February 29 resolves to the next leap year. The
// zero time is returned for dates that never exist.
func NextAnnualOccurrence(now time.Time, month time.Month, day int) time.Time {
	if probe := time.Date(2000, month, day, 0, 0, 0, 0, time.UTC); probe.Month() != month || probe.Day() != day {
		return time.Time{}
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:       rrule.YEARLY,
		Dtstart:    time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
		Bymonth:    []int{int(month)},
		Bymonthday: []int{day},
	})
	if err != nil {
		return time.Time{}
	}
	return rule.After(now, false)
}

// Noel returns the Christmas instant to count down to. On December 25 itself
// it is today's midnight, so HolidayStatus reports the day as arrived.
func Noel(now time.Time) time.Time {
	if now.Month() == time.December && now.Day() == 25 {
		return midnight(now)
	}
	return NextAnnualOccurrence(now, time.December, 25)
}

// Tet returns the next lunar new year's day at midnight, or today's midnight
// when now falls on it.
func Tet(now time.Time) (time.Time, error) {
	today := midnight(now)
	for _, d := range tetDates {
		t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, now.Location())
		if t.Equal(today) || t.After(now) {
			return t, nil
		}
	}
	return time.Time{}, ErrNoTetDate
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
