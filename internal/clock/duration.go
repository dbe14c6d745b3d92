package clock

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders seconds as "1 giờ 1 phút 1 giây". Hours and minutes
// are omitted when zero; seconds are always present. Negative input counts as 0.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d giờ", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%d phút", m))
	}
	parts = append(parts, fmt.Sprintf("%d giây", s))

	return strings.Join(parts, " ")
}

// SecondsUntil returns target-now in whole seconds, truncated toward zero.
// The result is negative when target is in the past.
func SecondsUntil(now, target time.Time) int {
	return int(target.Sub(now) / time.Second)
}
