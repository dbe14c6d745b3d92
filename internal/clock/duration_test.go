package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0 giây"},
		{-5, "0 giây"},
		{59, "59 giây"},
		{60, "1 phút 0 giây"},
		{3600, "1 giờ 0 giây"},
		{3661, "1 giờ 1 phút 1 giây"},
		{26*3600 + 5, "26 giờ 5 giây"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
	assert.Equal(t, FormatDuration(0), FormatDuration(-5))
}

func TestSecondsUntil(t *testing.T) {
	now := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 90, SecondsUntil(now, now.Add(90*time.Second+900*time.Millisecond)))
	assert.Equal(t, 0, SecondsUntil(now, now.Add(999*time.Millisecond)))
	assert.Equal(t, -1, SecondsUntil(now, now.Add(-1500*time.Millisecond)))
	assert.Equal(t, 0, SecondsUntil(now, now))
}
