package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tazhate/hoabot/internal/clock"
)

var ict = time.FixedZone("ICT", 7*3600)

func newTestScheduler(t *testing.T, loc *time.Location) *Scheduler {
	t.Helper()
	s := New(loc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Stop(ctx)
	})
	return s
}

func TestDailySpec(t *testing.T) {
	at := clock.TimeOfDay{Hour: 9, Minute: 5}
	hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	assert.Equal(t, "5 9 * * *", dailySpec(at, time.UTC, time.UTC))
	assert.Equal(t, "5 9 * * *", dailySpec(at, ict, ict))
	assert.Equal(t, "5 9 * * *", dailySpec(at, nil, ict))
	assert.Equal(t, "CRON_TZ=Asia/Ho_Chi_Minh 5 9 * * *", dailySpec(at, hcm, time.UTC))
}

func TestScheduleDaily(t *testing.T) {
	s := newTestScheduler(t, time.UTC)

	h, err := s.ScheduleDaily(clock.TimeOfDay{Hour: 9, Minute: 30}, time.UTC, func() {})
	require.NoError(t, err)

	next := s.next(h).UTC()
	require.False(t, next.IsZero())
	assert.Equal(t, 9, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.True(t, next.After(time.Now()))
	assert.True(t, next.Before(time.Now().Add(24*time.Hour+time.Minute)))
}

func TestScheduleDaily_FixedZone(t *testing.T) {
	s := newTestScheduler(t, ict)

	h, err := s.ScheduleDaily(clock.TimeOfDay{Hour: 21, Minute: 15}, ict, func() {})
	require.NoError(t, err)

	next := s.next(h).In(ict)
	require.False(t, next.IsZero())
	assert.Equal(t, 21, next.Hour())
	assert.Equal(t, 15, next.Minute())
}

func TestCancel(t *testing.T) {
	s := newTestScheduler(t, time.UTC)

	h, err := s.ScheduleDaily(clock.TimeOfDay{Hour: 7}, time.UTC, func() {})
	require.NoError(t, err)

	s.Cancel(h)
	assert.True(t, s.next(h).IsZero())

	// second cancel of the same handle is a no-op
	s.Cancel(h)
	s.Cancel(h + 100)
}

func TestPanickingJobDoesNotStopOthers(t *testing.T) {
	s := newTestScheduler(t, time.UTC)

	var panics, runs atomic.Int32
	_, err := s.cron.AddFunc("@every 1s", func() {
		panics.Add(1)
		panic("job failed")
	})
	require.NoError(t, err)
	_, err = s.cron.AddFunc("@every 1s", func() {
		runs.Add(1)
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond)
	assert.GreaterOrEqual(t, panics.Load(), int32(1))
}
