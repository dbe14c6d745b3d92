// Package scheduler runs daily jobs on robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/robfig/cron/v3"
	"github.com/tazhate/hoabot/internal/clock"
	"github.com/tazhate/hoabot/internal/domain"
)

type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func New(location *time.Location, logger *slog.Logger) *Scheduler {
	logger = logger.With(slog.String("logger", "scheduler"))
	cl := cronLogger{logger: logger}

	c := cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl)),
	)

	return &Scheduler{
		cron:   c,
		logger: logger,
	}
}

// ScheduleDaily runs job every day at the given time in loc.
func (s *Scheduler) ScheduleDaily(at clock.TimeOfDay, loc *time.Location, job func()) (domain.ReminderHandle, error) {
	spec := dailySpec(at, loc, s.cron.Location())
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return 0, fmt.Errorf("add daily job %q: %w", spec, err)
	}
	s.logger.Debug("job added", slog.String("spec", spec), slog.Int("entry", int(id)))
	return domain.ReminderHandle(id), nil
}

// Cancel removes a job. Unknown handles are ignored.
func (s *Scheduler) Cancel(handle domain.ReminderHandle) {
	s.cron.Remove(cron.EntryID(handle))
}

// next reports when the job runs next; zero if the handle is unknown.
func (s *Scheduler) next(handle domain.ReminderHandle) time.Time {
	return s.cron.Entry(cron.EntryID(handle)).Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", slog.String("timezone", s.cron.Location().String()))
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out", tint.Err(ctx.Err()))
	}
}

// dailySpec builds a five-field cron spec. The CRON_TZ prefix is only added
// when loc differs from the cron's own location, since it needs an IANA name.
func dailySpec(at clock.TimeOfDay, loc, base *time.Location) string {
	spec := fmt.Sprintf("%d %d * * *", at.Minute, at.Hour)
	if loc == nil || loc == base || loc.String() == base.String() {
		return spec
	}
	return fmt.Sprintf("CRON_TZ=%s %s", loc.String(), spec)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, tint.Err(err))...)
}
