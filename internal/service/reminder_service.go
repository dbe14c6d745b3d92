package service

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/tazhate/hoabot/internal/clock"
	"github.com/tazhate/hoabot/internal/domain"
	"github.com/tazhate/hoabot/internal/metrics"
)

// ErrScheduling is matched by every *SchedulingError via errors.Is.
var ErrScheduling = errors.New("reminder scheduling failed")

// SchedulingError means the task runner refused a daily registration.
type SchedulingError struct {
	ChatID int64
	Err    error
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("schedule reminder for chat %d: %v", e.ChatID, e.Err)
}

func (e *SchedulingError) Unwrap() error { return e.Err }

func (e *SchedulingError) Is(target error) bool { return target == ErrScheduling }

// Runner installs and removes daily jobs.
type Runner interface {
	ScheduleDaily(at clock.TimeOfDay, loc *time.Location, job func()) (domain.ReminderHandle, error)
	Cancel(handle domain.ReminderHandle)
}

type Sender interface {
	SendMessage(chatID int64, text string) error
}

// ReminderService keeps at most one daily reminder per chat. Setting a new
// reminder replaces the previous one; it never runs both.
type ReminderService struct {
	runner   Runner
	timezone *time.Location
	metrics  *metrics.Metrics
	logger   *slog.Logger

	mu     sync.Mutex
	slots  map[int64]*domain.ReminderSlot
	sender Sender
}

func NewReminderService(runner Runner, tz *time.Location, m *metrics.Metrics, logger *slog.Logger) *ReminderService {
	return &ReminderService{
		runner:   runner,
		timezone: tz,
		metrics:  m,
		logger:   logger.With(slog.String("logger", "reminders")),
		slots:    make(map[int64]*domain.ReminderSlot),
	}
}

func (s *ReminderService) SetSender(sender Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = sender
}

// Set installs a daily reminder for chatID at the given time, replacing any
// reminder the chat already had. Empty text falls back to DefaultReminderText.
func (s *ReminderService) Set(chatID int64, at clock.TimeOfDay, text string) (*domain.ReminderSlot, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		text = domain.DefaultReminderText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(chatID)

	handle, err := s.runner.ScheduleDaily(at, s.timezone, func() {
		s.Fire(chatID, text)
	})
	if err != nil {
		return nil, &SchedulingError{ChatID: chatID, Err: err}
	}

	slot := &domain.ReminderSlot{
		ChatID: chatID,
		At:     at,
		Text:   text,
		Handle: handle,
	}
	s.slots[chatID] = slot
	s.metrics.RemindersActive.Set(float64(len(s.slots)))

	s.logger.Info(
		"reminder set",
		slog.Int64("chat_id", chatID),
		slog.String("at", at.String()),
		slog.String("timezone", s.timezone.String()),
	)

	c := *slot
	return &c, nil
}

// Cancel removes the chat's reminder and reports whether there was one.
func (s *ReminderService) Cancel(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	had := s.removeLocked(chatID)
	if had {
		s.logger.Info("reminder cancelled", slog.Int64("chat_id", chatID))
	}
	return had
}

// CancelHandle removes the chat's reminder only if it is still the
// registration identified by handle. It reports whether one was removed.
func (s *ReminderService) CancelHandle(chatID int64, handle domain.ReminderHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[chatID]
	if !ok || slot.Handle != handle {
		return false
	}
	s.removeLocked(chatID)
	s.logger.Info("reminder cancelled", slog.Int64("chat_id", chatID))
	return true
}

// Get returns a copy of the chat's reminder, if any.
func (s *ReminderService) Get(chatID int64) (domain.ReminderSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[chatID]
	if !ok {
		return domain.ReminderSlot{}, false
	}
	return *slot, true
}

func (s *ReminderService) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// Close cancels every registration and empties the registry.
func (s *ReminderService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.slots)
	for chatID := range s.slots {
		s.removeLocked(chatID)
	}
	s.logger.Info("reminders cleared", slog.Int("count", n))
}

// Fire delivers a reminder. It is called by the task runner and never fails:
// delivery errors are logged so other chats and later days are unaffected.
func (s *ReminderService) Fire(chatID int64, text string) {
	s.metrics.ReminderFires.Inc()

	s.mu.Lock()
	sender := s.sender
	s.mu.Unlock()

	if sender == nil {
		s.logger.Warn("reminder fired without a sender", slog.Int64("chat_id", chatID))
		return
	}

	if err := s.send(sender, chatID, ReminderMessage(text)); err != nil {
		s.metrics.ReminderSendFailure.Inc()
		s.logger.Error("error sending reminder", slog.Int64("chat_id", chatID), tint.Err(err))
	}
}

func (s *ReminderService) send(sender Sender, chatID int64, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sender panic: %v", r)
		}
	}()
	return sender.SendMessage(chatID, text)
}

func (s *ReminderService) removeLocked(chatID int64) bool {
	slot, ok := s.slots[chatID]
	if !ok {
		return false
	}
	s.runner.Cancel(slot.Handle)
	delete(s.slots, chatID)
	s.metrics.RemindersActive.Set(float64(len(s.slots)))
	return true
}

// ReminderMessage is the text sent when a reminder fires.
func ReminderMessage(text string) string {
	return "💧 <b>Tới giờ uống nước rồi nè!</b> 💧\n\n" +
		"📌 " + html.EscapeString(text) + "\n" +
		"Nhấp vài ngụm cho tỉnh táo, đừng để khô như cá mắm nha 😆"
}
