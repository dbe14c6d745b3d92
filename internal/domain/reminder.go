package domain

import "github.com/tazhate/hoabot/internal/clock"

// DefaultReminderText is used when a reminder is set without its own text.
const DefaultReminderText = "Uống nước nhaa 💧"

// ReminderHandle identifies a recurring registration in the task runner.
type ReminderHandle int

// ReminderSlot is the single daily reminder a chat may own.
type ReminderSlot struct {
	ChatID int64
	At     clock.TimeOfDay
	Text   string
	Handle ReminderHandle
}
