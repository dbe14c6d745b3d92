package bot

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lmittmann/tint"
	"github.com/tazhate/hoabot/internal/clock"
)

// reply is what a command answers with.
type reply struct {
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

var knownCommands = map[string]bool{
	"start":    true,
	"help":     true,
	"ancom":    true,
	"divesinh": true,
	"uongnuoc": true,
	"cancel":   true,
	"xuongca":  true,
	"noel":     true,
	"tet":      true,
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	cmd := msg.Command()
	args := strings.TrimSpace(msg.CommandArguments())

	r := b.respond(chatID, cmd, args)

	var err error
	if r.keyboard != nil {
		err = b.SendMessageWithKeyboard(chatID, r.text, *r.keyboard)
	} else {
		err = b.SendMessage(chatID, r.text)
	}
	if err != nil {
		b.logger.Error("error sending reply", slog.String("command", cmd), slog.Int64("chat_id", chatID), tint.Err(err))
	}
}

func (b *Bot) respond(chatID int64, cmd, args string) reply {
	label := cmd
	if !knownCommands[cmd] {
		label = "unknown"
	}
	b.metrics.Commands.WithLabelValues(label).Inc()
	b.logger.Debug("handling command", slog.String("command", cmd), slog.Int64("chat_id", chatID))

	switch cmd {
	case "start", "help":
		return b.cmdStart(chatID)
	case "ancom":
		return reply{text: pick(mealJokes)}
	case "divesinh":
		return reply{text: pick(restroomJokes)}
	case "uongnuoc":
		return b.cmdSetReminder(chatID, args)
	case "cancel":
		return b.cmdCancelReminder(chatID)
	case "xuongca":
		return b.cmdShiftEnd()
	case "noel":
		return b.cmdNoel()
	case "tet":
		return b.cmdTet()
	default:
		return reply{text: unknownCommandText}
	}
}

// parseReminderArgs splits "HH:MM [text...]" into the time and the reminder
// text. The text is empty when only a time was given.
func parseReminderArgs(args string) (clock.TimeOfDay, string, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return clock.TimeOfDay{}, "", &clock.FormatError{Input: args, Reason: "missing time"}
	}

	at, err := clock.ParseTimeOfDay(fields[0])
	if err != nil {
		return clock.TimeOfDay{}, "", err
	}
	return at, strings.Join(fields[1:], " "), nil
}

func (b *Bot) cmdSetReminder(chatID int64, args string) reply {
	at, text, err := parseReminderArgs(args)
	if err != nil {
		return reply{text: reminderUsageText}
	}

	slot, err := b.reminders.Set(chatID, at, text)
	if err != nil {
		b.logger.Error("error setting reminder", slog.Int64("chat_id", chatID), tint.Err(err))
		return reply{text: reminderFailedText}
	}

	kb := cancelReminderKeyboard(slot.Handle)
	return reply{
		text: fmt.Sprintf(
			"💧 <b>Đã đặt nhắc uống nước!</b> 💧\n\n"+
				"Bot sẽ canh giờ cho bạn như canh nồi lẩu 😄\n\n"+
				"⏰ Giờ nhắc: <b>%s</b> mỗi ngày\n"+
				"📝 Nội dung: %s",
			slot.At, html.EscapeString(slot.Text),
		),
		keyboard: &kb,
	}
}

func (b *Bot) cmdStart(chatID int64) reply {
	slot, ok := b.reminders.Get(chatID)
	if !ok {
		return reply{text: welcomeText}
	}
	return reply{text: fmt.Sprintf(
		"%s\n\n⏰ Đang nhắc uống nước lúc <b>%s</b> mỗi ngày",
		welcomeText, slot.At,
	)}
}

func (b *Bot) cmdCancelReminder(chatID int64) reply {
	if b.reminders.Cancel(chatID) {
		return reply{text: reminderCancelledText}
	}
	return reply{text: reminderNothingText}
}

func (b *Bot) cmdShiftEnd() reply {
	status := clock.ShiftEndStatus(b.now(), b.cfg.ShiftEnd)
	if status.Ended {
		return reply{text: shiftEndedText}
	}
	return reply{text: fmt.Sprintf(
		"🏁 <b>Đếm ngược xuống ca nèeee!</b> 🏁\n\n"+
			"Ráng thêm xíu nữa là được tự do rồi 😎\n\n"+
			"⏳ Còn: <b>%s</b>",
		clock.FormatDuration(status.Remaining),
	)}
}

func (b *Bot) cmdNoel() reply {
	now := b.now()
	status := clock.HolidayStatus(now, clock.Noel(now))
	if status.Arrived {
		return reply{text: pick(noelArrived)}
	}
	return reply{text: fmt.Sprintf(pick(noelUpcoming), clock.FormatDuration(status.Remaining))}
}

func (b *Bot) cmdTet() reply {
	now := b.now()
	target, err := clock.Tet(now)
	if err != nil {
		b.logger.Warn("no Tet date available", tint.Err(err))
		return reply{text: tetUnknownText}
	}

	status := clock.HolidayStatus(now, target)
	if status.Arrived {
		return reply{text: pick(tetArrived)}
	}
	return reply{text: fmt.Sprintf(pick(tetUpcoming), clock.FormatDuration(status.Remaining))}
}
