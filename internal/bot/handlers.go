package bot

import (
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lmittmann/tint"
	"github.com/tazhate/hoabot/internal/domain"
)

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic handling update", slog.Int("update_id", update.UpdateID), slog.Any("panic", r))
		}
	}()

	if update.Message != nil {
		b.handleMessage(update.Message)
	} else if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(msg)
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	msgID := callback.Message.MessageID

	r, ok := b.respondCallback(chatID, callback.Data)
	b.answerCallback(callback.ID, "")
	if !ok {
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, msgID, r.text)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Error("error editing message", slog.Int64("chat_id", chatID), tint.Err(err))
	}
}

// respondCallback handles inline button data. ok is false for data the bot
// does not recognize; the message is then left as is.
func (b *Bot) respondCallback(chatID int64, data string) (r reply, ok bool) {
	action, arg, _ := strings.Cut(data, ":")

	switch action {
	case callbackCancelReminder:
		handle, err := strconv.Atoi(arg)
		if err != nil {
			return reply{}, false
		}
		if b.reminders.CancelHandle(chatID, domain.ReminderHandle(handle)) {
			return reply{text: reminderCancelledText}, true
		}
		if _, exists := b.reminders.Get(chatID); exists {
			return reply{text: reminderStaleText}, true
		}
		return reply{text: reminderNothingText}, true
	default:
		return reply{}, false
	}
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		b.logger.Warn("error answering callback", tint.Err(err))
	}
}
