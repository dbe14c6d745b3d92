package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tazhate/hoabot/internal/domain"
)

const callbackCancelReminder = "cancel_water"

// Shown under the set-reminder confirmation. The handle ties the button to
// that particular reminder.
func cancelReminderKeyboard(handle domain.ReminderHandle) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧹 Hủy nhắc", fmt.Sprintf("%s:%d", callbackCancelReminder, handle)),
		),
	)
}
