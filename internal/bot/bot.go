package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lmittmann/tint"
	"github.com/tazhate/hoabot/config"
	"github.com/tazhate/hoabot/internal/metrics"
	"github.com/tazhate/hoabot/internal/service"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	cfg       *config.Config
	reminders *service.ReminderService
	metrics   *metrics.Metrics
	logger    *slog.Logger
	server    *http.Server
	now       func() time.Time
}

func New(cfg *config.Config, reminders *service.ReminderService, m *metrics.Metrics, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	logger = logger.With(slog.String("logger", "bot"))
	logger.Info("authorized", slog.String("username", api.Self.UserName))

	bot := &Bot{
		api:       api,
		cfg:       cfg,
		reminders: reminders,
		metrics:   m,
		logger:    logger,
		now: func() time.Time {
			return time.Now().In(cfg.Timezone)
		},
	}

	// Set bot commands (menu button)
	bot.setCommands()

	return bot, nil
}

func (b *Bot) setCommands() {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "🤖 Danh sách lệnh"},
		{Command: "ancom", Description: "🍚 Đi ăn cơm"},
		{Command: "divesinh", Description: "🚽 Đi vệ sinh"},
		{Command: "uongnuoc", Description: "💧 Nhắc uống nước mỗi ngày (HH:MM)"},
		{Command: "cancel", Description: "🧹 Hủy nhắc uống nước"},
		{Command: "xuongca", Description: "🏁 Còn bao lâu xuống ca"},
		{Command: "noel", Description: "🎄 Đếm ngược Noel"},
		{Command: "tet", Description: "🧧 Đếm ngược Tết"},
	}

	cfg := tgbotapi.NewSetMyCommands(commands...)
	if _, err := b.api.Request(cfg); err != nil {
		b.logger.Warn("failed to set commands", tint.Err(err))
	}
}

// SetupWebhook registers WebhookURL with Telegram, or removes any webhook
// and drops pending updates when the bot runs in polling mode.
func (b *Bot) SetupWebhook() error {
	if !b.cfg.UseWebhook() {
		if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
			return fmt.Errorf("delete webhook: %w", err)
		}
		return nil
	}

	webhookURL := b.cfg.WebhookURL + "/bot"

	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("create webhook: %w", err)
	}

	_, err = b.api.Request(wh)
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	info, err := b.api.GetWebhookInfo()
	if err != nil {
		return fmt.Errorf("get webhook info: %w", err)
	}

	if info.LastErrorDate != 0 {
		b.logger.Warn("webhook last error", slog.String("message", info.LastErrorMessage))
	}

	b.logger.Info("webhook set", slog.String("url", webhookURL))
	return nil
}

// Start serves /health and /metrics and handles updates until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", b.metrics.Handler())

	var updates tgbotapi.UpdatesChannel
	if b.cfg.UseWebhook() {
		ch := make(chan tgbotapi.Update, b.api.Buffer)
		mux.HandleFunc("/bot", func(w http.ResponseWriter, r *http.Request) {
			update, err := b.api.HandleUpdate(r)
			if err != nil {
				b.logger.Warn("bad webhook update", tint.Err(err))
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			select {
			case ch <- *update:
			case <-r.Context().Done():
			case <-ctx.Done():
			}
		})
		updates = ch
	} else {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates = b.api.GetUpdatesChan(u)
		b.logger.Info("polling for updates")
	}

	b.server = &http.Server{
		Addr:              ":" + b.cfg.ServerPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		b.logger.Info("starting http server", slog.String("addr", b.server.Addr))
		if err := b.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			b.logger.Error("http server error", tint.Err(err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if !b.cfg.UseWebhook() {
				b.api.StopReceivingUpdates()
			}
			return nil
		case update := <-updates:
			go b.handleUpdate(update)
		}
	}
}

func (b *Bot) Stop(ctx context.Context) error {
	if b.server != nil {
		return b.server.Shutdown(ctx)
	}
	return nil
}

// SendMessage sends an HTML-formatted message.
func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	_, err := b.api.Send(msg)
	return err
}
