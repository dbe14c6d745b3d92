package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/tazhate/hoabot/config"
	"github.com/tazhate/hoabot/internal/bot"
	"github.com/tazhate/hoabot/internal/metrics"
	"github.com/tazhate/hoabot/internal/scheduler"
	"github.com/tazhate/hoabot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.New(tint.NewHandler(os.Stderr, nil)).Error("failed to load config", tint.Err(err))
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(logger)

	m := metrics.New()

	sched := scheduler.New(cfg.Timezone, logger)
	reminderSvc := service.NewReminderService(sched, cfg.Timezone, m, logger)

	tgBot, err := bot.New(cfg, reminderSvc, m, logger)
	if err != nil {
		logger.Error("failed to init bot", tint.Err(err))
		os.Exit(1)
	}
	reminderSvc.SetSender(tgBot)

	if err := tgBot.SetupWebhook(); err != nil {
		logger.Error("failed to setup webhook", tint.Err(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched.Start()

	go func() {
		if err := tgBot.Start(ctx); err != nil {
			logger.Error("bot error", tint.Err(err))
		}
	}()

	logger.Info(
		"hoabot started",
		slog.String("timezone", cfg.Timezone.String()),
		slog.String("shift_end", cfg.ShiftEnd.String()),
		slog.Bool("webhook", cfg.UseWebhook()),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	reminderSvc.Close()
	sched.Stop(shutdownCtx)

	if err := tgBot.Stop(shutdownCtx); err != nil {
		logger.Error("error stopping bot", tint.Err(err))
	}

	logger.Info("hoabot stopped")
}
