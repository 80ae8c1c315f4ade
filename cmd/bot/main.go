package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/review"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	log, closeLog, err := logger.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Could not initialize logger")
	}
	defer closeLog()
	mainLogger := logger.Component(log, "main")

	if !cfg.CheckTokens() {
		// Fatal exits without running deferred calls; the log file is unbuffered.
		mainLogger.WithError(cfg.Validate()).Fatal("Environment variables are not available")
	}
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Poll schedule: %s", cfg.LogLevel, cfg.Environment, cfg.PollSchedule)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Delivery journal is optional
	var journal review.Journal = review.NopJournal{}
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()

		repo := idb.NewPostgresJournalRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			mainLogger.WithError(err).Fatal("Could not prepare delivery journal")
		}
		if last, err := repo.ListRecentDeliveries(ctx, 1); err != nil {
			mainLogger.WithError(err).Warn("Could not read delivery journal")
		} else if len(last) > 0 {
			mainLogger.Infof("Last delivered status: %q is %s (at %s)", last[0].HomeworkName, last[0].Status, last[0].DeliveredAt.Format(time.RFC3339))
		}
		journal = repo
		mainLogger.Info("Delivery journal enabled.")
	}

	bot, err := telegram.NewSendOnlyBot(cfg.TelegramToken, cfg.TelegramAPIURL)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, cfg.NotifyRatePerSec, logger.Component(log, "notifier"))

	apiClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.AuthHeader(), cfg.PracticumTimeout, logger.Component(log, "practicum"))
	statusService := app.NewStatusService(apiClient, notifier, journal, logger.Component(log, "status"), time.Now().Unix())

	pollScheduler, err := scheduler.NewPollScheduler(cfg.PollSchedule, logger.Component(log, "scheduler"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create poll scheduler")
	}

	mainLogger.Info("Application setup complete. Polling review statuses...")
	pollScheduler.Run(ctx, statusService.PollOnce)

	mainLogger.Info("Application shut down gracefully.")
}
