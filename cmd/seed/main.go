// Command seed loads demo events, users and registrations into the database.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evently/config"
	"evently/internal/adapters/auth"
	"evently/internal/adapters/email"
	"evently/internal/adapters/rabbitmq"
	"evently/internal/repository/postgres"
	"evently/internal/seed"
	"evently/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg, os.Stdout)

	if err := run(cfg, logger); err != nil {
		logger.Error("seed failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	// Seeding never sends mail or publishes domain events.
	publisher := rabbitmq.NoopPublisher{}
	emailService := services.NewEmailService(
		email.NewMailer(email.MailerConfig{Provider: "noop"}, logger),
		email.NewTemplateRenderer(),
		logger,
	)
	registrationRepo := postgres.NewRegistrationRepository(db)

	runner := &seed.Runner{
		Events:        services.NewEventService(postgres.NewEventRepository(db), publisher, logger, cfg.RequestTimeout),
		Registrations: services.NewRegistrationService(registrationRepo, emailService, publisher, logger, cfg.RequestTimeout),
		Users:         postgres.NewUserRepository(db),
		Hasher:        auth.NewBcryptHasher(auth.DefaultBcryptCost),
		Logger:        logger,
		Now:           time.Now,
	}
	stats, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("seed complete", "events", stats.Events, "users", stats.Users, "registrations", stats.Registrations)
	return nil
}
