package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evently/config"
	_ "evently/docs"
	"evently/internal/adapters/auth"
	"evently/internal/adapters/email"
	"evently/internal/adapters/rabbitmq"
	deliveryhttp "evently/internal/delivery/http"
	"evently/internal/delivery/http/controllers"
	"evently/internal/domain"
	"evently/internal/repository/postgres"
	"evently/internal/services"
)

const shutdownTimeout = 15 * time.Second

// @title Evently API
// @version 1.0
// @description Event browsing, registration with capacity accounting, and admin analytics.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
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

	var publisher domain.EventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
		if err != nil {
			return err
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Info("RABBITMQ_URL not set, domain events are not published")
	}

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	}, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	userRepo := postgres.NewUserRepository(db)

	tokens := auth.NewJWT(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := auth.NewBcryptHasher(auth.DefaultBcryptCost)

	eventService := services.NewEventService(eventRepo, publisher, logger, cfg.RequestTimeout)
	registrationService := services.NewRegistrationService(registrationRepo, emailService, publisher, logger, cfg.RequestTimeout)
	analyticsService := services.NewAnalyticsService(registrationRepo, eventRepo, cfg.RequestTimeout)
	authService := services.NewAuthService(userRepo, hasher, tokens, emailService, logger, cfg.RequestTimeout)

	handler := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Event:        controllers.NewEventController(logger, eventService),
		Registration: controllers.NewRegistrationController(logger, registrationService, analyticsService),
		Health:       controllers.NewHealthController(logger, db),
	}, deliveryhttp.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Verifier:       tokens,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
