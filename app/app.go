package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/lmittmann/tint"

	"github.com/seventattoolv/intake/internal/config"
	"github.com/seventattoolv/intake/internal/email"
	"github.com/seventattoolv/intake/internal/form"
	"github.com/seventattoolv/intake/internal/handlers"
	"github.com/seventattoolv/intake/internal/intake"
	"github.com/seventattoolv/intake/internal/logging"
)

type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *form.Registry
	Handlers *handlers.Handlers

	sentryEnabled bool
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	sentryEnabled, err := initSentry(cfg)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, sentryEnabled)

	registry := form.NewRegistry()
	if cfg.FormsFile != "" {
		if err := registry.LoadFile(cfg.FormsFile); err != nil {
			return nil, err
		}
	}

	var provider email.Provider
	if cfg.EmailConfigured() {
		provider, err = email.NewProvider(email.Config{
			Provider: cfg.EmailProvider,
			APIKey:   cfg.EmailAPIKey,
			From:     cfg.FromEmail,
			Domain:   cfg.MailgunDomain,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email provider: %w", err)
		}
	} else {
		logger.Warn("no email credential configured; submissions will fail until EMAIL_API_KEY is set")
	}

	intakeService, err := intake.NewService(registry, provider, intake.Recipients{
		From:      cfg.FromEmail,
		DefaultTo: cfg.InternalEmail,
		PerForm:   cfg.ReceiverOverrides(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize intake service: %w", err)
	}

	h, err := handlers.New(handlers.Dependencies{
		Config:   cfg,
		Registry: registry,
		Intake:   intakeService,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		Config:        cfg,
		Logger:        logger,
		Registry:      registry,
		Handlers:      h,
		sentryEnabled: sentryEnabled,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}

func initSentry(cfg *config.Config) (bool, error) {
	dsn := strings.TrimSpace(cfg.SentryDSN)
	if dsn == "" {
		return false, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:        dsn,
		EnableLogs: true,
	}); err != nil {
		return false, fmt.Errorf("failed to initialize sentry: %w", err)
	}
	return true, nil
}

func newLogger(cfg *config.Config, sentryEnabled bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var local slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.LogFormat)) {
	case "json":
		local = slog.NewJSONHandler(os.Stdout, opts)
	default:
		local = tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.LogLevel})
	}

	if !sentryEnabled {
		return slog.New(local)
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(logging.MultiHandler(local, sentryHandler))
}
