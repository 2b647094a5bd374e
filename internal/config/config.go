package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	EmailProvider string `env:"EMAIL_PROVIDER" envDefault:"resend" validate:"required,oneof=postmark mailgun resend"`
	EmailAPIKey   string `env:"EMAIL_API_KEY"`
	MailgunDomain string `env:"MAILGUN_DOMAIN"`

	FromEmail     string `env:"FROM_EMAIL" envDefault:"no-reply@seventattoolv.com" validate:"required"`
	InternalEmail string `env:"INTERNAL_EMAIL" envDefault:"careers@seventattoolv.com" validate:"required,email"`

	ArtistReceiver     string `env:"ARTIST_RECEIVER" validate:"omitempty,email"`
	StaffReceiver      string `env:"STAFF_RECEIVER" validate:"omitempty,email"`
	BackofficeReceiver string `env:"BACKOFFICE_RECEIVER" validate:"omitempty,email"`
	BookingReceiver    string `env:"BOOKING_TO" validate:"omitempty,email"`

	// FormsFile points at an optional YAML file whose specs merge over
	// the built-in forms.
	FormsFile string `env:"FORMS_FILE"`

	// CORSOrigins is the browser origin allowlist; "*" allows any.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	SentryDSN string `env:"SENTRY_DSN"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text" validate:"omitempty,oneof=text json"`
	Port      string     `env:"PORT" envDefault:"8080"`
}

var configValidator = validator.New()

func Load() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return err
	}

	if c.EmailProvider == "mailgun" && strings.TrimSpace(c.EmailAPIKey) != "" && strings.TrimSpace(c.MailgunDomain) == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required when EMAIL_PROVIDER is mailgun")
	}

	for _, origin := range c.CORSOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			return fmt.Errorf("CORS_ORIGINS must not contain empty entries")
		}
		if trimmed != "*" && !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
			return fmt.Errorf("CORS_ORIGINS entries must be origins or '*', got %q", trimmed)
		}
	}

	return nil
}

// EmailConfigured reports whether a mail credential is present. A missing
// credential is not a startup error; each affected submission fails with
// a configuration error instead.
func (c *Config) EmailConfigured() bool {
	return strings.TrimSpace(c.EmailAPIKey) != ""
}

// ReceiverOverrides returns the per-form recipient addresses that are
// set, keyed by form name.
func (c *Config) ReceiverOverrides() map[string]string {
	overrides := make(map[string]string)
	for formName, addr := range map[string]string{
		"artist":     c.ArtistReceiver,
		"staff":      c.StaffReceiver,
		"backoffice": c.BackofficeReceiver,
		"booking":    c.BookingReceiver,
	} {
		if strings.TrimSpace(addr) != "" {
			overrides[formName] = strings.TrimSpace(addr)
		}
	}
	return overrides
}
