// Package intake orchestrates one form submission end to end: parse,
// honeypot check, alias resolution, validation, rendering, and relay to
// the mail provider.
package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/seventattoolv/intake/internal/email"
	"github.com/seventattoolv/intake/internal/form"
	"github.com/seventattoolv/intake/internal/render"
)

// ResultKind tags the outcome of an accepted request. Failures travel as
// errors, not kinds.
type ResultKind string

const (
	// ResultFiltered marks a honeypot hit: the caller must report success
	// to the sender while nothing was sent.
	ResultFiltered ResultKind = "filtered"

	// ResultRejected marks a validation failure; Fields lists the
	// offending canonical fields in declared order.
	ResultRejected ResultKind = "rejected"

	// ResultSent marks a delivered internal notification. The optional
	// applicant confirmation may still have failed; see ConfirmationSent.
	ResultSent ResultKind = "sent"
)

// Result is the tagged outcome of processing one submission.
type Result struct {
	Kind             ResultKind
	Fields           []form.FieldError
	ConfirmationSent bool
}

// ErrUnknownForm reports a submission for a form name the registry does
// not know.
var ErrUnknownForm = errors.New("unknown form")

// ConfigError means no delivery attempt was possible, as opposed to an
// attempt that failed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "intake not configured: " + e.Reason
}

// DeliveryError wraps a failed internal-notification send.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "failed to deliver notification: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Recipients is the address-resolution policy injected into the service.
type Recipients struct {
	From      string
	DefaultTo string

	// PerForm overrides DefaultTo for specific form names.
	PerForm map[string]string
}

// Service processes form submissions. It holds no per-request state.
type Service struct {
	registry   *form.Registry
	provider   email.Provider
	recipients Recipients
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService wires the intake service. The provider may be nil when no
// mail credential is configured; submissions then fail with ConfigError.
func NewService(registry *form.Registry, provider email.Provider, recipients Recipients, logger *slog.Logger) (*Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("form registry is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{
		registry:   registry,
		provider:   provider,
		recipients: recipients,
		validate:   validator.New(),
		logger:     logger.With("component", "intake"),
	}, nil
}

// Process handles one submission. Client-caused problems (malformed body,
// missing fields) come back inside Result or as form.ErrMalformedBody;
// server-caused problems come back as ConfigError or DeliveryError.
func (s *Service) Process(ctx context.Context, formName string, body []byte, contentType string) (Result, error) {
	spec, ok := s.registry.Lookup(formName)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownForm, formName)
	}

	raw, err := form.ParseBody(body, contentType)
	if err != nil {
		return Result{}, err
	}

	if raw.HoneypotTriggered(spec.Honeypots) {
		// Report success so the automated submitter does not learn it was
		// filtered. No mail is sent.
		s.logger.Info("submission filtered by honeypot", "form", spec.Name)
		return Result{Kind: ResultFiltered}, nil
	}

	app := form.Resolve(raw, spec)
	if fieldErrs := form.Validate(app, spec); len(fieldErrs) > 0 {
		s.logger.Info("submission rejected",
			"form", spec.Name,
			"fields", form.MissingFields(fieldErrs),
		)
		return Result{Kind: ResultRejected, Fields: fieldErrs}, nil
	}

	if s.provider == nil {
		return Result{}, &ConfigError{Reason: "no email provider configured"}
	}
	from := strings.TrimSpace(s.recipients.From)
	if from == "" {
		return Result{}, &ConfigError{Reason: "no sender address configured"}
	}
	to := s.recipientFor(spec, app)
	if to == "" {
		return Result{}, &ConfigError{Reason: "no recipient address configured"}
	}

	message, err := render.Internal(spec, app)
	if err != nil {
		return Result{}, err
	}

	if err := s.provider.SendEmail(ctx, &email.Email{
		To:      to,
		Subject: message.Subject,
		Text:    message.Text,
		HTML:    message.HTML,
		ReplyTo: app.Get("email"),
		Tag:     spec.Name,
	}); err != nil {
		return Result{}, &DeliveryError{Err: err}
	}

	result := Result{Kind: ResultSent}
	result.ConfirmationSent = s.sendConfirmation(ctx, spec, app)

	s.logger.Info("submission relayed",
		"form", spec.Name,
		"to", to,
		"confirmation_sent", result.ConfirmationSent,
		"fallback_key", app.FallbackKey,
	)
	return result, nil
}

// sendConfirmation attempts the optional applicant confirmation. Its
// failure never fails the submission: the studio already received the
// lead, which is the business-critical path.
func (s *Service) sendConfirmation(ctx context.Context, spec *form.Spec, app *form.Application) bool {
	message, ok, err := render.Confirmation(spec, app)
	if err != nil {
		s.logger.Warn("failed to render confirmation", "form", spec.Name, "error", err)
		return false
	}
	if !ok {
		return false
	}

	applicant := app.Get("email")
	if applicant == "" {
		return false
	}

	if err := s.provider.SendEmail(ctx, &email.Email{
		To:      applicant,
		Subject: message.Subject,
		Text:    message.Text,
		HTML:    message.HTML,
		Tag:     spec.Name,
	}); err != nil {
		s.logger.Warn("failed to send applicant confirmation", "form", spec.Name, "error", err)
		return false
	}
	return true
}

// recipientFor resolves the notification address: a per-submission
// override wins when it is a well-formed email address, then the per-form
// address, then the global default.
func (s *Service) recipientFor(spec *form.Spec, app *form.Application) string {
	if spec.NotifyField != "" {
		if override := app.Get(spec.NotifyField); override != "" {
			if err := s.validate.Var(override, "email"); err == nil {
				return override
			}
			s.logger.Warn("ignoring malformed notify override", "form", spec.Name)
		}
	}
	if to := strings.TrimSpace(s.recipients.PerForm[spec.Name]); to != "" {
		return to
	}
	return strings.TrimSpace(s.recipients.DefaultTo)
}
