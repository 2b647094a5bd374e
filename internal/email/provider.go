// Package email provides the mail-sending capability the intake service
// delegates to.
package email

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Provider is the outbound mail collaborator. Implementations attempt one
// delivery per call; the intake service performs no retries.
type Provider interface {
	SendEmail(ctx context.Context, email *Email) error
	ValidateAPIKey(ctx context.Context) error
}

// Email is one message to relay. ReplyTo carries the applicant's address
// on internal notifications so studio staff can reply directly. Tag is
// the form name, attached as provider metadata for delivery analytics.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
	ReplyTo string
	Tag     string
}

// Config selects and configures a provider.
type Config struct {
	Provider string
	APIKey   string
	From     string
	Domain   string // For Mailgun
}

// NewProvider builds the configured provider.
func NewProvider(config Config) (Provider, error) {
	switch config.Provider {
	case "postmark":
		return NewPostmarkProvider(config.APIKey, config.From), nil
	case "mailgun":
		return NewMailgunProvider(config.APIKey, config.Domain, config.From), nil
	case "resend":
		return NewResendProvider(config.APIKey, config.From), nil
	default:
		return nil, fmt.Errorf("EMAIL_PROVIDER must be either 'postmark', 'mailgun', or 'resend'")
	}
}

// readAndClose drains and closes an API response body so the underlying
// connection can be reused.
func readAndClose(resp *http.Response) ([]byte, error) {
	body, readErr := io.ReadAll(resp.Body)
	return body, errors.Join(readErr, resp.Body.Close())
}
