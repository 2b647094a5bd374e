// Package email provides Mailgun email provider.
package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MailgunProvider implements the Provider interface for Mailgun.
type MailgunProvider struct {
	apiKey  string
	from    string
	domain  string
	baseURL string
	client  *http.Client
}

// NewMailgunProvider creates a new Mailgun provider with the default
// base URL.
func NewMailgunProvider(apiKey, domain, from string) *MailgunProvider {
	return NewMailgunProviderWithBaseURL(apiKey, domain, from, "https://api.mailgun.net/v3")
}

// NewMailgunProviderWithBaseURL creates a new Mailgun provider with a
// custom base URL, used by tests.
func NewMailgunProviderWithBaseURL(apiKey, domain, from, baseURL string) *MailgunProvider {
	return &MailgunProvider{
		apiKey:  apiKey,
		domain:  domain,
		from:    from,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SendEmail sends an email via the Mailgun API.
func (m *MailgunProvider) SendEmail(ctx context.Context, email *Email) error {
	data := url.Values{}
	data.Set("from", m.from)
	data.Set("to", email.To)
	data.Set("subject", email.Subject)
	if email.Text != "" {
		data.Set("text", email.Text)
	}
	if email.HTML != "" {
		data.Set("html", email.HTML)
	}
	if email.ReplyTo != "" {
		data.Set("h:Reply-To", email.ReplyTo)
	}
	if email.Tag != "" {
		data.Set("o:tag", email.Tag)
	}

	endpoint := fmt.Sprintf("%s/%s/messages", m.baseURL, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	body, err := readAndClose(resp)
	if err != nil {
		return fmt.Errorf("mailgun response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("mailgun error: %s", apiErr.Message)
		}
		return fmt.Errorf("mailgun API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// ValidateAPIKey checks if the API key is valid by listing the domain.
func (m *MailgunProvider) ValidateAPIKey(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/%s/domains", m.baseURL, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to validate API key: %w", err)
	}
	body, err := readAndClose(resp)
	if err != nil {
		return fmt.Errorf("mailgun validation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("invalid API key: received status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
