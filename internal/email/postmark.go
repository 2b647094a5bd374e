// Package email provides Postmark email provider.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const postmarkAPI = "https://api.postmarkapp.com"

// PostmarkProvider implements the Provider interface for Postmark.
type PostmarkProvider struct {
	apiKey string
	from   string
	client *http.Client
}

// NewPostmarkProvider creates a new Postmark provider.
func NewPostmarkProvider(apiKey, from string) *PostmarkProvider {
	return &PostmarkProvider{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type postmarkMessage struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	TextBody string `json:"TextBody,omitempty"`
	HtmlBody string `json:"HtmlBody,omitempty"`
	ReplyTo  string `json:"ReplyTo,omitempty"`
	Tag      string `json:"Tag,omitempty"`
}

type postmarkResponse struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
	MessageID string `json:"MessageID"`
}

// SendEmail sends an email via the Postmark API.
func (p *PostmarkProvider) SendEmail(ctx context.Context, email *Email) error {
	payload, err := json.Marshal(postmarkMessage{
		From:     p.from,
		To:       email.To,
		Subject:  email.Subject,
		TextBody: email.Text,
		HtmlBody: email.HTML,
		ReplyTo:  email.ReplyTo,
		Tag:      email.Tag,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, postmarkAPI+"/email", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Postmark-Server-Token", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	body, err := readAndClose(resp)
	if err != nil {
		return fmt.Errorf("postmark response: %w", err)
	}

	var result postmarkResponse
	if json.Unmarshal(body, &result) == nil && result.ErrorCode != 0 {
		return fmt.Errorf("postmark error (%d): %s", result.ErrorCode, result.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("postmark API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// ValidateAPIKey checks if the API key is valid.
func (p *PostmarkProvider) ValidateAPIKey(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postmarkAPI+"/server", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to validate API key: %w", err)
	}
	body, err := readAndClose(resp)
	if err != nil {
		return fmt.Errorf("postmark validation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("invalid API key: received status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
