package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"hostel-admin-svc/internal/config"
)

// brevoRecipient is an address entry in the Brevo payload
type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// brevoSendRequest is the Brevo transactional email payload
type brevoSendRequest struct {
	Sender      brevoRecipient   `json:"sender"`
	To          []brevoRecipient `json:"to"`
	Subject     string           `json:"subject"`
	TextContent string           `json:"textContent"`
	HTMLContent string           `json:"htmlContent,omitempty"`
}

// BrevoTransport delivers mail through the Brevo transactional email API
type BrevoTransport struct {
	client    *resty.Client
	fromEmail string
	fromName  string
}

// NewBrevoTransport creates a Brevo API transport
func NewBrevoTransport(cfg *config.BrevoConfig) *BrevoTransport {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(15*time.Second).
		SetHeader("api-key", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &BrevoTransport{
		client:    client,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// Name identifies the transport in logs
func (t *BrevoTransport) Name() string {
	return "brevo"
}

// Send delivers a single message through POST /smtp/email
func (t *BrevoTransport) Send(ctx context.Context, msg Message) error {
	payload := brevoSendRequest{
		Sender:      brevoRecipient{Email: t.fromEmail, Name: t.fromName},
		To:          []brevoRecipient{{Email: msg.To, Name: msg.ToName}},
		Subject:     msg.Subject,
		TextContent: msg.TextBody,
		HTMLContent: msg.HTMLBody,
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/smtp/email")
	if err != nil {
		return fmt.Errorf("brevo request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("brevo send failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
