package mailer

import (
	"context"
	"fmt"
	"strings"

	"hostel-admin-svc/pkg/logger"
)

// Message is a single outbound email
type Message struct {
	To       string
	ToName   string
	Subject  string
	TextBody string
	HTMLBody string
}

// Transport is a single mail provider capable of delivering a message
type Transport interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// BulkResult summarizes a bulk send
type BulkResult struct {
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Total  int      `json:"total"`
	Errors []string `json:"errors,omitempty"`
}

// Mailer sends notification emails through an ordered list of transports
type Mailer interface {
	SendCredentials(ctx context.Context, email, name, password string) error
	SendBulk(ctx context.Context, recipients []string, subject, textBody, htmlBody string) *BulkResult
}

// Gateway tries each transport in order until one succeeds. There is no
// retry loop beyond the ordered fallback: a message that fails on every
// transport is reported as failed.
type Gateway struct {
	transports []Transport
	logger     *logger.Logger
}

// NewGateway creates a mail gateway over the given transports
func NewGateway(logger *logger.Logger, transports ...Transport) *Gateway {
	return &Gateway{
		transports: transports,
		logger:     logger,
	}
}

// SendCredentials emails generated login credentials to a new student account
func (g *Gateway) SendCredentials(ctx context.Context, email, name, password string) error {
	msg := Message{
		To:       email,
		ToName:   name,
		Subject:  "Your Hostel Account Credentials",
		TextBody: credentialsText(name, email, password),
		HTMLBody: credentialsHTML(name, email, password),
	}
	return g.send(ctx, msg)
}

// SendBulk sends a message to many recipients individually, de-duplicating
// the list first. Failures are counted, not fatal.
func (g *Gateway) SendBulk(ctx context.Context, recipients []string, subject, textBody, htmlBody string) *BulkResult {
	seen := make(map[string]bool)
	var deduped []string
	for _, r := range recipients {
		email := strings.ToLower(strings.TrimSpace(r))
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		deduped = append(deduped, email)
	}

	result := &BulkResult{Total: len(deduped)}
	for _, email := range deduped {
		msg := Message{
			To:       email,
			Subject:  subject,
			TextBody: textBody,
			HTMLBody: htmlBody,
		}
		if err := g.send(ctx, msg); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", email, err))
			continue
		}
		result.Sent++
	}

	return result
}

func (g *Gateway) send(ctx context.Context, msg Message) error {
	var lastErr error
	for _, t := range g.transports {
		err := t.Send(ctx, msg)
		if err == nil {
			g.logger.WithFields(map[string]interface{}{
				"transport": t.Name(),
				"to":        msg.To,
			}).Info("Email sent")
			return nil
		}
		lastErr = err
		g.logger.WithError(err).WithFields(map[string]interface{}{
			"transport": t.Name(),
			"to":        msg.To,
		}).Warn("Mail transport failed, trying next")
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no mail transports configured")
	}
	return fmt.Errorf("all mail transports failed: %w", lastErr)
}

func credentialsText(name, email, password string) string {
	return fmt.Sprintf(
		"Hello %s,\n\nYour hostel account has been created.\n\nLogin email: %s\nPassword: %s\n\nPlease change your password after your first login.\n",
		name, email, password,
	)
}

func credentialsHTML(name, email, password string) string {
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>Your hostel account has been created.</p><p>Login email: <b>%s</b><br>Password: <b>%s</b></p><p>Please change your password after your first login.</p>",
		name, email, password,
	)
}
