package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"hostel-admin-svc/internal/config"
)

// SMTPTransport delivers mail through an SMTP server. It is the secondary
// transport behind the Brevo API.
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
	useTLS   bool
	from     string
	fromName string
}

// NewSMTPTransport creates an SMTP transport
func NewSMTPTransport(cfg *config.SMTPConfig, fromEmail, fromName string) *SMTPTransport {
	return &SMTPTransport{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		useTLS:   cfg.UseTLS,
		from:     fromEmail,
		fromName: fromName,
	}
}

// Name identifies the transport in logs
func (t *SMTPTransport) Name() string {
	return "smtp"
}

// Send delivers a single message. With SMTP_USE_TLS the connection opens over
// implicit TLS (port 465 style). Otherwise the connection starts in plaintext
// and STARTTLS is negotiated when the server advertises it.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := t.buildMessage(msg)
	addr := fmt.Sprintf("%s:%d", t.host, t.port)

	var auth smtp.Auth
	if t.username != "" {
		auth = smtp.PlainAuth("", t.username, t.password, t.host)
	}

	if t.useTLS {
		return t.sendImplicitTLS(addr, auth, msg.To, body)
	}

	if err := smtp.SendMail(addr, auth, t.from, []string{msg.To}, body); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// sendImplicitTLS dials a TLS connection first, then speaks SMTP over it
func (t *SMTPTransport) sendImplicitTLS(addr string, auth smtp.Auth, to string, body []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: t.host})
	if err != nil {
		return fmt.Errorf("smtp tls dial failed: %w", err)
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake failed: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}
	if err := client.Mail(t.from); err != nil {
		return fmt.Errorf("smtp mail failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("smtp write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp data close failed: %w", err)
	}
	return client.Quit()
}

func (t *SMTPTransport) buildMessage(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", t.fromName, t.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	if msg.HTMLBody != "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.HTMLBody)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.TextBody)
	}
	return []byte(b.String())
}
