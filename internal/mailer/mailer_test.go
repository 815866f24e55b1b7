package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-admin-svc/pkg/logger"
)

type stubTransport struct {
	name     string
	err      error
	messages []Message
}

func (s *stubTransport) Name() string { return s.name }

func (s *stubTransport) Send(_ context.Context, msg Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msg)
	return nil
}

func newTestGateway(transports ...Transport) *Gateway {
	return NewGateway(logger.NewLogger("error", "text"), transports...)
}

func TestGateway_SendCredentials_PrimaryTransport(t *testing.T) {
	primary := &stubTransport{name: "brevo"}
	secondary := &stubTransport{name: "smtp"}
	gw := newTestGateway(primary, secondary)

	err := gw.SendCredentials(context.Background(), "asha@hostel.test", "Asha", "s3cretPass")
	require.NoError(t, err)

	// Primary handled it, the fallback was never touched
	require.Len(t, primary.messages, 1)
	assert.Empty(t, secondary.messages)

	msg := primary.messages[0]
	assert.Equal(t, "asha@hostel.test", msg.To)
	assert.Contains(t, msg.TextBody, "s3cretPass")
	assert.Contains(t, msg.TextBody, "asha@hostel.test")
	assert.Contains(t, msg.HTMLBody, "s3cretPass")
}

func TestGateway_SendCredentials_FallsBack(t *testing.T) {
	primary := &stubTransport{name: "brevo", err: errors.New("api unreachable")}
	secondary := &stubTransport{name: "smtp"}
	gw := newTestGateway(primary, secondary)

	err := gw.SendCredentials(context.Background(), "asha@hostel.test", "Asha", "s3cretPass")
	require.NoError(t, err)
	require.Len(t, secondary.messages, 1)
	assert.Equal(t, "asha@hostel.test", secondary.messages[0].To)
}

func TestGateway_SendCredentials_AllTransportsFail(t *testing.T) {
	primaryErr := errors.New("api unreachable")
	smtpErr := errors.New("connection refused")
	gw := newTestGateway(
		&stubTransport{name: "brevo", err: primaryErr},
		&stubTransport{name: "smtp", err: smtpErr},
	)

	err := gw.SendCredentials(context.Background(), "asha@hostel.test", "Asha", "s3cretPass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all mail transports failed")
	assert.ErrorIs(t, err, smtpErr)
}

func TestGateway_SendCredentials_NoTransports(t *testing.T) {
	gw := newTestGateway()

	err := gw.SendCredentials(context.Background(), "asha@hostel.test", "Asha", "s3cretPass")
	assert.Error(t, err)
}

func TestGateway_SendBulk_Dedup(t *testing.T) {
	transport := &stubTransport{name: "brevo"}
	gw := newTestGateway(transport)

	recipients := []string{"A@hostel.test", " a@hostel.test ", "b@hostel.test", ""}
	result := gw.SendBulk(context.Background(), recipients, "Notice", "body", "<p>body</p>")

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, transport.messages, 2)
}

func TestGateway_SendBulk_CountsFailures(t *testing.T) {
	transport := &stubTransport{name: "brevo", err: errors.New("rejected")}
	gw := newTestGateway(transport)

	result := gw.SendBulk(context.Background(), []string{"a@hostel.test", "b@hostel.test"}, "Notice", "body", "")

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Errors, 2)
}
