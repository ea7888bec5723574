package email

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.messages = append(c.messages, m...)
	return c.err
}

func TestSendPasswordResetEmail(t *testing.T) {
	capture := &captureSender{}
	svc := NewSMTPEmailService(SMTPConfig{
		FromAddress:         "noreply@togetherly.local",
		FromName:            "Togetherly",
		BaseURL:             "https://app.example.com",
		ResetExpiresMinutes: 30,
	})
	svc.dialer = capture

	require.NoError(t, svc.SendPasswordResetEmail("owner@example.com", "tok+en/1"))
	require.Len(t, capture.messages, 1)

	msg := capture.messages[0]
	assert.Equal(t, []string{"owner@example.com"}, msg.GetHeader("To"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	// Undo quoted-printable soft breaks and escapes before matching.
	body := strings.NewReplacer("=\r\n", "", "=3D", "=").Replace(buf.String())
	assert.Contains(t, body, "reset-password?token=tok%2Ben%2F1")
	assert.Contains(t, body, "30 minutes")
}

func TestSendPasswordResetEmailWrapsError(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{})
	svc.dialer = &captureSender{err: errors.New("connection refused")}

	err := svc.SendPasswordResetEmail("owner@example.com", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
