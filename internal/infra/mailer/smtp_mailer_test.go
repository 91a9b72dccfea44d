package mailer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"foodbridge/config"
	"foodbridge/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.messages = append(f.messages, m...)

	return f.err
}

func TestSMTPMailer_Send(t *testing.T) {
	dialer := &fakeDialer{}
	m := newSMTPMailer("noreply@foodbridge.test", dialer)

	err := m.Send(context.Background(), service.Email{To: "ngo@example.com", Subject: "Verified", Body: "<p>ok</p>"})
	require.NoError(t, err)

	require.Len(t, dialer.messages, 1)
	assert.Equal(t, []string{"noreply@foodbridge.test"}, dialer.messages[0].GetHeader("From"))
	assert.Equal(t, []string{"ngo@example.com"}, dialer.messages[0].GetHeader("To"))
	assert.Equal(t, []string{"Verified"}, dialer.messages[0].GetHeader("Subject"))
}

func TestSMTPMailer_Errors(t *testing.T) {
	m := newSMTPMailer("noreply@foodbridge.test", &fakeDialer{err: errors.New("connection refused")})

	assert.ErrorContains(t, m.Send(context.Background(), service.Email{}), "no recipient")
	assert.ErrorContains(t, m.Send(context.Background(), service.Email{To: "a@b.c"}), "connection refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, service.Email{To: "a@b.c"}), context.Canceled)
}

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := NewMailer(&config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), service.Email{To: "a@b.c"}))

	_, err = NewMailer(&config.Config{Mailer: &config.MailerConfig{Enabled: true}}, logger)
	assert.Error(t, err)

	m, err = NewMailer(&config.Config{Mailer: &config.MailerConfig{Enabled: true, Host: "smtp", Port: 587, From: "x@y.z"}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &smtpMailer{}, m)
}
