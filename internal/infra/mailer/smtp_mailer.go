// Package mailer sends transactional e-mail over SMTP with gomail.
package mailer

import (
	"context"
	"log/slog"

	"foodbridge/config"
	"foodbridge/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// sender is the part of *gomail.Dialer the mailer uses.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	from   string
	dialer sender
}

// NewMailer returns an SMTP mailer, or a logging stand-in when mail is disabled.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mc := cfg.Mailer
	if mc == nil || !mc.Enabled {
		logger.Info("Mailer disabled, e-mail will only be logged")

		return &logMailer{logger: logger}, nil
	}
	if mc.Host == "" || mc.Port == 0 || mc.From == "" {
		return nil, errors.New("mailer host, port and from are required when enabled")
	}

	return newSMTPMailer(mc.From, gomail.NewDialer(mc.Host, mc.Port, mc.Username, mc.Password)), nil
}

func newSMTPMailer(from string, dialer sender) *smtpMailer {
	return &smtpMailer{from: from, dialer: dialer}
}

// Send delivers one HTML message. gomail has no context support, so a cancelled context
// only short-circuits before dialing.
func (m *smtpMailer) Send(ctx context.Context, email service.Email) error {
	if email.To == "" {
		return errors.New("no recipient specified")
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/html", email.Body)

	return errors.Wrapf(m.dialer.DialAndSend(msg), "failed to send e-mail to %s", email.To)
}

type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(ctx context.Context, email service.Email) error {
	m.logger.InfoContext(ctx, "E-mail not sent, mailer disabled",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
	)

	return nil
}
