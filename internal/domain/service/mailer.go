package service

import "context"

// Email is a plain outgoing message.
type Email struct {
	To      string
	Subject string
	Body    string // HTML
}

// Mailer delivers transactional e-mail.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
