// file: internals/mailer/mailer.go
package mailer

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"bhanjyang_backend/internals/configs"
)

// Mailer sends a single plain-text message. The contact controller depends on
// this interface so tests can substitute a fake transport.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers through the SMTP relay configured in the environment.
// Delivery is synchronous and never retried; the caller surfaces failures.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewFromEnv() *SMTPMailer {
	port, err := strconv.Atoi(configs.MailPort)
	if err != nil || port <= 0 {
		port = 587
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(configs.MailHost, port, configs.MailUsername, configs.MailPassword),
		from:   configs.MailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
