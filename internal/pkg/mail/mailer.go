package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/irakoze/inanga/internal/pkg/models"
)

// Mailer delivers a single message to a single recipient
type Mailer interface {
	Send(to, subject, text, html string) error
}

// SMTPMailer delivers mail through a configured SMTP relay
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config models.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		from:   config.From,
	}
}

// Send delivers a message, with html as an optional alternative body
func (m *SMTPMailer) Send(to, subject, text, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
