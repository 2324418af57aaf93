// Package mail wraps the SMTP transport used by the contact form. The
// service layer depends on the ContactSender interface so tests never touch
// a real SMTP server.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jmartel/portfolio-api/internal/config"
)

// ContactSender delivers a contact-form submission to the site owner.
type ContactSender interface {
	SendContact(name, email, subject, message string) error
}

// Mailer sends contact messages over SMTP with gomail.
type Mailer struct {
	dialer    *gomail.Dialer
	sender    string
	recipient string
}

// NewMailer creates a Mailer from the mail configuration.
func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender:    cfg.Sender,
		recipient: cfg.Recipient,
	}
}

// SendContact composes and dispatches the notification email. The subject
// and body templates match what the site owner's inbox filters expect.
func (m *Mailer) SendContact(name, email, subject, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", fmt.Sprintf("Contact Portfolio: %s", subject))
	msg.SetBody("text/plain", fmt.Sprintf("De: %s <%s>\n\n%s", name, email, message))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: sending contact message: %w", err)
	}
	return nil
}
