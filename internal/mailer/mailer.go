// Package mailer delivers inquiry notifications over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/omkarinteriors/backend/internal/config"
	"github.com/omkarinteriors/backend/internal/model"
)

// fromDisplayName is the display part of the From header; the mailbox
// itself comes from configuration.
const fromDisplayName = "Website Contact"

// ErrNotConfigured is returned when SMTP credentials are missing. It is
// raised before any network attempt, so callers can tell a deployment
// problem from a delivery failure.
var ErrNotConfigured = errors.New("smtp credentials not configured")

// Sender delivers one inquiry notification per call. A single attempt
// is made; delivery failures propagate to the caller.
type Sender interface {
	Send(ctx context.Context, inq model.Inquiry) error
}

// SMTPSender is the production Sender backed by an SMTP relay.
type SMTPSender struct {
	host   string
	port   int
	secure bool
	user   string
	pass   string
	to     string

	// send is swappable in tests; defaults to a gomail dial-and-send.
	send func(m *gomail.Message) error
}

// NewSMTPSender builds a Sender from configuration. The recipient falls
// back to the sender mailbox when MAIL_TO is unset (config.Load already
// applies that fallback).
func NewSMTPSender(cfg config.Config) *SMTPSender {
	s := &SMTPSender{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		secure: cfg.SMTPSecure,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		to:     cfg.MailTo,
	}
	s.send = func(m *gomail.Message) error {
		d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
		d.SSL = s.secure
		return d.DialAndSend(m)
	}
	return s
}

// Send composes and delivers the notification email. Reply-To is set to
// the inquirer's address so the business can answer directly.
func (s *SMTPSender) Send(ctx context.Context, inq model.Inquiry) error {
	if s.user == "" || s.pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.send(Compose(s.user, s.to, inq)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Compose builds the notification message: plain-text and HTML bodies,
// subject interpolating the inquirer's name, Reply-To set to the
// inquirer.
func Compose(from, to string, inq model.Inquiry) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromDisplayName)
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", inq.Email)
	m.SetHeader("Subject", fmt.Sprintf("New Inquiry from %s", inq.Name))
	m.SetBody("text/plain", textBody(inq))
	m.AddAlternative("text/html", htmlBody(inq))
	return m
}

func textBody(inq model.Inquiry) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage: %s\nIP: %s\nUA: %s",
		inq.Name, inq.Email, inq.Phone, inq.Message, inq.IP, inq.UserAgent)
}

func htmlBody(inq model.Inquiry) string {
	message := strings.ReplaceAll(html.EscapeString(inq.Message), "\n", "<br/>")
	return fmt.Sprintf(`<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Message:</strong><br/>%s</p>
<hr/>
<p><small>IP: %s · UA: %s</small></p>`,
		html.EscapeString(inq.Name),
		html.EscapeString(inq.Email),
		html.EscapeString(inq.Phone),
		message,
		html.EscapeString(inq.IP),
		html.EscapeString(inq.UserAgent))
}
