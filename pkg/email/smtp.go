package email

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPSender delivers messages over plain SMTP (e.g. a Brevo relay). Kept as
// the fallback transport for deployments without a Resend account.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPSender(host, port, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// IsConfigured checks that the relay credentials are present.
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Send assembles the MIME message and hands it to the relay in one attempt.
// net/smtp has no context support; ctx is accepted for interface symmetry
// and the relay's own timeouts apply.
func (s *SMTPSender) Send(_ context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	mime := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		msg.From,
		msg.To,
		msg.ReplyTo,
		msg.Subject,
		msg.HTML,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.username, []string{msg.To}, mime); err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}
	return nil
}
