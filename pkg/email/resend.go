package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers messages through the Resend transactional API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender builds a sender for the given API key. An empty key is
// tolerated here so startup can log a warning; Send then fails with
// ErrNotConfigured on first use.
func NewResendSender(apiKey string) *ResendSender {
	s := &ResendSender{}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

// IsConfigured reports whether an API key was supplied.
func (s *ResendSender) IsConfigured() bool {
	return s.client != nil
}

// Send performs one synchronous delivery attempt. Timeouts are whatever the
// Resend client defaults to; no cancellation is exposed once the call is in
// flight.
func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	if s.client == nil {
		return ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend delivery failed: %w", err)
	}
	return nil
}
