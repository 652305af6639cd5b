package email

import (
	"context"
	"errors"
)

// ErrNotConfigured signals a missing delivery credential or address. It is a
// configuration problem, not a per-submission failure: callers log it loudly
// and abort the request path instead of retrying.
var ErrNotConfigured = errors.New("email sender is not configured")

// Message is a fully assembled notification email. ReplyTo carries the
// submitter's own address so the operator can answer directly from the
// inbox.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers a message through a transactional email provider in a
// single synchronous attempt. No retry, no queue; a failed delivery is
// reported to the caller and nothing else.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
