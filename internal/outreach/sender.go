// Package outreach delivers generated emails through a transactional
// provider. The service never retries: every attempt's outcome is
// recorded by the caller whether it succeeded or not.
package outreach

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when the provider credentials are
// missing. Sends still produce a failed attempt record upstream.
var ErrNotConfigured = errors.New("email provider not configured")

// Email is one outgoing message.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single email.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}
