package outreach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
)

// SMTPSender submits email to an authenticated SMTP relay, for
// deployments that route outreach through their own mail server
// instead of the hosted provider.
type SMTPSender struct {
	addr      string
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a sender submitting to addr (host:port).
func NewSMTPSender(addr, username, password, fromName, fromEmail string) *SMTPSender {
	return &SMTPSender{
		addr:      addr,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send submits one message over SMTP with PLAIN auth.
func (s *SMTPSender) Send(ctx context.Context, email *Email) error {
	if s.addr == "" {
		return ErrNotConfigured
	}

	var auth sasl.Client
	if s.username != "" {
		auth = sasl.NewPlainClient("", s.username, s.password)
	}

	msg := s.buildMessage(email)
	if err := smtp.SendMail(s.addr, auth, s.fromEmail, []string{email.To}, strings.NewReader(msg)); err != nil {
		return fmt.Errorf("smtp submit to %s: %w", s.addr, err)
	}
	return nil
}

// buildMessage constructs an RFC 5322 message with a plain-text body.
// The HTML part, when present, is sent as multipart/alternative.
func (s *SMTPSender) buildMessage(email *Email) string {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.fromName, s.fromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@outreach>\r\n", uuid.New().String())

	if email.HTML == "" {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(email.Text)
		b.WriteString("\r\n")
		return b.String()
	}

	boundary := uuid.New().String()
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(email.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(email.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}
