package outreach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultProviderURL is the transactional provider's send endpoint.
const DefaultProviderURL = "https://api.sendgrid.com/v3/mail/send"

// HTTPSender delivers email through a SendGrid-compatible HTTP API.
type HTTPSender struct {
	baseURL    string
	apiKey     string
	fromName   string
	fromEmail  string
	httpClient *http.Client
}

// NewHTTPSender creates a sender posting to baseURL with the given API
// key. An empty baseURL uses the default provider endpoint.
func NewHTTPSender(baseURL, apiKey, fromName, fromEmail string) *HTTPSender {
	if baseURL == "" {
		baseURL = DefaultProviderURL
	}
	return &HTTPSender{
		baseURL:   baseURL,
		apiKey:    apiKey,
		fromName:  fromName,
		fromEmail: fromEmail,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type mailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []struct {
		To      []mailAddress `json:"to"`
		Subject string        `json:"subject"`
	} `json:"personalizations"`
	From    mailAddress   `json:"from"`
	Content []mailContent `json:"content"`
}

// Send posts one message to the provider. A missing API key fails with
// ErrNotConfigured without making a request.
func (s *HTTPSender) Send(ctx context.Context, email *Email) error {
	if s.apiKey == "" {
		return ErrNotConfigured
	}

	var req mailRequest
	req.Personalizations = append(req.Personalizations, struct {
		To      []mailAddress `json:"to"`
		Subject string        `json:"subject"`
	}{
		To:      []mailAddress{{Email: email.To}},
		Subject: email.Subject,
	})
	req.From = mailAddress{Email: s.fromEmail, Name: s.fromName}
	req.Content = append(req.Content, mailContent{Type: "text/plain", Value: email.Text})
	if email.HTML != "" {
		req.Content = append(req.Content, mailContent{Type: "text/html", Value: email.HTML})
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("provider returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	return nil
}
