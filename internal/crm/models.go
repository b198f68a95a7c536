// Package crm holds the user-owned records: collected brands and
// send-attempt history, persisted through the key/value store under the
// "brand:" and "email:" prefixes.
package crm

import "time"

// Contact status values for a collected brand.
const (
	StatusNotContacted = "not_contacted"
	StatusContacted    = "contacted"
	StatusResponded    = "responded"
	StatusPartnership  = "partnership"
)

// MyBrand is a brand the user collected, distinct from the read-only
// catalog entry it may have been created from. Mutable: edits preserve
// the id.
type MyBrand struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Website       string            `json:"website"`
	Email         string            `json:"email"`
	CEOName       string            `json:"ceoName"`
	CEOEmail      string            `json:"ceoEmail"`
	Description   string            `json:"description"`
	SocialMedia   map[string]string `json:"socialMedia,omitempty"`
	Location      string            `json:"location"`
	Founded       string            `json:"founded"`
	Employees     string            `json:"employees"`
	Revenue       string            `json:"revenue"`
	MarketSegment string            `json:"marketSegment"`
	KeyProducts   string            `json:"keyProducts"`
	Tags          []string          `json:"tags,omitempty"`
	LastContact   *time.Time        `json:"lastContact,omitempty"`
	ContactStatus string            `json:"contactStatus"`
	UserID        string            `json:"userId,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// SendAttempt records one outreach email send, successful or not.
// Immutable once written.
type SendAttempt struct {
	ID      string    `json:"id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Content string    `json:"content"`
	BrandID string    `json:"brandId,omitempty"`
	Status  string    `json:"status"`
	SentAt  time.Time `json:"sentAt"`
	UserID  string    `json:"userId"`
}

// SendAttempt status values. No third value exists: every attempt is
// either sent or failed.
const (
	SendStatusSent   = "sent"
	SendStatusFailed = "failed"
)
