// Package analytics derives aggregate campaign statistics from
// send-attempt records. Aggregation is pure: callers filter records to
// the requesting user before calling in.
package analytics

import (
	"sort"
	"time"

	"github.com/sunglassai/outreach/internal/crm"
)

// recentLimit caps the recent-activity feed.
const recentLimit = 10

// RecentEmail is one entry of the recent-activity feed.
type RecentEmail struct {
	ID      string    `json:"id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Status  string    `json:"status"`
	SentAt  time.Time `json:"sentAt"`
}

// Snapshot is the derived analytics view. It is computed on demand and
// never stored.
type Snapshot struct {
	TotalEmails  int           `json:"totalEmails"`
	SentEmails   int           `json:"sentEmails"`
	FailedEmails int           `json:"failedEmails"`
	SuccessRate  float64       `json:"successRate"`
	RecentEmails []RecentEmail `json:"recentEmails"`
}

// Aggregate computes the snapshot for a user's attempts. Empty input
// yields an all-zero snapshot with an empty (non-nil) feed.
func Aggregate(attempts []crm.SendAttempt) Snapshot {
	snap := Snapshot{RecentEmails: []RecentEmail{}}

	snap.TotalEmails = len(attempts)
	for _, a := range attempts {
		if a.Status == crm.SendStatusSent {
			snap.SentEmails++
		} else {
			snap.FailedEmails++
		}
	}
	if snap.TotalEmails > 0 {
		snap.SuccessRate = float64(snap.SentEmails) / float64(snap.TotalEmails) * 100
	}

	sorted := make([]crm.SendAttempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SentAt.After(sorted[j].SentAt)
	})

	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	for _, a := range sorted {
		snap.RecentEmails = append(snap.RecentEmails, RecentEmail{
			ID:      a.ID,
			To:      a.To,
			Subject: a.Subject,
			Status:  a.Status,
			SentAt:  a.SentAt,
		})
	}

	return snap
}
