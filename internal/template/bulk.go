package template

import (
	"fmt"
	"strings"
	"time"
)

const bulkBanner = "================================================================"

// BulkTarget is one recipient in a bulk export.
type BulkTarget struct {
	Name  string
	Email string
}

// BulkText renders the partnership template for every target into one
// flat text block for manual review: a campaign header followed by
// numbered emails separated by fixed banners. Order follows input
// order and duplicates are kept.
func (e *Engine) BulkText(targets []BulkTarget, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s OUTREACH CAMPAIGN\n", strings.ToUpper(e.identity.Company))
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Emails: %d\n", len(targets))
	fmt.Fprintf(&b, "Sender: %s <%s>\n", e.identity.Name, e.identity.Email)

	for i, t := range targets {
		b.WriteString("\n")
		b.WriteString(bulkBanner)
		b.WriteString("\n")
		fmt.Fprintf(&b, "EMAIL %d/%d\n", i+1, len(targets))
		fmt.Fprintf(&b, "To: %s <%s>\n", t.Name, t.Email)
		fmt.Fprintf(&b, "Subject: %s\n", e.PartnershipSubject())
		b.WriteString(bulkBanner)
		b.WriteString("\n\n")
		b.WriteString(e.Partnership(t.Name))
		b.WriteString("\n")
	}

	return b.String()
}
