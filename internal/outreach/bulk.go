package outreach

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Target is one recipient of a bulk campaign.
type Target struct {
	BrandID   string
	BrandName string
	Email     string
}

// Result is the per-target outcome of a bulk send.
type Result struct {
	BrandID   string `json:"brandId,omitempty"`
	BrandName string `json:"brand"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// BulkSummary aggregates a bulk send.
type BulkSummary struct {
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Results    []Result `json:"results"`
}

// BulkSender fans a campaign out in fixed-size batches. Sends within a
// batch run concurrently; a fixed delay separates batches to respect
// the provider's rate limit. Partial failure is expected: failed
// targets are reported, never retried.
type BulkSender struct {
	sender    Sender
	batchSize int
	delay     time.Duration
	logger    *slog.Logger
}

// NewBulkSender wraps sender with batching. Non-positive batchSize
// defaults to 10; zero delay defaults to one second.
func NewBulkSender(sender Sender, batchSize int, delay time.Duration, logger *slog.Logger) *BulkSender {
	if batchSize <= 0 {
		batchSize = 10
	}
	if delay <= 0 {
		delay = time.Second
	}
	return &BulkSender{
		sender:    sender,
		batchSize: batchSize,
		delay:     delay,
		logger:    logger,
	}
}

// BuildEmail produces the message for one target.
type BuildEmail func(target Target) *Email

// SendAll delivers to every target in batch order. Results preserve
// target order within the summary. Context cancellation stops before
// the next batch; already-issued sends run to completion.
func (b *BulkSender) SendAll(ctx context.Context, targets []Target, build BuildEmail) *BulkSummary {
	summary := &BulkSummary{Results: make([]Result, len(targets))}

	for start := 0; start < len(targets); start += b.batchSize {
		end := start + b.batchSize
		if end > len(targets) {
			end = len(targets)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				target := targets[i]
				result := Result{BrandID: target.BrandID, BrandName: target.BrandName, Success: true}

				if err := b.sender.Send(ctx, build(target)); err != nil {
					result.Success = false
					result.Error = err.Error()
					b.logger.Warn("bulk send failed", "brand", target.BrandName, "to", target.Email, "error", err)
				} else {
					b.logger.Info("bulk send delivered", "brand", target.BrandName, "to", target.Email)
				}

				summary.Results[i] = result
			}(i)
		}
		wg.Wait()

		if end < len(targets) {
			select {
			case <-ctx.Done():
				// Remaining targets are reported as failed without
				// being attempted.
				for i := end; i < len(targets); i++ {
					summary.Results[i] = Result{
						BrandID:   targets[i].BrandID,
						BrandName: targets[i].BrandName,
						Success:   false,
						Error:     ctx.Err().Error(),
					}
				}
				b.tally(summary)
				return summary
			case <-time.After(b.delay):
			}
		}
	}

	b.tally(summary)
	return summary
}

func (b *BulkSender) tally(summary *BulkSummary) {
	for _, r := range summary.Results {
		if r.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}
}
