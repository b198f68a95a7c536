package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sunglassai/outreach/internal/store"
)

const (
	attemptPrefix    = "email:"
	dayCounterPrefix = "analytics:emails_sent:"
)

// AttemptStore persists send-attempt records. Attempts are append-only:
// they are never updated or deleted in normal operation.
type AttemptStore struct {
	kv store.KV
}

// NewAttemptStore creates an attempt store over kv.
func NewAttemptStore(kv store.KV) *AttemptStore {
	return &AttemptStore{kv: kv}
}

// Record writes a new attempt. A missing id gets a generated one.
func (s *AttemptStore) Record(ctx context.Context, attempt *SendAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.New().String()
	}
	if attempt.SentAt.IsZero() {
		attempt.SentAt = time.Now().UTC()
	}

	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt: %w", err)
	}
	return s.kv.Set(ctx, attemptPrefix+attempt.ID, data)
}

// Get returns the attempt by id, or nil when absent.
func (s *AttemptStore) Get(ctx context.Context, id string) (*SendAttempt, error) {
	data, err := s.kv.Get(ctx, attemptPrefix+id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	attempt := &SendAttempt{}
	if err := json.Unmarshal(data, attempt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attempt %s: %w", id, err)
	}
	return attempt, nil
}

// ListByUser returns all attempts owned by userID.
func (s *AttemptStore) ListByUser(ctx context.Context, userID string) ([]SendAttempt, error) {
	entries, err := s.kv.GetByPrefix(ctx, attemptPrefix)
	if err != nil {
		return nil, err
	}

	attempts := make([]SendAttempt, 0, len(entries))
	for _, e := range entries {
		var a SendAttempt
		if err := json.Unmarshal(e.Value, &a); err != nil {
			continue
		}
		if a.UserID != userID {
			continue
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

// BumpDayCounter increments the day-bucketed send counter. The counter
// is informational only; the analytics endpoint recomputes from the
// email records instead.
func (s *AttemptStore) BumpDayCounter(ctx context.Context, day time.Time) error {
	key := dayCounterPrefix + day.UTC().Format("2006-01-02")

	_, err := s.kv.Increment(ctx, key, 1)
	return err
}

// DayCount returns the counter for the given day, 0 when unset.
func (s *AttemptStore) DayCount(ctx context.Context, day time.Time) (int, error) {
	key := dayCounterPrefix + day.UTC().Format("2006-01-02")

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("corrupt counter %s: %w", key, err)
	}
	return n, nil
}
