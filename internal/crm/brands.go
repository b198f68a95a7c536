package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sunglassai/outreach/internal/store"
)

const brandPrefix = "brand:"

// BrandStore persists MyBrand records in the key/value store.
type BrandStore struct {
	kv store.KV
}

// NewBrandStore creates a brand store over kv.
func NewBrandStore(kv store.KV) *BrandStore {
	return &BrandStore{kv: kv}
}

// Save upserts a brand. A missing id gets a generated one; an existing
// id overwrites the stored record in place. The payload is stored
// as-is: no field validation is performed.
func (s *BrandStore) Save(ctx context.Context, brand *MyBrand) error {
	now := time.Now().UTC()
	if brand.ID == "" {
		brand.ID = uuid.New().String()
		brand.CreatedAt = now
	}
	if brand.CreatedAt.IsZero() {
		brand.CreatedAt = now
	}
	brand.UpdatedAt = now
	if brand.ContactStatus == "" {
		brand.ContactStatus = StatusNotContacted
	}

	data, err := json.Marshal(brand)
	if err != nil {
		return fmt.Errorf("failed to marshal brand: %w", err)
	}
	return s.kv.Set(ctx, brandPrefix+brand.ID, data)
}

// Get returns the brand by id, or nil when absent.
func (s *BrandStore) Get(ctx context.Context, id string) (*MyBrand, error) {
	data, err := s.kv.Get(ctx, brandPrefix+id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	brand := &MyBrand{}
	if err := json.Unmarshal(data, brand); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brand %s: %w", id, err)
	}
	return brand, nil
}

// ListByUser returns all brands owned by userID, in key order.
// Records owned by other users never leak into the result.
func (s *BrandStore) ListByUser(ctx context.Context, userID string) ([]MyBrand, error) {
	entries, err := s.kv.GetByPrefix(ctx, brandPrefix)
	if err != nil {
		return nil, err
	}

	brands := make([]MyBrand, 0, len(entries))
	for _, e := range entries {
		var b MyBrand
		if err := json.Unmarshal(e.Value, &b); err != nil {
			continue
		}
		if b.UserID != userID {
			continue
		}
		brands = append(brands, b)
	}
	return brands, nil
}

// Delete removes a brand. Deleting an absent id is a no-op.
func (s *BrandStore) Delete(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, brandPrefix+id)
}
