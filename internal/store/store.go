// Package store provides the prefix-scannable key/value storage the
// CRM persists into. Keys are namespaced by prefix ("brand:", "email:",
// "analytics:"); values are opaque JSON payloads owned by the caller.
package store

import "context"

// Entry is one key/value pair returned by a prefix scan.
type Entry struct {
	Key   string
	Value []byte
}

// KV is a generic key/value store with per-key atomic operations.
type KV interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns all entries whose key starts with prefix,
	// in lexicographic key order.
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
	// Increment atomically adds delta to the integer stored at key,
	// treating an absent key as zero, and returns the new value.
	// Concurrent increments must not lose updates.
	Increment(ctx context.Context, key string, delta int) (int, error)
	Close() error
}
