package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketKV = []byte("kv")

// BoltStore implements KV using BoltDB. Every operation runs in its own
// transaction, which gives the per-key atomicity the handlers rely on.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKV)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get returns the value for key, or nil when absent.
func (s *BoltStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketKV).Get([]byte(key))
		if data != nil {
			value = append([]byte{}, data...)
		}
		return nil
	})

	return value, err
}

// Set stores value under key.
func (s *BoltStore) Set(ctx context.Context, key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketKV).Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes key; absent keys are a no-op.
func (s *BoltStore) Delete(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketKV).Delete([]byte(key))
	})
}

// GetByPrefix returns all entries under prefix in key order.
func (s *BoltStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var entries []Entry

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketKV).Cursor()
		p := []byte(prefix)

		for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
			entries = append(entries, Entry{
				Key:   string(k),
				Value: append([]byte{}, v...),
			})
		}
		return nil
	})

	return entries, err
}

// Increment adds delta to the counter at key inside a single write
// transaction, so concurrent increments serialize instead of losing
// updates.
func (s *BoltStore) Increment(ctx context.Context, key string, delta int) (int, error) {
	var value int

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)

		current := 0
		if data := b.Get([]byte(key)); data != nil {
			n, err := strconv.Atoi(string(data))
			if err != nil {
				return fmt.Errorf("corrupt counter %s: %w", key, err)
			}
			current = n
		}

		value = current + delta
		return b.Put([]byte(key), []byte(strconv.Itoa(value)))
	})

	return value, err
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
