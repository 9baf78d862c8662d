// Package redisstore persists pending stock batches in Redis so a staged
// batch survives console restarts and is visible to every gateway replica.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stockgate/internal/domain/staging"
)

// batchTTL bounds how long an abandoned batch lingers.
const batchTTL = 7 * 24 * time.Hour

// Store implements staging.Store on a Redis client. Each slot is one key
// holding the JSON-encoded batch, replaced wholesale on every write.
type Store struct {
	client redis.UniversalClient
}

// New creates a Redis-backed batch store.
func New(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

func key(userID string, slot staging.Slot) string {
	return fmt.Sprintf("batch:%s:%s", userID, slot)
}

// Get implements staging.Store.
func (s *Store) Get(ctx context.Context, userID string, slot staging.Slot) ([]staging.Entry, error) {
	raw, err := s.client.Get(ctx, key(userID, slot)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get batch %s: %w", key(userID, slot), err)
	}

	var entries []staging.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode batch %s: %w", key(userID, slot), err)
	}
	return entries, nil
}

// Set implements staging.Store.
func (s *Store) Set(ctx context.Context, userID string, slot staging.Slot, entries []staging.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode batch %s: %w", key(userID, slot), err)
	}
	if err := s.client.Set(ctx, key(userID, slot), raw, batchTTL).Err(); err != nil {
		return fmt.Errorf("set batch %s: %w", key(userID, slot), err)
	}
	return nil
}

// Clear implements staging.Store.
func (s *Store) Clear(ctx context.Context, userID string, slot staging.Slot) error {
	if err := s.client.Del(ctx, key(userID, slot)).Err(); err != nil {
		return fmt.Errorf("clear batch %s: %w", key(userID, slot), err)
	}
	return nil
}
