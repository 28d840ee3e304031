package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gridfield/windplan/model"
)

// RedisStore is a Redis-backed LayoutStore. Layouts are stored as JSON under
// prefixed keys with an optional TTL, which makes it usable both as shared
// storage between planner instances and as a plain expiring cache.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to the given Redis address. A zero ttl stores
// layouts without expiry.
func NewRedisStore(addr, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "windplan:layout:"
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
		ttl:    ttl,
	}
}

// Put stores or replaces the layout under runID.
func (s *RedisStore) Put(ctx context.Context, runID string, layout model.Layout) error {
	data, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("encode layout %q: %w", runID, err)
	}
	if err := s.client.Set(ctx, s.prefix+runID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store layout %q: %w", runID, err)
	}
	return nil
}

// Get returns the layout under runID, if present.
func (s *RedisStore) Get(ctx context.Context, runID string) (model.Layout, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+runID).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Layout{}, false, nil
	}
	if err != nil {
		return model.Layout{}, false, fmt.Errorf("fetch layout %q: %w", runID, err)
	}

	var layout model.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return model.Layout{}, false, fmt.Errorf("decode layout %q: %w", runID, err)
	}
	return layout, true, nil
}

// ListRunIDs scans for all stored run IDs under the store's prefix.
func (s *RedisStore) ListRunIDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan layouts: %w", err)
	}
	return ids, nil
}

// Delete removes the layout under runID. Deleting a missing ID is not an
// error.
func (s *RedisStore) Delete(ctx context.Context, runID string) error {
	if err := s.client.Del(ctx, s.prefix+runID).Err(); err != nil {
		return fmt.Errorf("delete layout %q: %w", runID, err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error { return s.client.Close() }

var _ LayoutStore = (*RedisStore)(nil)
