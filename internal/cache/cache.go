// Package cache keeps read models in redis. A nil client turns every call into a miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"escrow-service/internal/model"

	"github.com/redis/go-redis/v9"
)

const snapshotPrefix = "trust:snapshot:"

// SnapshotCache stores trust profile snapshots
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

func snapshotKey(userID string) string {
	return snapshotPrefix + userID
}

// GetSnapshot returns nil without error on a miss
func (c *SnapshotCache) GetSnapshot(ctx context.Context, userID string) (*model.ProfileSnapshot, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}

	val, err := c.rdb.Get(ctx, snapshotKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot from cache: %w", err)
	}

	snapshot := &model.ProfileSnapshot{}
	if err := json.Unmarshal(val, snapshot); err != nil {
		return nil, fmt.Errorf("decode cached snapshot: %w", err)
	}
	return snapshot, nil
}

func (c *SnapshotCache) SetSnapshot(ctx context.Context, snapshot *model.ProfileSnapshot) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	b, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.rdb.Set(ctx, snapshotKey(snapshot.UserID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("set snapshot in cache: %w", err)
	}
	return nil
}

func (c *SnapshotCache) Invalidate(ctx context.Context, userID string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, snapshotKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete snapshot from cache: %w", err)
	}
	return nil
}
