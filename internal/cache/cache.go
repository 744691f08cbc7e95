// Package cache provides a Redis-backed cache for insight reports. The
// cache is best-effort: Redis being slow or down degrades to recomputation,
// never to a failed request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"moodmate/internal/insights"
	"moodmate/internal/logging"
)

// InsightsCache caches one insight report per user per calendar day
type InsightsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// New creates a cache around a Redis client
func New(client *redis.Client, ttl time.Duration, logger logging.Logger) *InsightsCache {
	return &InsightsCache{
		client: client,
		ttl:    ttl,
		logger: logger.WithComponent("cache"),
	}
}

// key builds the per-user per-day cache key
func (c *InsightsCache) key(userID string, day time.Time) string {
	return fmt.Sprintf("moodmate:insights:%s:%s", userID, day.UTC().Format("2006-01-02"))
}

// GetReport returns the cached report for the user and day, or (nil, false)
// on a miss or any Redis failure
func (c *InsightsCache) GetReport(ctx context.Context, userID string, day time.Time) (*insights.Report, bool) {
	data, err := c.client.Get(ctx, c.key(userID, day)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}

	var report insights.Report
	if err := json.Unmarshal(data, &report); err != nil {
		c.logger.Warn("cache entry corrupt, discarding", "user_id", userID, "error", err)
		c.Invalidate(ctx, userID, day)
		return nil, false
	}
	return &report, true
}

// SetReport stores the report for the user and day. Failures are logged and
// swallowed.
func (c *InsightsCache) SetReport(ctx context.Context, userID string, day time.Time, report *insights.Report) {
	data, err := json.Marshal(report)
	if err != nil {
		c.logger.Warn("cache marshal failed", "user_id", userID, "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(userID, day), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "user_id", userID, "error", err)
	}
}

// Invalidate drops the cached report for the user and day, used after a new
// mood entry changes the underlying history
func (c *InsightsCache) Invalidate(ctx context.Context, userID string, day time.Time) {
	if err := c.client.Del(ctx, c.key(userID, day)).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", "user_id", userID, "error", err)
	}
}
