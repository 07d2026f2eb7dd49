// Package cache provides a Redis-backed read-through cache for fetched
// user activity. It decorates a reddit.Provider, so call sites do not
// care whether a result came from Redis or the upstream API.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/redsight/redsight/internal/models"
	"github.com/redsight/redsight/internal/services/reddit"
)

const keyPrefix = "reddit:activity:"

// ActivityCache caches FetchUserActivity results in Redis
type ActivityCache struct {
	provider reddit.Provider
	client   *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
}

// NewActivityCache connects to Redis and wraps the given provider.
// The connection is verified up front so a bad REDIS_URL fails at startup
// rather than on the first request.
func NewActivityCache(provider reddit.Provider, redisURL string, ttl time.Duration, logger *zap.Logger) (*ActivityCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ActivityCache{
		provider: provider,
		client:   client,
		ttl:      ttl,
		logger:   logger,
	}, nil
}

// Close closes the Redis connection
func (c *ActivityCache) Close() error {
	return c.client.Close()
}

// Ping reports whether the Redis backend is reachable
func (c *ActivityCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// FetchUserActivity serves from cache when possible and falls through to
// the wrapped provider otherwise. Redis failures are logged and treated
// as cache misses; they never fail the request.
func (c *ActivityCache) FetchUserActivity(ctx context.Context, username string) (*models.UserActivity, error) {
	cacheKey := keyPrefix + strings.ToLower(username)

	cached, err := c.client.Get(ctx, cacheKey).Result()
	if err == nil {
		var activity models.UserActivity
		if err := json.Unmarshal([]byte(cached), &activity); err == nil {
			c.logger.Debug("activity_cache_hit", zap.String("username", username))
			return &activity, nil
		}
		// Stale or corrupted entry, drop it and refetch
		c.client.Del(ctx, cacheKey)
	} else if err != redis.Nil {
		c.logger.Warn("activity_cache_read_failed",
			zap.String("username", username),
			zap.Error(err))
	}

	activity, err := c.provider.FetchUserActivity(ctx, username)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(activity); err == nil {
		if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
			c.logger.Warn("activity_cache_write_failed",
				zap.String("username", username),
				zap.Error(err))
		}
	}

	return activity, nil
}

// Invalidate removes a user's cached activity
func (c *ActivityCache) Invalidate(ctx context.Context, username string) error {
	return c.client.Del(ctx, keyPrefix+strings.ToLower(username)).Err()
}
