package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/redsight/redsight/internal/request"
)

// DefaultRateLimit is the fallback per-client rate, in ulule's formatted
// notation (5 requests per second). Analysis requests fan out to three
// upstream Reddit calls each, so the API limit stays deliberately low.
const DefaultRateLimit = "5-S"

// RedisConn wraps a verified Redis connection for rate limiting
type RedisConn struct {
	client *redis.Client
}

// NewRedisConn connects to Redis and verifies the connection
func NewRedisConn(redisURL string) (*RedisConn, error) {
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

	return &RedisConn{client: client}, nil
}

// Close closes the Redis connection
func (c *RedisConn) Close() error {
	return c.client.Close()
}

// Ping checks if Redis is reachable
func (c *RedisConn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// RateLimit returns middleware backed by ulule/limiter with a Redis store,
// keyed by client IP. rateStr uses ulule's formatted notation ("5-S",
// "100-M"); an empty string falls back to DefaultRateLimit.
func RateLimit(conn *RedisConn, rateStr string) (func(http.Handler) http.Handler, error) {
	rate, err := parseRate(rateStr)
	if err != nil {
		return nil, err
	}

	store, err := redisstore.NewStore(conn.client)
	if err != nil {
		return nil, err
	}

	return newLimiterMiddleware(store, rate), nil
}

// RateLimitInMemory returns the same middleware backed by an in-process
// store, for deployments without Redis. The limit is then per instance, not
// global.
func RateLimitInMemory(rateStr string) (func(http.Handler) http.Handler, error) {
	rate, err := parseRate(rateStr)
	if err != nil {
		return nil, err
	}
	return newLimiterMiddleware(memorystore.NewStore(), rate), nil
}

func parseRate(rateStr string) (limiter.Rate, error) {
	if rateStr == "" {
		rateStr = DefaultRateLimit
	}
	return limiter.NewRateFromFormatted(rateStr)
}

func newLimiterMiddleware(store limiter.Store, rate limiter.Rate) func(http.Handler) http.Handler {
	instance := limiter.New(store, rate)
	keyGetter := func(r *http.Request) string {
		return request.ClientIP(r)
	}
	mw := stdlibmw.NewMiddleware(instance, stdlibmw.WithKeyGetter(keyGetter))
	return mw.Handler
}
