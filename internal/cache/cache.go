package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/config"
	"jiffy-backoffice-api-server/internal/metrics"
)

const (
	IncomeOverviewKey = "report:income-overview"
	AccountUsageKey   = "report:account-usage"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is valid and behaves as an always-empty cache.
type Client struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// New returns nil when no address is configured, which disables caching.
func New(cfg config.RedisConfig, log *zap.Logger) *Client {
	if cfg.Addr == "" {
		return nil
	}
	return &Client{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: cfg.ReportTTL,
		log: log,
	}
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return res
}

// Set stores value with the configured TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes keys, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Remember returns the cached JSON value under key, or calls load and caches its result.
func Remember[T any](ctx context.Context, c *Client, key string, load func(context.Context) (T, error)) (T, error) {
	if raw := c.Get(ctx, key); raw != nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.ObserveCacheRequest(key, true)
			return cached, nil
		}
	}
	metrics.ObserveCacheRequest(key, false)

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if raw, err := json.Marshal(value); err == nil {
		c.Set(ctx, key, raw)
	}
	return value, nil
}
