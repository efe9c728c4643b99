package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

const profileCacheKey = "portfolio:profile"

// RedisProfileCache caches the assembled profile document. Every method is
// soft-fail: a Redis outage degrades to a cache miss, never to a request
// error.
type RedisProfileCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisProfileCache(rdb *redis.Client, ttl time.Duration, logger logger.Logger) *RedisProfileCache {
	return &RedisProfileCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *RedisProfileCache) Get(ctx context.Context) (*portfolio.Profile, bool) {
	raw, err := c.rdb.Get(ctx, profileCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Profile cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var p portfolio.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		c.logger.Warn("Profile cache entry corrupt, dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return &p, true
}

func (c *RedisProfileCache) Set(ctx context.Context, p *portfolio.Profile) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.logger.Warn("Profile cache marshal failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, profileCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Profile cache write failed", zap.Error(err))
	}
}

func (c *RedisProfileCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, profileCacheKey).Err(); err != nil {
		c.logger.Warn("Profile cache invalidate failed", zap.Error(err))
	}
}
