// Package cache keeps short-lived counts that are expensive to recompute.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/metrics"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "bizsim:social_proof:"
	generationKey = keyPrefix + "generation"

	defaultTTL = 5 * time.Minute
)

// SocialProofCache stores how many learners completed sessions matching a
// scenario title. Invalidate drops every stored count at once.
//
// Set takes the generation returned by the Get that missed, so a count
// computed before an Invalidate is stored where it is never read.
type SocialProofCache interface {
	Get(ctx context.Context, title string) (Lookup, error)
	Set(ctx context.Context, title string, generation, count int64) error
	Invalidate(ctx context.Context) error
}

type Lookup struct {
	Count      int64
	Hit        bool
	Generation int64
}

type redisCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisCache connects to redis and checks the connection.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (SocialProofCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := cfg.SocialProofTTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisCache{rdb: rdb, ttl: ttl}, nil
}

func (c *redisCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *redisCache) Get(ctx context.Context, title string) (Lookup, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return Lookup{}, err
	}
	count, err := c.rdb.Get(ctx, countKey(gen, title)).Int64()
	if errors.Is(err, goredis.Nil) {
		metrics.Get().CacheMisses.Inc()
		return Lookup{Generation: gen}, nil
	}
	if err != nil {
		return Lookup{}, err
	}
	metrics.Get().CacheHits.Inc()
	return Lookup{Count: count, Hit: true, Generation: gen}, nil
}

func (c *redisCache) Set(ctx context.Context, title string, generation, count int64) error {
	return c.rdb.Set(ctx, countKey(generation, title), count, c.ttl).Err()
}

// Invalidate bumps the generation so older counts are never read again;
// they expire on their own.
func (c *redisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, generationKey).Err()
}

func countKey(generation int64, title string) string {
	return keyPrefix + strconv.FormatInt(generation, 10) + ":" + strings.ToLower(strings.TrimSpace(title))
}

type noopCache struct{}

// NewNoopCache returns a cache that stores nothing.
func NewNoopCache() SocialProofCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) (Lookup, error)    { return Lookup{}, nil }
func (noopCache) Set(context.Context, string, int64, int64) error { return nil }
func (noopCache) Invalidate(context.Context) error                { return nil }
