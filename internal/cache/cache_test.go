package cache

import (
	"context"
	"testing"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountKey(t *testing.T) {
	assert.Equal(t, "bizsim:social_proof:0:the market dilemma", countKey(0, "  The Market Dilemma "))
	assert.NotEqual(t, countKey(1, "x"), countKey(2, "x"))
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()
	require.NoError(t, c.Set(ctx, "title", 0, 4))
	lookup, err := c.Get(ctx, "title")
	require.NoError(t, err)
	assert.False(t, lookup.Hit)
	assert.Zero(t, lookup.Count)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	_, err := NewRedisCache(context.Background(), &config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.ErrorContains(t, err, "redis ping")
}
