package service

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/fadilmartias/bizsim/internal/logger"
	"go.uber.org/zap"
)

const (
	defaultRetryBase = 500 * time.Millisecond
	defaultRetryMax  = 8 * time.Second
)

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryProvider retries rate-limit and unavailable errors with exponential
// backoff and ±20% jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || !IsTransient(err) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := backoff(r.config.BaseDelay, r.config.MaxDelay, attempt, 0.2)
		var rl *RateLimitError
		if errors.As(err, &rl) && rl.RetryAfter > wait {
			wait = rl.RetryAfter
		}
		logger.Log.Warn("retrying model call",
			zap.String("model", r.inner.ModelID()),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff returns base·2^attempt capped at max, spread by ±jitter.
func backoff(base, max time.Duration, attempt int, jitter float64) time.Duration {
	delay := float64(base) * math.Pow(2, float64(attempt))
	if max > 0 && delay > float64(max) {
		delay = float64(max)
	}
	delay *= 1 - jitter + rand.Float64()*2*jitter
	return time.Duration(delay)
}

// Backoff is the jittered delay used between whole-generation attempts.
func Backoff(base, max time.Duration, attempt int) time.Duration {
	return backoff(base, max, attempt, 0.2)
}
