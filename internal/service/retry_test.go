package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &UnavailableError{Err: errors.New("down")}},
		MockResponse{Content: `{"ok":true}`},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Content)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &RateLimitError{Err: errors.New("slow down")}},
		MockResponse{Err: &RateLimitError{Err: errors.New("slow down")}},
		MockResponse{Err: &RateLimitError{Err: errors.New("slow down")}},
		MockResponse{Content: "never reached"},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var rl *RateLimitError
	assert.True(t, errors.As(err, &rl))
	assert.Equal(t, 3, mock.CallCount())
}

func TestRetrySkipsPermanentErrors(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: errors.New("bad request")},
		MockResponse{Content: "ok"},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	assert.EqualError(t, err, "bad request")
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetryHonoursContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &UnavailableError{Err: errors.New("down")}},
		MockResponse{Content: "ok"},
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, BaseDelay: time.Second, MaxDelay: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, mock.CallCount())
}

func TestBackoffStaysWithinJitterBounds(t *testing.T) {
	for attempt := range 5 {
		d := Backoff(100*time.Millisecond, time.Second, attempt)
		want := 100 * time.Millisecond << attempt
		if want > time.Second {
			want = time.Second
		}
		assert.GreaterOrEqual(t, d, time.Duration(float64(want)*0.8))
		assert.LessOrEqual(t, d, time.Duration(float64(want)*1.2))
	}
}

func TestRateLimitPassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "a"}, MockResponse{Content: "b"})
	p := WithRateLimit(mock, 1000, 2)

	for _, want := range []string{"a", "b"} {
		resp, err := p.Generate(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, want, resp.Content)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mock := NewMockProvider()
	assert.Same(t, Provider(mock), WithRateLimit(mock, 0, 0))
}

func TestMockProviderValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: `{"title":""}`})
	_, err := mock.Generate(context.Background(), Request{Schema: MustSchema("title-mock", titleSchema)})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestMockProviderExhausted(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{Prompt: "p"})
	assert.True(t, IsTransient(err))
	require.Len(t, mock.Calls, 1)
	assert.Equal(t, "p", mock.Calls[0].Prompt)
}
