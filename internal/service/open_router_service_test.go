package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenRouterProvider(t *testing.T, handler http.HandlerFunc) *OpenRouterProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(&config.OpenRouterConfig{
		APIKey:  "or-key",
		Model:   "openai/gpt-4o-mini",
		BaseURL: server.URL,
	}, 5*time.Second)
	require.NoError(t, err)
	return p
}

func TestOpenRouterProviderGenerate(t *testing.T) {
	var auth string
	var body map[string]any
	p := newTestOpenRouterProvider(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeCompletion(w, "```json\n{\"title\":\"Expansion\",\"tags\":[]}\n```")
	})

	resp, err := p.Generate(context.Background(), Request{
		Prompt:    "scenario",
		JSONMode:  true,
		MaxTokens: 800,
		Schema:    MustSchema("title-or", titleSchema),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Expansion","tags":[]}`, resp.Content)
	assert.Equal(t, "Bearer or-key", auth)
	assert.Equal(t, "openai/gpt-4o-mini", body["model"])
	assert.EqualValues(t, 800, body["max_tokens"])
	assert.Equal(t, 40, resp.Usage.InputTokens)
}

func TestOpenRouterProviderStatusMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		transient bool
	}{
		{"rate limited", http.StatusTooManyRequests, true},
		{"server error", http.StatusServiceUnavailable, true},
		{"bad request", http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestOpenRouterProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			})
			_, err := p.Generate(context.Background(), Request{Prompt: "x"})
			require.Error(t, err)
			assert.Equal(t, tt.transient, IsTransient(err))
		})
	}
}

func TestOpenRouterProviderRetryAfter(t *testing.T) {
	p := newTestOpenRouterProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	var rl *RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, 3*time.Second, rl.RetryAfter)
}

func TestOpenRouterProviderEmptyChoices(t *testing.T) {
	p := newTestOpenRouterProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestNewOpenRouterProviderRequiresKey(t *testing.T) {
	_, err := NewOpenRouterProvider(&config.OpenRouterConfig{}, time.Second)
	assert.Error(t, err)
}
