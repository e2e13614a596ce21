package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderWithoutKey(t *testing.T) {
	for _, name := range []string{"", "openai", "openrouter", "gemini"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewProvider(context.Background(),
				&config.LLMConfig{Provider: name},
				&config.OpenRouterConfig{},
				&config.GeminiConfig{})
			assert.ErrorIs(t, err, ErrNoProvider)
		})
	}
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(context.Background(), &config.LLMConfig{Provider: "bard"}, &config.OpenRouterConfig{}, &config.GeminiConfig{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoProvider))
}

func TestNewProviderOpenAI(t *testing.T) {
	p, err := NewProvider(context.Background(),
		&config.LLMConfig{Provider: "OpenAI", OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-4o-mini", MaxRetries: 1, RequestTimeout: time.Second},
		&config.OpenRouterConfig{},
		&config.GeminiConfig{})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())
}

func TestDecorateRetriesThroughChain(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &UnavailableError{Err: errors.New("down")}},
		MockResponse{Content: "ok"},
	)
	p := Decorate(mock, "mock", &config.LLMConfig{MaxRetries: 1})

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
}

func TestNewEmbedderWithoutKey(t *testing.T) {
	_, err := NewEmbedder(context.Background(), &config.GeminiConfig{}, &config.LLMConfig{})
	assert.ErrorIs(t, err, ErrNoProvider)
}
