package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/logger"
	"go.uber.org/zap"
)

const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// NewProvider builds the configured provider wrapped in rate limiting,
// retries and metrics. It returns ErrNoProvider when the selected provider
// has no API key.
func NewProvider(ctx context.Context, llm *config.LLMConfig, openRouter *config.OpenRouterConfig, gemini *config.GeminiConfig) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(llm.Provider))

	var (
		base Provider
		err  error
	)
	switch name {
	case "", ProviderOpenAI:
		name = ProviderOpenAI
		if llm.OpenAIAPIKey == "" {
			return nil, ErrNoProvider
		}
		base, err = NewOpenAIProvider(llm)
	case ProviderOpenRouter:
		if openRouter.APIKey == "" {
			return nil, ErrNoProvider
		}
		base, err = NewOpenRouterProvider(openRouter, llm.RequestTimeout)
	case ProviderGemini:
		if gemini.APIKey == "" {
			return nil, ErrNoProvider
		}
		base, err = NewGeminiProvider(ctx, gemini, llm.RequestTimeout)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", llm.Provider)
	}
	if err != nil {
		return nil, err
	}

	logger.Log.Info("model provider ready", zap.String("provider", name), zap.String("model", base.ModelID()))
	return Decorate(base, name, llm), nil
}

// Decorate applies the standard middleware chain to p.
func Decorate(p Provider, name string, llm *config.LLMConfig) Provider {
	p = WithRateLimit(p, llm.RateLimitRPS, llm.RateLimitBurst)
	p = WithRetry(p, RetryConfig{
		MaxAttempts: llm.MaxRetries + 1,
		BaseDelay:   defaultRetryBase,
		MaxDelay:    defaultRetryMax,
	})
	return WithMetrics(p, name)
}

// NewEmbedder returns the Gemini embedder, or ErrNoProvider without a key.
func NewEmbedder(ctx context.Context, gemini *config.GeminiConfig, llm *config.LLMConfig) (Embedder, error) {
	if gemini.APIKey == "" {
		return nil, ErrNoProvider
	}
	return NewGeminiProvider(ctx, gemini, llm.RequestTimeout)
}
