package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/metrics"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	maxEmbeddingChars      = 10000
	defaultCircuitCooldown = 30 * time.Second
)

type GeminiProvider struct {
	Client            *genai.Client
	Model             string
	EmbeddingModel    string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	// CircuitCooldown is how long an open breaker rejects calls before
	// letting a single trial through.
	CircuitCooldown   time.Duration
	consecutiveErrors atomic.Int32
	openedAt          atomic.Int64
	circuitBreakerMax int32
}

func NewGeminiProvider(ctx context.Context, cfg *config.GeminiConfig, timeout time.Duration) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &GeminiProvider{
		Client:            client,
		Model:             cfg.Model,
		EmbeddingModel:    cfg.EmbeddingModel,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    timeout,
		CircuitCooldown:   defaultCircuitCooldown,
		circuitBreakerMax: 5,
	}, nil
}

func (s *GeminiProvider) ModelID() string {
	return s.Model
}

func (s *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}
	if err := s.checkCircuit(); err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSONMode {
		genConfig.ResponseMIMEType = "application/json"
	}

	result, err := s.Client.Models.GenerateContent(timeoutCtx, s.Model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		s.recordFailure(err)
		return nil, s.mapError(err)
	}
	s.recordSuccess()

	if err := s.validateGenerateResponse(result); err != nil {
		return nil, &InvalidResponseError{Err: err}
	}

	var usage Usage
	if result.UsageMetadata != nil {
		usage.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
	}
	return finish(req, result.Text(), s.Model, usage)
}

// Embed returns the embedding for text, retrying transient failures.
func (s *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}
	if n := utf8.RuneCountInString(trimmedText); n > maxEmbeddingChars {
		logger.Log.Warn("embedding text truncated", zap.Int("length", n))
		trimmedText = string([]rune(trimmedText)[:maxEmbeddingChars])
	}
	if err := s.checkCircuit(); err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			logger.Log.Debug("retrying embedding",
				zap.Int("attempt", attempt), zap.Int("max", s.MaxRetries), zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return nil, fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.Client.Models.EmbedContent(timeoutCtx, s.EmbeddingModel, content, nil)
		if err == nil {
			s.recordSuccess()
			embeddings, err := validateEmbeddingResponse(result)
			if err != nil {
				return nil, fmt.Errorf("invalid embedding response: %w", err)
			}
			return embeddings, nil
		}

		lastErr = err
		if !IsTransient(s.mapError(err)) {
			s.recordFailure(err)
			return nil, fmt.Errorf("generate embedding failed: %w", err)
		}
		logger.Log.Warn("retryable embedding error", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.recordFailure(lastErr)
	return nil, fmt.Errorf("max retries (%d) exceeded for embedding: %w", s.MaxRetries, lastErr)
}

// checkCircuit rejects calls while the breaker is open. Once the cooldown
// has passed one caller is let through as a trial; its outcome closes the
// breaker or opens it for another cooldown.
func (s *GeminiProvider) checkCircuit() error {
	n := s.consecutiveErrors.Load()
	if n < s.circuitBreakerMax {
		return nil
	}
	opened := s.openedAt.Load()
	now := time.Now().UnixNano()
	if now-opened >= int64(s.CircuitCooldown) && s.openedAt.CompareAndSwap(opened, now) {
		logger.Log.Info("gemini circuit breaker half-open, sending trial request")
		return nil
	}
	return &UnavailableError{Err: fmt.Errorf("%w: %d consecutive errors", ErrCircuitOpen, n)}
}

func (s *GeminiProvider) recordSuccess() {
	if s.consecutiveErrors.Swap(0) >= s.circuitBreakerMax {
		logger.Log.Info("gemini circuit breaker closed")
	}
	s.reportCircuit()
}

// recordFailure counts err towards opening the breaker. Cancellations and
// client errors other than 429 say nothing about the backend's health.
func (s *GeminiProvider) recordFailure(err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	if code := apiErrorCode(err); code >= 400 && code < 500 && code != 429 {
		return
	}
	if n := s.consecutiveErrors.Add(1); n >= s.circuitBreakerMax {
		s.openedAt.Store(time.Now().UnixNano())
		if n == s.circuitBreakerMax {
			logger.Log.Warn("gemini circuit breaker opened", zap.Int32("consecutive_errors", n))
		}
	}
	s.reportCircuit()
}

func (s *GeminiProvider) reportCircuit() {
	_, open := s.CircuitBreakerStatus()
	metrics.Get().SetCircuitOpen("gemini", open)
}

func (s *GeminiProvider) calculateBackoff(attempt int) time.Duration {
	return backoff(s.BaseDelay, s.MaxDelay, attempt-1, 0.5)
}

func (s *GeminiProvider) mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	code := apiErrorCode(err)
	switch {
	case code == 429:
		return &RateLimitError{Err: err}
	case code >= 500:
		return &UnavailableError{Err: err}
	case code >= 400:
		return fmt.Errorf("gemini: %w", err)
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF") {
		return &UnavailableError{Err: err}
	}
	return fmt.Errorf("gemini: %w", err)
}

func (s *GeminiProvider) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}
	return embeddings, nil
}

func apiErrorCode(err error) int {
	var apiErrPtr *genai.APIError
	var apiErr genai.APIError
	switch {
	case errors.As(err, &apiErrPtr):
		return apiErrPtr.Code
	case errors.As(err, &apiErr):
		return apiErr.Code
	}
	return 0
}

func (s *GeminiProvider) CircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	n := s.consecutiveErrors.Load()
	return int(n), n >= s.circuitBreakerMax
}
