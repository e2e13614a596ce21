package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type OpenRouterProvider struct {
	client *resty.Client
	model  string
}

func NewOpenRouterProvider(cfg *config.OpenRouterConfig, timeout time.Duration) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &OpenRouterProvider{client: client, model: cfg.Model}, nil
}

func (p *OpenRouterProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	messages := []map[string]string{}
	if req.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.Prompt})

	body := map[string]any{
		"model":       p.model,
		"messages":    messages,
		"temperature": req.Temperature,
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}
	if req.JSONMode {
		body["response_format"] = map[string]string{"type": "json_object"}
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &UnavailableError{Err: err}
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header().Get("Retry-After"))
		return nil, &RateLimitError{
			RetryAfter: time.Duration(retryAfter) * time.Second,
			Err:        fmt.Errorf("openrouter: %s", resp.Status()),
		}
	case resp.StatusCode() >= 500:
		return nil, &UnavailableError{Err: fmt.Errorf("openrouter: %s", resp.Status())}
	case resp.IsError():
		msg := gjson.Get(resp.String(), "error.message").String()
		return nil, fmt.Errorf("openrouter: %s: %s", resp.Status(), msg)
	}

	raw := resp.String()
	text := gjson.Get(raw, "choices.0.message.content").String()
	if text == "" {
		return nil, &InvalidResponseError{Err: fmt.Errorf("no response from model")}
	}

	model := gjson.Get(raw, "model").String()
	if model == "" {
		model = p.model
	}
	return finish(req, text, model, Usage{
		InputTokens:  int(gjson.Get(raw, "usage.prompt_tokens").Int()),
		OutputTokens: int(gjson.Get(raw, "usage.completion_tokens").Int()),
	})
}

func (p *OpenRouterProvider) ModelID() string {
	return p.model
}
