package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// LLMConfig selects the model provider and the limits applied to every call.
type LLMConfig struct {
	Provider       string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIModel    string
	RequestTimeout time.Duration
	MaxRetries     int
	RateLimitRPS   float64
	RateLimitBurst int
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		llmConfig = newLLMConfig(Env())
	})
	return llmConfig
}

func newLLMConfig(v *viper.Viper) *LLMConfig {
	return &LLMConfig{
		Provider:       v.GetString("LLM_PROVIDER"),
		OpenAIAPIKey:   v.GetString("OPENAI_API_KEY"),
		OpenAIBaseURL:  v.GetString("OPENAI_BASE_URL"),
		OpenAIModel:    v.GetString("OPENAI_MODEL"),
		RequestTimeout: v.GetDuration("LLM_REQUEST_TIMEOUT"),
		MaxRetries:     v.GetInt("LLM_MAX_RETRIES"),
		RateLimitRPS:   v.GetFloat64("LLM_RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("LLM_RATE_LIMIT_BURST"),
	}
}
