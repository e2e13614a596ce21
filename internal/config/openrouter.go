package config

import (
	"sync"

	"github.com/spf13/viper"
)

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		openRouterConfig = newOpenRouterConfig(Env())
	})
	return openRouterConfig
}

func newOpenRouterConfig(v *viper.Viper) *OpenRouterConfig {
	return &OpenRouterConfig{
		APIKey:  v.GetString("OPENROUTER_API_KEY"),
		Model:   v.GetString("OPENROUTER_MODEL"),
		BaseURL: v.GetString("OPENROUTER_BASE_URL"),
	}
}
