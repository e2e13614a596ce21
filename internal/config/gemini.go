package config

import (
	"sync"

	"github.com/spf13/viper"
)

type GeminiConfig struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	// BaseURL overrides the Gemini API endpoint, e.g. for a proxy.
	BaseURL string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = newGeminiConfig(Env())
	})
	return geminiConfig
}

func newGeminiConfig(v *viper.Viper) *GeminiConfig {
	return &GeminiConfig{
		APIKey:         v.GetString("GEMINI_API_KEY"),
		Model:          v.GetString("GEMINI_MODEL"),
		EmbeddingModel: v.GetString("GEMINI_EMBEDDING_MODEL"),
		BaseURL:        v.GetString("GEMINI_BASE_URL"),
	}
}
