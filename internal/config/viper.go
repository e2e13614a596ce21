package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	env     *viper.Viper
	envOnce sync.Once
)

// Env returns the process-wide viper instance backed by environment variables.
func Env() *viper.Viper {
	envOnce.Do(func() {
		env = newEnv()
	})
	return env
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "bizsim")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":8080")

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Africa/Monrovia")

	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini")
	v.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001")
	v.SetDefault("LLM_REQUEST_TIMEOUT", "30s")
	v.SetDefault("LLM_MAX_RETRIES", 2)
	v.SetDefault("LLM_RATE_LIMIT_RPS", 5)
	v.SetDefault("LLM_RATE_LIMIT_BURST", 10)

	v.SetDefault("SIM_MAX_ATTEMPTS", 5)
	v.SetDefault("SIM_GENERATION_BUDGET", "60s")
	v.SetDefault("SIM_RETRY_BASE_DELAY", "250ms")
	v.SetDefault("SIM_RETRY_MAX_DELAY", "4s")
	v.SetDefault("SCENARIO_POOL_SIZE", 20)
	v.SetDefault("SCENARIO_POOL_TTL", "720h")

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SOCIAL_PROOF_TTL", "5m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "logs/app.log")
	return v
}
