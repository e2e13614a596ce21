package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := newEnv()

	app := newAppConfig(v)
	assert.Equal(t, "bizsim", app.Name)
	assert.Equal(t, ":8080", app.Port)
	assert.False(t, app.IsProduction())

	sim := newSimulationConfig(v)
	assert.Equal(t, 5, sim.MaxAttempts)
	assert.Equal(t, 60*time.Second, sim.GenerationBudget)
	assert.Equal(t, 250*time.Millisecond, sim.RetryBaseDelay)
	assert.Equal(t, 20, sim.PoolSize)
	assert.Equal(t, 720*time.Hour, sim.PoolTTL)

	llm := newLLMConfig(v)
	assert.Equal(t, "openai", llm.Provider)
	assert.Equal(t, "gpt-4o-mini", llm.OpenAIModel)
	assert.Equal(t, 30*time.Second, llm.RequestTimeout)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SIM_MAX_ATTEMPTS", "3")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	v := newEnv()
	assert.True(t, newAppConfig(v).IsProduction())

	db := newDBConfig(v)
	assert.True(t, db.Enabled())
	assert.Contains(t, db.DSN(), "host=db.internal")
	assert.Contains(t, db.DSN(), "sslmode=disable")

	assert.Equal(t, 3, newSimulationConfig(v).MaxAttempts)
	assert.True(t, newRedisConfig(v).Enabled())
}

func TestPreviewModeWithoutHost(t *testing.T) {
	t.Setenv("DB_HOST", "")
	assert.False(t, newDBConfig(newEnv()).Enabled())
}
