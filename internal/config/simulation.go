package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// SimulationConfig tunes scenario generation and the generated scenario pool.
type SimulationConfig struct {
	MaxAttempts      int
	GenerationBudget time.Duration
	RetryBaseDelay   time.Duration
	RetryMaxDelay    time.Duration
	PoolSize         int
	PoolTTL          time.Duration
}

var (
	simulationConfig *SimulationConfig
	simulationOnce   sync.Once
)

func LoadSimulationConfig() *SimulationConfig {
	simulationOnce.Do(func() {
		simulationConfig = newSimulationConfig(Env())
	})
	return simulationConfig
}

func newSimulationConfig(v *viper.Viper) *SimulationConfig {
	return &SimulationConfig{
		MaxAttempts:      v.GetInt("SIM_MAX_ATTEMPTS"),
		GenerationBudget: v.GetDuration("SIM_GENERATION_BUDGET"),
		RetryBaseDelay:   v.GetDuration("SIM_RETRY_BASE_DELAY"),
		RetryMaxDelay:    v.GetDuration("SIM_RETRY_MAX_DELAY"),
		PoolSize:         v.GetInt("SCENARIO_POOL_SIZE"),
		PoolTTL:          v.GetDuration("SCENARIO_POOL_TTL"),
	}
}
