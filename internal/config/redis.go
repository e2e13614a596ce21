package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	SocialProofTTL time.Duration
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		redisConfig = newRedisConfig(Env())
	})
	return redisConfig
}

func newRedisConfig(v *viper.Viper) *RedisConfig {
	return &RedisConfig{
		Addr:           v.GetString("REDIS_ADDR"),
		Password:       v.GetString("REDIS_PASSWORD"),
		DB:             v.GetInt("REDIS_DB"),
		SocialProofTTL: v.GetDuration("SOCIAL_PROOF_TTL"),
	}
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}
