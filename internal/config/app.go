package config

import (
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = newAppConfig(Env())
	})
	return appConfig
}

func newAppConfig(v *viper.Viper) *AppConfig {
	return &AppConfig{
		Name:    v.GetString("APP_NAME"),
		Env:     v.GetString("APP_ENV"),
		Port:    v.GetString("APP_PORT"),
		BaseURL: v.GetString("APP_URL"),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
