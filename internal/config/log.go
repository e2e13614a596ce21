package config

import "sync"

type LogConfig struct {
	Level string
	File  string
}

var (
	logConfig *LogConfig
	logOnce   sync.Once
)

func LoadLogConfig() *LogConfig {
	logOnce.Do(func() {
		logConfig = &LogConfig{
			Level: Env().GetString("LOG_LEVEL"),
			File:  Env().GetString("LOG_FILE"),
		}
	})
	return logConfig
}
