package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"ivcal/internal/logger"
	internalhttp "ivcal/internal/server/http"
	"ivcal/internal/source"
)

const envConfigPrefix = "$env:"

type Config struct {
	Logger logger.Config
	Source source.Config
	Server internalhttp.Config
}

// NewConfig loads the config file when present and falls back to defaults
// otherwise. Values of the form "$env:NAME" are bound to the environment.
func NewConfig(configFile string) (Config, error) {
	config := Config{}

	viper.SetDefault("logger.level", "WARN")
	viper.SetDefault("logger.file", "")
	viper.SetDefault("source.url", "http://127.0.0.1:8005/events")
	viper.SetDefault("source.timeout", "15s")
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", "8005")

	if _, err := os.Stat(configFile); err == nil {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return config, fmt.Errorf("failed to read config %q: %w", configFile, err)
		}
		for _, key := range viper.AllKeys() {
			env := viper.GetString(key)
			if strings.HasPrefix(env, envConfigPrefix) {
				if err := viper.BindEnv(key, env[len(envConfigPrefix):]); err != nil {
					return Config{}, fmt.Errorf("failed to prepare config: %w", err)
				}
			}
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	return config, nil
}
