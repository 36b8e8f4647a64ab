package server

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds the server's environment-driven settings
type Config struct {
	Port       int           `env:"PORT,default=8000"`
	ThinkDelay time.Duration `env:"OPPONENT_THINK_DELAY,default=1s"`
}

// ConfigFromEnv reads the configuration from the environment
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
