// Package config loads the application configuration from an optional
// YAML file and the SQUARES_* environment variables.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration values. Environment variables win
// over the file, defaults apply when neither is set.
type Config struct {
	LogLevel  string `yaml:"log-level" env:"SQUARES_LOG_LEVEL" env-default:"info"`
	Game      string `yaml:"game" env:"SQUARES_GAME" env-default:"tic-tac-toe"`
	PlayerOne string `yaml:"player-one" env:"SQUARES_PLAYER_ONE" env-default:"user"`
	PlayerTwo string `yaml:"player-two" env:"SQUARES_PLAYER_TWO" env-default:"medium"`
	Seed      int64  `yaml:"seed" env:"SQUARES_SEED" env-default:"0"`
	Parallel  bool   `yaml:"parallel" env:"SQUARES_PARALLEL" env-default:"false"`
}

// Load reads the configuration. An empty path skips the file and reads
// the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("loading config file %q: %w", path, err)
	}

	return config, nil
}
