package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Env              string `mapstructure:"ENV"`
	DBPath           string `mapstructure:"HMS_DB_PATH"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	NarrationEnabled bool   `mapstructure:"NARRATION_ENABLED"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("HMS_DB_PATH", "hospital.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("NARRATION_ENABLED", false)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("HMS_DB_PATH")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("NARRATION_ENABLED")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBPath == "" {
		return nil, fmt.Errorf("HMS_DB_PATH must not be empty")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.LogLevel)
	}
	return nil
}
