// Package config loads the server configuration from YAML and the
// environment via viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Workday  WorkdayConfig  `mapstructure:"workday"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
}

// ServerConfig represents the HTTP server and storage settings.
type ServerConfig struct {
	Port   int    `mapstructure:"port"`
	DBPath string `mapstructure:"db_path"` // ":memory:" for no persistence
}

// LogConfig represents logging settings.
type LogConfig struct {
	File  string `mapstructure:"file"` // empty = console
	Level string `mapstructure:"level"`
}

// WorkdayConfig represents the default work window, applied at startup
// when the store holds no window yet. Times are "HH:MM".
type WorkdayConfig struct {
	Start string `mapstructure:"start"`
	Stop  string `mapstructure:"stop"`
}

// HolidaysConfig represents holidays registered at startup.
type HolidaysConfig struct {
	Dates     []string `mapstructure:"dates"`     // "YYYY-MM-DD", one-time
	Recurring []string `mapstructure:"recurring"` // "MM-DD", every year
	Presets   []string `mapstructure:"presets"`   // named presets (see api/presets.go)
}

// Load loads configuration from file. A missing file is not an error
// when no explicit path was given; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.db_path", "workday.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("workday.start", "08:00")
	v.SetDefault("workday.stop", "16:00")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workdayd")
		v.AddConfigPath("/etc/workdayd")
	}

	v.SetEnvPrefix("WORKDAY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.DBPath == "" {
		return fmt.Errorf("server.db_path is required")
	}
	if (c.Workday.Start == "") != (c.Workday.Stop == "") {
		return fmt.Errorf("workday.start and workday.stop must be set together")
	}
	return nil
}
