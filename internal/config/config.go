// Package config defines the flowdeck configuration, its defaults, and
// validation. Configuration is loaded through viper from a YAML file,
// environment variables (FLOWDECK_ prefix), and flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete flowdeck configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Page    PageConfig    `mapstructure:"page"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig describes how to reach the remote flow service
type ServerConfig struct {
	// URL is the base URL of the flow service
	URL string `mapstructure:"url"`
	// Token is an optional bearer token attached to every request
	Token string `mapstructure:"token"`
	// Timeout is the per-request timeout
	Timeout time.Duration `mapstructure:"timeout"`
}

// PageConfig controls the instance page behavior
type PageConfig struct {
	// DetailFailurePolicy controls what happens when a single detail
	// fetch fails: "annotate" shows a per-row error (default), "skip"
	// silently drops the row
	DetailFailurePolicy string `mapstructure:"detail_failure_policy"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is the directory the log file is written to; empty means
	// stderr (only sensible outside the TUI)
	Dir string `mapstructure:"dir"`
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "http://localhost:8090",
			Timeout: 30 * time.Second,
		},
		Page: PageConfig{
			DetailFailurePolicy: "annotate",
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   filepath.Join(ConfigDir(), "logs"),
		},
	}
}

// SetDefaults registers the default values with viper so they're available
// even without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("server.url", defaults.Server.URL)
	viper.SetDefault("server.token", defaults.Server.Token)
	viper.SetDefault("server.timeout", defaults.Server.Timeout)

	viper.SetDefault("page.detail_failure_policy", defaults.Page.DetailFailurePolicy)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals the current viper state into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the flowdeck configuration directory.
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flowdeck")
	}
	// Fall back to ~/.config/flowdeck
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flowdeck"
	}
	return filepath.Join(home, ".config", "flowdeck")
}
