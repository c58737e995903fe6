package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Locale   string `yaml:"locale"`
	Currency string `yaml:"currency"`
	NoColors bool   `yaml:"no_colors"`
	Proxy    string `yaml:"proxy"`
	History  struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"history"`
}

// DefaultPath returns the config file location, honoring STK_CONFIG.
func DefaultPath() string {
	if v := os.Getenv("STK_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stk", "config.yaml")
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; every key has a default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STK_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("STK_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("STK_NO_COLORS"); v == "1" || v == "true" {
		cfg.NoColors = true
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("STK_HISTORY_DB"); v != "" {
		cfg.History.SQLitePath = v
	}

	// Defaults
	if cfg.Locale == "" {
		cfg.Locale = "en-US"
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}

	return cfg, nil
}
