// Package config loads devconsole settings from an optional YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the settings shared by the console and the agent.
type Config struct {
	AgentURL              string `yaml:"agent_url"`
	ListenAddr            string `yaml:"listen_addr"`
	MaxHistoryItems       int    `yaml:"max_history_items"`
	ExecuteTimeoutSeconds int    `yaml:"execute_timeout_seconds"`
	CatalogTimeoutSeconds int    `yaml:"catalog_timeout_seconds"`
	ExportDir             string `yaml:"export_dir"`
	AltScreen             bool   `yaml:"alt_screen"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		AgentURL:              "http://127.0.0.1:8470",
		ListenAddr:            "127.0.0.1:8470",
		MaxHistoryItems:       50,
		ExecuteTimeoutSeconds: 30,
		CatalogTimeoutSeconds: 5,
		ExportDir:             ".",
		AltScreen:             true,
	}
}

func (c Config) ExecuteTimeout() time.Duration {
	return time.Duration(c.ExecuteTimeoutSeconds) * time.Second
}

func (c Config) CatalogTimeout() time.Duration {
	return time.Duration(c.CatalogTimeoutSeconds) * time.Second
}

// Load reads path if it exists, layers it over the defaults, then applies
// DEVCONSOLE_* environment overrides. An empty path skips the file step.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.AgentURL = envOr("DEVCONSOLE_AGENT_URL", cfg.AgentURL)
	cfg.ListenAddr = envOr("DEVCONSOLE_LISTEN_ADDR", cfg.ListenAddr)
	cfg.MaxHistoryItems = envOrInt("DEVCONSOLE_MAX_HISTORY", cfg.MaxHistoryItems)
	cfg.ExportDir = envOr("DEVCONSOLE_EXPORT_DIR", cfg.ExportDir)
	if cfg.MaxHistoryItems < 1 {
		return cfg, fmt.Errorf("max_history_items must be at least 1, got %d", cfg.MaxHistoryItems)
	}
	if cfg.ExecuteTimeoutSeconds <= 0 {
		cfg.ExecuteTimeoutSeconds = Default().ExecuteTimeoutSeconds
	}
	if cfg.CatalogTimeoutSeconds <= 0 {
		cfg.CatalogTimeoutSeconds = Default().CatalogTimeoutSeconds
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
