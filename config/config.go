package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ATM configuration
type Config struct {
	Store StoreConfig `json:"store" yaml:"store"`
	Log   LogConfig   `json:"log" yaml:"log"`
}

// StoreConfig selects the durable store backend
type StoreConfig struct {
	Type string `json:"type" yaml:"type"` // "flatfile" or "sqlite"
	Path string `json:"path" yaml:"path"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Store.Type != "flatfile" && c.Store.Type != "sqlite" {
		return fmt.Errorf("store.type must be 'flatfile' or 'sqlite'")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
// The defaults match the classic ATM behavior: a users.txt flat file in
// the working directory.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Type: "flatfile",
			Path: "users.txt",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
