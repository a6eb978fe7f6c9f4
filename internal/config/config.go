package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the global configuration file
// (~/.config/seasonsort/config.yml)
type GlobalConfig struct {
	Formats []string    `yaml:"formats"`
	API     APIConfig   `yaml:"api"`
	Cache   CacheConfig `yaml:"cache"`
}

// APIConfig holds TVDB connection settings
type APIConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	// Requests per second against the API; 0 means the built-in default.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
}

// CacheConfig holds lookup cache settings
type CacheConfig struct {
	// TTLDays is how long cached lookups stay valid.
	TTLDays int `yaml:"ttl_days,omitempty"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() GlobalConfig {
	return GlobalConfig{
		Formats: []string{
			"mkv", "mp4", "avi", "m4v", "mov", "wmv", "flv", "webm",
			"ts", "m2ts", "mpg", "mpeg",
		},
		API: APIConfig{
			BaseURL:   "https://api4.thetvdb.com/v4",
			RateLimit: 2,
		},
		Cache: CacheConfig{
			TTLDays: 14,
		},
	}
}

// Dir returns the global configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "seasonsort"), nil
}

// Load reads the config file at path, filling unset fields from Defaults.
// A missing file is not an error; defaults are returned as-is.
func Load(path string) (GlobalConfig, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	// Partial files fall back field by field.
	defaults := Defaults()
	if len(cfg.Formats) == 0 {
		cfg.Formats = defaults.Formats
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaults.API.BaseURL
	}
	if cfg.API.RateLimit <= 0 {
		cfg.API.RateLimit = defaults.API.RateLimit
	}
	if cfg.Cache.TTLDays <= 0 {
		cfg.Cache.TTLDays = defaults.Cache.TTLDays
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(path string, cfg GlobalConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
