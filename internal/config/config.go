// Package config loads the engine's runtime configuration from JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// Config holds the engine's runtime configuration.
type Config struct {
	DBPath             string `json:"db_path"`
	ListenAddr         string `json:"listen_addr"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute"`
	MaxQuestionLen     int    `json:"max_question_len"`
	CacheSize          int    `json:"cache_size"`
	HistoryEnabled     *bool  `json:"history_enabled"`
}

// Load reads a JSON config file, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{DBPath: "tutor.db"}
	cfg.applyDefaults()
	return cfg
}

// History reports whether answered questions should be persisted.
// Enabled unless the config says otherwise.
func (c *Config) History() bool {
	return c.HistoryEnabled == nil || *c.HistoryEnabled
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":9600"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if c.MaxQuestionLen == 0 {
		c.MaxQuestionLen = 2000
	}
	if c.CacheSize == 0 {
		c.CacheSize = 256
	}
}

func (c *Config) validate() error {
	var problems []string

	if c.DBPath == "" {
		problems = append(problems, "db_path is required")
	}
	if c.RateLimitPerMinute < 0 {
		problems = append(problems, "rate_limit_per_minute must not be negative")
	}
	if c.MaxQuestionLen < 0 {
		problems = append(problems, "max_question_len must not be negative")
	}
	if c.CacheSize < 0 {
		problems = append(problems, "cache_size must not be negative")
	}

	if len(problems) > 0 {
		return &domain.EngineError{
			Code:    domain.ErrConfigInvalid.Code,
			Message: fmt.Sprintf("%s: %v", domain.ErrConfigInvalid.Message, problems),
		}
	}
	return nil
}
