// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfconfig resolves client configuration from defaults, an
// optional YAML file, and GURUFOCUS_-prefixed environment variables,
// layered with github.com/knadh/koanf/v2 the way
// internal/config/koanf.go layers cartographus's configuration.
package gfconfig

import "time"

// ClientConfig holds GuruFocus HTTP client settings.
type ClientConfig struct {
	APIToken    string        `koanf:"api_token"`
	BaseURL     string        `koanf:"base_url"`
	Timeout     time.Duration `koanf:"timeout_seconds"`
	MaxRetries  int           `koanf:"max_retries"`
	RetryDelay  time.Duration `koanf:"retry_delay_seconds"`
}

// CacheConfig holds persistent-cache settings.
type CacheConfig struct {
	Enabled       bool  `koanf:"cache_enabled"`
	Dir           string `koanf:"cache_dir"`
	SizeLimitBytes int64 `koanf:"cache_size_limit_bytes"`
}

// RateLimitConfig holds token-bucket settings.
type RateLimitConfig struct {
	Enabled bool    `koanf:"rate_limit_enabled"`
	RPM     float64 `koanf:"rate_limit_rpm"`
	Daily   int     `koanf:"rate_limit_daily"`
	Burst   int     `koanf:"rate_limit_burst"`

	// UsageSyncInterval is the minimum time between authoritative
	// account-usage reads the endpoint layer honors; the usage tracker
	// decrements locally on every request between syncs.
	UsageSyncInterval time.Duration `koanf:"usage_sync_interval_seconds"`
}

// LoggingConfig holds observability-collaborator settings.
type LoggingConfig struct {
	Level  string `koanf:"log_level"`
	Format string `koanf:"log_format"`
}

// Config is the full, resolved configuration.
type Config struct {
	Client    ClientConfig    `koanf:"client"`
	Cache     CacheConfig     `koanf:"cache"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// Default returns the configuration with every documented default
// applied; APIToken is left empty and must be supplied.
func Default() *Config {
	return &Config{
		Client: ClientConfig{
			BaseURL:    "https://api.gurufocus.com/public/user",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RetryDelay: time.Second,
		},
		Cache: CacheConfig{
			Enabled:        true,
			Dir:            ".cache/gurufocus",
			SizeLimitBytes: 1 << 30,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RPM:               10,
			Daily:             0,
			Burst:             5,
			UsageSyncInterval: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
