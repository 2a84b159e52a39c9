// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfconfig

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the environment-variable prefix for every recognized
// option, e.g. GURUFOCUS_API_TOKEN.
const EnvPrefix = "GURUFOCUS_"

// ConfigPathEnvVar overrides the config-file search with an explicit path.
const ConfigPathEnvVar = "GURUFOCUS_CONFIG_PATH"

// DefaultConfigPaths are searched, in order, when ConfigPathEnvVar is unset.
var DefaultConfigPaths = []string{
	"gurufocus.yaml",
	"gurufocus.yml",
	"/etc/gurufocus/config.yaml",
}

// flatConfig mirrors the option names in the configuration table
// one-for-one; koanf decodes into this flat shape because the
// GURUFOCUS_ environment variables are themselves flat
// (GURUFOCUS_CACHE_SIZE_LIMIT_BYTES maps to the one key
// cache_size_limit_bytes, not to a size_limit_bytes key nested under a
// "cache" group), then Load regroups it into Config's
// nested sections for readability at call sites.
type flatConfig struct {
	APIToken            string  `koanf:"api_token"`
	BaseURL             string  `koanf:"base_url"`
	TimeoutSeconds      float64 `koanf:"timeout_seconds"`
	MaxRetries          int     `koanf:"max_retries"`
	RetryDelaySeconds   float64 `koanf:"retry_delay_seconds"`
	CacheEnabled        bool    `koanf:"cache_enabled"`
	CacheDir            string  `koanf:"cache_dir"`
	CacheSizeLimitBytes int64   `koanf:"cache_size_limit_bytes"`
	RateLimitEnabled    bool    `koanf:"rate_limit_enabled"`
	RateLimitRPM        float64 `koanf:"rate_limit_rpm"`
	RateLimitDaily      int     `koanf:"rate_limit_daily"`
	RateLimitBurst      int     `koanf:"rate_limit_burst"`
	UsageSyncSeconds    float64 `koanf:"usage_sync_interval_seconds"`
	LogLevel            string  `koanf:"log_level"`
	LogFormat           string  `koanf:"log_format"`
}

func defaultFlat() *flatConfig {
	d := Default()
	return &flatConfig{
		APIToken:            d.Client.APIToken,
		BaseURL:             d.Client.BaseURL,
		TimeoutSeconds:      d.Client.Timeout.Seconds(),
		MaxRetries:          d.Client.MaxRetries,
		RetryDelaySeconds:   d.Client.RetryDelay.Seconds(),
		CacheEnabled:        d.Cache.Enabled,
		CacheDir:            d.Cache.Dir,
		CacheSizeLimitBytes: d.Cache.SizeLimitBytes,
		RateLimitEnabled:    d.RateLimit.Enabled,
		RateLimitRPM:        d.RateLimit.RPM,
		RateLimitDaily:      d.RateLimit.Daily,
		RateLimitBurst:      d.RateLimit.Burst,
		UsageSyncSeconds:    d.RateLimit.UsageSyncInterval.Seconds(),
		LogLevel:            d.Logging.Level,
		LogFormat:           d.Logging.Format,
	}
}

func (f *flatConfig) toConfig() *Config {
	return &Config{
		Client: ClientConfig{
			APIToken:   f.APIToken,
			BaseURL:    f.BaseURL,
			Timeout:    time.Duration(f.TimeoutSeconds * float64(time.Second)),
			MaxRetries: f.MaxRetries,
			RetryDelay: time.Duration(f.RetryDelaySeconds * float64(time.Second)),
		},
		Cache: CacheConfig{
			Enabled:        f.CacheEnabled,
			Dir:            f.CacheDir,
			SizeLimitBytes: f.CacheSizeLimitBytes,
		},
		RateLimit: RateLimitConfig{
			Enabled:           f.RateLimitEnabled,
			RPM:               f.RateLimitRPM,
			Daily:             f.RateLimitDaily,
			Burst:             f.RateLimitBurst,
			UsageSyncInterval: time.Duration(f.UsageSyncSeconds * float64(time.Second)),
		},
		Logging: LoggingConfig{
			Level:  f.LogLevel,
			Format: f.LogFormat,
		},
	}
}

// Load resolves configuration by layering, in increasing priority:
// compiled-in defaults, an optional YAML file, then GURUFOCUS_-prefixed
// environment variables. The result is validated before being returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultFlat(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	var flat flatConfig
	if err := k.Unmarshal("", &flat); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	cfg := flat.toConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
