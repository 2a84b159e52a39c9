// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfconfig

import (
	"testing"
	"time"
)

func TestDefault_MatchesDocumentedDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Client.BaseURL != "https://api.gurufocus.com/public/user" {
		t.Errorf("unexpected default base URL: %q", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.Client.Timeout)
	}
	if cfg.Client.MaxRetries != 3 {
		t.Errorf("unexpected default max retries: %d", cfg.Client.MaxRetries)
	}
	if cfg.Client.RetryDelay != time.Second {
		t.Errorf("unexpected default retry delay: %v", cfg.Client.RetryDelay)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != ".cache/gurufocus" || cfg.Cache.SizeLimitBytes != 1<<30 {
		t.Errorf("unexpected default cache config: %+v", cfg.Cache)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RPM != 10 || cfg.RateLimit.Daily != 0 || cfg.RateLimit.Burst != 5 {
		t.Errorf("unexpected default rate limit config: %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.UsageSyncInterval != 5*time.Minute {
		t.Errorf("unexpected default usage sync interval: %v", cfg.RateLimit.UsageSyncInterval)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("unexpected default logging config: %+v", cfg.Logging)
	}

	// Default() deliberately leaves APIToken empty; Validate must reject it.
	if err := cfg.Validate(); err == nil {
		t.Error("expected Validate to require an api_token")
	}
}

func TestValidate_RejectsOutOfRangeValues(t *testing.T) {
	base := func() *Config {
		c := Default()
		c.Client.APIToken = "tok"
		return c
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"timeout too low", func(c *Config) { c.Client.Timeout = 500 * time.Millisecond }},
		{"timeout too high", func(c *Config) { c.Client.Timeout = 301 * time.Second }},
		{"max retries negative", func(c *Config) { c.Client.MaxRetries = -1 }},
		{"max retries too high", func(c *Config) { c.Client.MaxRetries = 11 }},
		{"retry delay too low", func(c *Config) { c.Client.RetryDelay = 50 * time.Millisecond }},
		{"cache size below 1MiB", func(c *Config) { c.Cache.SizeLimitBytes = 1024 }},
		{"rate limit rpm too low", func(c *Config) { c.RateLimit.RPM = 0.01 }},
		{"rate limit rpm too high", func(c *Config) { c.RateLimit.RPM = 1001 }},
		{"rate limit daily negative", func(c *Config) { c.RateLimit.Daily = -1 }},
		{"rate limit burst zero", func(c *Config) { c.RateLimit.Burst = 0 }},
		{"usage sync interval negative", func(c *Config) { c.RateLimit.UsageSyncInterval = -time.Second }},
		{"log level invalid", func(c *Config) { c.Logging.Level = "verbose" }},
		{"log format invalid", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected Validate to reject: %s", tc.name)
			}
		})
	}
}

func TestValidate_CacheFieldsIgnoredWhenDisabled(t *testing.T) {
	cfg := Default()
	cfg.Client.APIToken = "tok"
	cfg.Cache.Enabled = false
	cfg.Cache.Dir = ""
	cfg.Cache.SizeLimitBytes = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected disabled cache to skip its own range checks, got: %v", err)
	}
}

func TestValidate_RateLimitFieldsIgnoredWhenDisabled(t *testing.T) {
	cfg := Default()
	cfg.Client.APIToken = "tok"
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.RPM = -5
	cfg.RateLimit.Burst = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected disabled rate limiting to skip its own range checks, got: %v", err)
	}
}

func TestValidate_AcceptsDefaultsOnceTokenIsSet(t *testing.T) {
	cfg := Default()
	cfg.Client.APIToken = "tok"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected documented defaults plus a token to validate cleanly, got: %v", err)
	}
}

func TestLoad_ResolvesFromEnvironmentOverDefaults(t *testing.T) {
	t.Setenv("GURUFOCUS_API_TOKEN", "env-token")
	t.Setenv("GURUFOCUS_MAX_RETRIES", "5")
	t.Setenv("GURUFOCUS_RATE_LIMIT_RPM", "42")
	t.Setenv("GURUFOCUS_LOG_FORMAT", "json")
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Client.APIToken != "env-token" {
		t.Errorf("expected api token from environment, got %q", cfg.Client.APIToken)
	}
	if cfg.Client.MaxRetries != 5 {
		t.Errorf("expected max retries overridden from environment, got %d", cfg.Client.MaxRetries)
	}
	if cfg.RateLimit.RPM != 42 {
		t.Errorf("expected rate limit rpm overridden from environment, got %v", cfg.RateLimit.RPM)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format overridden from environment, got %q", cfg.Logging.Format)
	}
	// Untouched options should still carry their compiled-in defaults.
	if cfg.Client.BaseURL != "https://api.gurufocus.com/public/user" {
		t.Errorf("expected base URL to retain its default, got %q", cfg.Client.BaseURL)
	}
}

func TestLoad_FailsValidationWithoutAPIToken(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	if _, err := Load(); err == nil {
		t.Error("expected Load to fail validation when no api_token is set anywhere")
	}
}
