// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfconfig

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and every
// numeric option is within its documented range.
func (c *Config) Validate() error {
	if err := c.validateClient(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateRateLimit(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateClient() error {
	if c.Client.APIToken == "" {
		return fmt.Errorf("GURUFOCUS_API_TOKEN is required")
	}
	if c.Client.BaseURL == "" {
		return fmt.Errorf("GURUFOCUS_BASE_URL must not be empty")
	}
	if c.Client.Timeout < time.Second || c.Client.Timeout > 300*time.Second {
		return fmt.Errorf("GURUFOCUS_TIMEOUT_SECONDS must be between 1 and 300")
	}
	if c.Client.MaxRetries < 0 || c.Client.MaxRetries > 10 {
		return fmt.Errorf("GURUFOCUS_MAX_RETRIES must be between 0 and 10")
	}
	if c.Client.RetryDelay < 100*time.Millisecond || c.Client.RetryDelay > 60*time.Second {
		return fmt.Errorf("GURUFOCUS_RETRY_DELAY_SECONDS must be between 0.1 and 60")
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.Dir == "" {
		return fmt.Errorf("GURUFOCUS_CACHE_DIR is required when GURUFOCUS_CACHE_ENABLED=true")
	}
	const minSizeLimit = 1 << 20 // 1 MiB
	if c.Cache.SizeLimitBytes < minSizeLimit {
		return fmt.Errorf("GURUFOCUS_CACHE_SIZE_LIMIT_BYTES must be at least 1048576 (1 MiB)")
	}
	return nil
}

func (c *Config) validateRateLimit() error {
	if !c.RateLimit.Enabled {
		return nil
	}
	if c.RateLimit.RPM < 0.1 || c.RateLimit.RPM > 1000 {
		return fmt.Errorf("GURUFOCUS_RATE_LIMIT_RPM must be between 0.1 and 1000")
	}
	if c.RateLimit.Daily < 0 {
		return fmt.Errorf("GURUFOCUS_RATE_LIMIT_DAILY must be non-negative (0 = unlimited)")
	}
	if c.RateLimit.Burst < 1 || c.RateLimit.Burst > 100 {
		return fmt.Errorf("GURUFOCUS_RATE_LIMIT_BURST must be between 1 and 100")
	}
	if c.RateLimit.UsageSyncInterval < 0 {
		return fmt.Errorf("GURUFOCUS_USAGE_SYNC_INTERVAL_SECONDS must be non-negative (0 disables periodic sync)")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{"console": true, "json": true}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("GURUFOCUS_LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("GURUFOCUS_LOG_FORMAT must be one of: console, json")
	}
	return nil
}
