// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfclient

import (
	"context"
	"testing"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gfconfig"
	"github.com/daveblack/gurufocus-go/internal/gfmodels"
	"github.com/daveblack/gurufocus-go/internal/gfratelimit"
	"github.com/daveblack/gurufocus-go/internal/gfusage"
)

func testConfig(dir string) *gfconfig.Config {
	cfg := gfconfig.Default()
	cfg.Client.APIToken = "tok"
	cfg.Cache.Dir = dir
	return cfg
}

func TestNew_CacheEnabledWiresRealBackendAndTracker(t *testing.T) {
	cfg := testConfig(t.TempDir())

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	if !client.Cache.Enabled() {
		t.Error("expected cache manager to be enabled")
	}
	if _, ok := client.Usage.(gfusage.NullTracker); ok {
		t.Error("expected a real usage tracker when caching is enabled")
	}
	if _, ok := client.Limiter.(gfratelimit.NullLimiter); ok {
		t.Error("expected a real rate limiter by default")
	}
}

func TestNew_CacheDisabledUsesNullCollaborators(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Cache.Enabled = false

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	if client.Cache.Enabled() {
		t.Error("expected a null cache manager when caching is disabled")
	}
	if _, ok := client.Usage.(gfusage.NullTracker); !ok {
		t.Error("expected a null usage tracker when caching is disabled")
	}
}

func TestNew_RateLimitDisabledUsesNullLimiter(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.RateLimit.Enabled = false

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	if _, ok := client.Limiter.(gfratelimit.NullLimiter); !ok {
		t.Errorf("expected NullLimiter when rate limiting disabled, got %T", client.Limiter)
	}
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	client, err := New(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}
}

func TestClient_ReenteringAfterClosePreservesCacheDirectory(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	fp := gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL")

	first, err := New(testConfig(dir))
	if err != nil {
		t.Fatalf("New (first): %v", err)
	}
	first.Cache.Set(ctx, fp, []byte("cached-value"), time.Hour)
	if err := first.Close(); err != nil {
		t.Fatalf("Close (first): %v", err)
	}

	second, err := New(testConfig(dir))
	if err != nil {
		t.Fatalf("New (second): %v", err)
	}
	defer second.Close()

	got, ok := second.Cache.Get(ctx, fp, false)
	if !ok || string(got) != "cached-value" {
		t.Fatalf("expected the persistent cache directory to survive Close/New, got ok=%v value=%q", ok, got)
	}
}
