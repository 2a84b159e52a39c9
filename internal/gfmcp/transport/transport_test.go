// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gfcache"
	"github.com/daveblack/gurufocus-go/internal/gfclient"
	"github.com/daveblack/gurufocus-go/internal/gfconfig"
	"github.com/daveblack/gurufocus-go/internal/gfendpoints"
	"github.com/daveblack/gurufocus-go/internal/gfmcp"
	"github.com/daveblack/gurufocus-go/internal/gfratelimit"
	"github.com/daveblack/gurufocus-go/internal/gfusage"
)

func newTestServer(t *testing.T) *gfmcp.Server {
	t.Helper()
	cfg := gfconfig.ClientConfig{
		APIToken:   "tok",
		BaseURL:    "http://example.invalid",
		Timeout:    time.Second,
		MaxRetries: 0,
		RetryDelay: time.Millisecond,
	}
	pipeline := gfclient.NewPipeline(cfg, gfratelimit.NullLimiter{}, gfusage.NullTracker{})
	client := &gfclient.Client{Pipeline: pipeline, Cache: gfcache.NewNullManager()}
	return gfmcp.New(gfendpoints.New(client))
}

func TestNew_HealthzReturnsOK(t *testing.T) {
	srv := newTestServer(t)
	handler := New(srv, DefaultConfig())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestNew_CORSAllowsConfiguredOrigin(t *testing.T) {
	srv := newTestServer(t)
	cfg := DefaultConfig()
	cfg.AllowedOrigins = []string{"https://agent.example.com"}
	handler := New(srv, cfg)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://agent.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://agent.example.com" {
		t.Errorf("got Access-Control-Allow-Origin %q, want the configured origin", got)
	}
}
