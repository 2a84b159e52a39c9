// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfendpoints

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path"
	"testing"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gfcache"
	"github.com/daveblack/gurufocus-go/internal/gfclient"
	"github.com/daveblack/gurufocus-go/internal/gfconfig"
	"github.com/daveblack/gurufocus-go/internal/gfmodels/dto"
	"github.com/daveblack/gurufocus-go/internal/gfratelimit"
	"github.com/daveblack/gurufocus-go/internal/gfusage"
)

// memBackend is a minimal in-memory gfcache.Backend, enough to back a
// real gfcache.Manager and gfusage.Tracker in tests without touching disk.
type memBackend struct {
	entries map[string][]byte
}

func newMemBackend() *memBackend { return &memBackend{entries: map[string][]byte{}} }

func (m *memBackend) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.entries[key]
	return v, ok
}
func (m *memBackend) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	m.entries[key] = value
}
func (m *memBackend) Delete(_ context.Context, key string) bool {
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok
}
func (m *memBackend) DeletePattern(_ context.Context, glob string) int {
	count := 0
	for k := range m.entries {
		if ok, _ := path.Match(glob, k); ok {
			delete(m.entries, k)
			count++
		}
	}
	return count
}
func (m *memBackend) Exists(_ context.Context, key string) bool {
	_, ok := m.entries[key]
	return ok
}
func (m *memBackend) Clear(_ context.Context) { m.entries = map[string][]byte{} }
func (m *memBackend) Close() error            { return nil }
func (m *memBackend) Stats() gfcache.Stats    { return gfcache.Stats{ItemCount: len(m.entries)} }

func newTestEndpoints(t *testing.T, handler http.HandlerFunc) *Endpoints {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := gfconfig.ClientConfig{
		APIToken:   "tok",
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		MaxRetries: 1,
		RetryDelay: 5 * time.Millisecond,
	}
	pipeline := gfclient.NewPipeline(cfg, gfratelimit.NullLimiter{}, gfusage.NullTracker{})
	client := &gfclient.Client{Pipeline: pipeline, Cache: gfcache.NewNullManager()}
	return New(client)
}

func TestEndpoints_SummaryParsesNestedSections(t *testing.T) {
	body := `{
		"summary": {
			"general": {"company": "Apple Inc", "price": "190.50", "sector": "Technology", "gf_score": "92"},
			"chart": {"GF Value": "210.25"},
			"ratio": {"P/E(ttm)": {"value": "29.4", "status": "1"}},
			"company_data": {"mktcap": "3000000", "pe": "29.4"}
		}
	}`
	endpoints := newTestEndpoints(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tok/stock/AAPL/summary" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(body))
	})

	summary, err := endpoints.Summary(context.Background(), "aapl", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.General.CompanyName != "Apple Inc" {
		t.Errorf("got company name %q", summary.General.CompanyName)
	}
	if summary.Quality.GFScore != 92 {
		t.Errorf("got gf_score %d", summary.Quality.GFScore)
	}
	if summary.Ratios.PETTM == nil || summary.Ratios.PETTM.Value != 29.4 {
		t.Errorf("got pe_ttm %+v", summary.Ratios.PETTM)
	}
}

func TestEndpoints_GuruListStopsOnEmptyPage(t *testing.T) {
	calls := 0
	endpoints := newTestEndpoints(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		page := r.URL.Query().Get("page")
		if page == "1" {
			_, _ = w.Write([]byte(`{"current_page":1,"last_page":2,"gurus":[{"guru_id":"g1","name":"Guru One"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"current_page":2,"last_page":2,"gurus":[]}`))
	})

	it := endpoints.GuruList(false, 0)
	items, err := it.Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].GuruID != "g1" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if calls != 2 {
		t.Errorf("expected 2 page fetches, got %d", calls)
	}
}

func TestEndpoints_GuruListRespectsMaxPages(t *testing.T) {
	calls := 0
	endpoints := newTestEndpoints(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"current_page":1,"last_page":5,"gurus":[{"guru_id":"g1","name":"Guru One"}]}`))
	})

	it := endpoints.GuruList(false, 1)
	items, err := it.Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item from capped traversal, got %d", len(items))
	}
	if calls != 1 {
		t.Errorf("expected exactly 1 fetch under max_pages=1, got %d", calls)
	}
}

func TestEndpoints_APIUsageParsesAndSyncsTracker(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"API Usage": 158, "API Requests Remaining": 3842}`))
	}))
	t.Cleanup(server.Close)

	cfg := gfconfig.ClientConfig{APIToken: "tok", BaseURL: server.URL, Timeout: 2 * time.Second, MaxRetries: 1, RetryDelay: 5 * time.Millisecond}
	pipeline := gfclient.NewPipeline(cfg, gfratelimit.NullLimiter{}, gfusage.NullTracker{})
	cache := gfcache.NewManager(newMemBackend())
	usage := gfusage.NewTracker(cache, gfusage.Config{})
	client := &gfclient.Client{Pipeline: pipeline, Cache: cache, Usage: usage}
	endpoints := New(client)

	got, err := endpoints.APIUsage(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.APIUsage != 158 || got.APIRequestsRemaining != 3842 {
		t.Errorf("unexpected usage payload: %+v", got)
	}
	if gotPath != "/tok/api_usage" {
		t.Errorf("unexpected upstream path: %s", gotPath)
	}

	remaining, ok := usage.Remaining()
	if !ok || remaining != 3842 {
		t.Errorf("expected tracker synced to 3842 remaining, got remaining=%d ok=%v", remaining, ok)
	}
}

func TestEndpoints_ScreenerRejectsInvalidLimitWithoutCallingUpstream(t *testing.T) {
	called := false
	endpoints := newTestEndpoints(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{"stocks":[],"total_count":0}`))
	})

	req := dto.NewScreenerRequest()
	req.Limit = 0 // violates validate:"min=1"

	_, err := endpoints.Screener(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error for limit=0")
	}
	if called {
		t.Error("upstream should not be called when request validation fails")
	}
}
