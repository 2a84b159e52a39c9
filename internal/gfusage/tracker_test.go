// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfusage

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gfcache"
)

func TestTracker_UnknownUntilInitializedWithoutSnapshot(t *testing.T) {
	backend := newMemBackend()
	cache := gfcache.NewManager(backend)
	tr := NewTracker(cache, Config{})

	tr.Initialize(context.Background())

	if _, ok := tr.Remaining(); ok {
		t.Fatal("expected Remaining to be undefined before any sync")
	}

	tr.Decrement()
	if _, ok := tr.Remaining(); ok {
		t.Fatal("expected Decrement to be a no-op while Unknown")
	}
}

func TestTracker_SyncThenDecrementReducesRemaining(t *testing.T) {
	backend := newMemBackend()
	cache := gfcache.NewManager(backend)
	tr := NewTracker(cache, Config{})

	tr.Sync(context.Background(), 100)
	remaining, ok := tr.Remaining()
	if !ok || remaining != 100 {
		t.Fatalf("expected remaining=100 after sync, got %d ok=%v", remaining, ok)
	}

	tr.Decrement()
	tr.Decrement()
	remaining, ok = tr.Remaining()
	if !ok || remaining != 98 {
		t.Fatalf("expected remaining=98 after two decrements, got %d ok=%v", remaining, ok)
	}
}

func TestTracker_RemainingNeverGoesNegative(t *testing.T) {
	backend := newMemBackend()
	cache := gfcache.NewManager(backend)
	tr := NewTracker(cache, Config{})

	tr.Sync(context.Background(), 1)
	tr.Decrement()
	tr.Decrement()
	tr.Decrement()

	remaining, ok := tr.Remaining()
	if !ok || remaining != 0 {
		t.Fatalf("expected remaining to floor at 0, got %d ok=%v", remaining, ok)
	}
}

func TestTracker_SyncPersistsSnapshotAcrossInstances(t *testing.T) {
	backend := newMemBackend()
	cache := gfcache.NewManager(backend)

	first := NewTracker(cache, Config{})
	first.Sync(context.Background(), 42)
	first.Decrement()

	second := NewTracker(cache, Config{})
	second.Initialize(context.Background())

	remaining, ok := second.Remaining()
	if !ok || remaining != 42 {
		t.Fatalf("expected a fresh tracker to load the persisted snapshot (42, not locallyConsumed), got %d ok=%v", remaining, ok)
	}
}

func TestTracker_ShouldSync(t *testing.T) {
	backend := newMemBackend()
	cache := gfcache.NewManager(backend)
	tr := NewTracker(cache, Config{SyncInterval: 0}).(*tracker)

	if tr.ShouldSync() {
		t.Fatal("expected ShouldSync to be false when SyncInterval is zero (disabled)")
	}

	tr.cfg.SyncInterval = time.Millisecond
	tr.syncedAt = time.Now().Add(-time.Hour)
	if !tr.ShouldSync() {
		t.Fatal("expected ShouldSync to be true once the interval has elapsed")
	}
}

func TestTracker_CheckWarningThreshold(t *testing.T) {
	backend := newMemBackend()
	cache := gfcache.NewManager(backend)
	tr := NewTracker(cache, Config{DailyLimit: 100, WarnPercent: 10})

	tr.Sync(context.Background(), 50)
	if tr.CheckWarningThreshold() {
		t.Fatal("expected no warning at 50/100 remaining with a 10% threshold")
	}

	tr.Sync(context.Background(), 5)
	if !tr.CheckWarningThreshold() {
		t.Fatal("expected a warning once remaining falls below 10% of the daily limit")
	}
}

func TestNullTracker_AlwaysUndefinedAndNoOp(t *testing.T) {
	var n NullTracker
	n.Initialize(context.Background())
	n.Decrement()
	if _, ok := n.Remaining(); ok {
		t.Fatal("expected NullTracker.Remaining to always be undefined")
	}
	if n.ShouldSync() {
		t.Fatal("expected NullTracker.ShouldSync to always be false")
	}
	n.Sync(context.Background(), 10)
	if n.CheckWarningThreshold() {
		t.Fatal("expected NullTracker.CheckWarningThreshold to always be false")
	}
}

// memBackend is a minimal in-memory gfcache.Backend for tests that need
// a real Manager without touching disk, mirroring the memBackend used
// by the endpoint layer's tests.
type memBackend struct {
	entries map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{entries: make(map[string][]byte)}
}

func (m *memBackend) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *memBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.entries[key] = value
}

func (m *memBackend) Delete(ctx context.Context, key string) bool {
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok
}

func (m *memBackend) DeletePattern(ctx context.Context, glob string) int {
	count := 0
	for k := range m.entries {
		if ok, _ := path.Match(glob, k); ok {
			delete(m.entries, k)
			count++
		}
	}
	return count
}

func (m *memBackend) Exists(ctx context.Context, key string) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *memBackend) Clear(ctx context.Context) { m.entries = make(map[string][]byte) }

func (m *memBackend) Close() error { return nil }

func (m *memBackend) Stats() gfcache.Stats {
	return gfcache.Stats{ItemCount: len(m.entries)}
}
