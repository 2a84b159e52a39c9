// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfcache

import (
	"context"
	"testing"
	"time"
)

func openTestBackend(t *testing.T, sizeCap int64) *BadgerBackend {
	t.Helper()
	b, err := OpenBadgerBackend(t.TempDir(), sizeCap)
	if err != nil {
		t.Fatalf("OpenBadgerBackend: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBadgerBackend_SetThenGetRoundTrips(t *testing.T) {
	b := openTestBackend(t, 1<<20)
	ctx := context.Background()

	b.Set(ctx, "k1", []byte("hello"), time.Hour)

	got, ok := b.Get(ctx, "k1")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestBadgerBackend_GetMissesAfterTTLExpires(t *testing.T) {
	b := openTestBackend(t, 1<<20)
	ctx := context.Background()

	b.Set(ctx, "k1", []byte("hello"), time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	if _, ok := b.Get(ctx, "k1"); ok {
		t.Fatal("expected miss once TTL has elapsed")
	}
}

func TestBadgerBackend_DeleteReportsPriorExistence(t *testing.T) {
	b := openTestBackend(t, 1<<20)
	ctx := context.Background()

	if b.Delete(ctx, "missing") {
		t.Error("expected Delete on an absent key to report false")
	}

	b.Set(ctx, "present", []byte("v"), time.Hour)
	if !b.Delete(ctx, "present") {
		t.Error("expected Delete on a present key to report true")
	}
	if _, ok := b.Get(ctx, "present"); ok {
		t.Error("expected key to be gone after Delete")
	}
}

func TestBadgerBackend_DeletePatternIsIdempotent(t *testing.T) {
	b := openTestBackend(t, 1<<20)
	ctx := context.Background()

	b.Set(ctx, "summary:AAPL", []byte("1"), time.Hour)
	b.Set(ctx, "summary:MSFT", []byte("2"), time.Hour)
	b.Set(ctx, "financials:AAPL", []byte("3"), time.Hour)

	count := b.DeletePattern(ctx, "summary:*")
	if count != 2 {
		t.Fatalf("expected 2 deletions, got %d", count)
	}
	if _, ok := b.Get(ctx, "financials:AAPL"); !ok {
		t.Error("expected unrelated key to survive pattern deletion")
	}

	if again := b.DeletePattern(ctx, "summary:*"); again != 0 {
		t.Errorf("expected second DeletePattern call to return 0, got %d", again)
	}
}

func TestBadgerBackend_ExistsRespectsTTL(t *testing.T) {
	b := openTestBackend(t, 1<<20)
	ctx := context.Background()

	b.Set(ctx, "k", []byte("v"), time.Hour)
	if !b.Exists(ctx, "k") {
		t.Error("expected Exists to be true for an unexpired key")
	}

	b.Set(ctx, "short", []byte("v"), time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	if b.Exists(ctx, "short") {
		t.Error("expected Exists to be false for an expired key")
	}
}

func TestBadgerBackend_ClearRemovesEverything(t *testing.T) {
	b := openTestBackend(t, 1<<20)
	ctx := context.Background()

	b.Set(ctx, "a", []byte("1"), time.Hour)
	b.Set(ctx, "b", []byte("2"), time.Hour)
	b.Clear(ctx)

	if _, ok := b.Get(ctx, "a"); ok {
		t.Error("expected a to be gone after Clear")
	}
	if stats := b.Stats(); stats.ItemCount != 0 {
		t.Errorf("expected 0 resident items after Clear, got %d", stats.ItemCount)
	}
}

func TestBadgerBackend_SizeCapEvictsLeastRecentlyUsed(t *testing.T) {
	// A 40-byte payload is stored as a 92-byte JSON envelope (base64
	// value plus expiry), so a 200-byte cap holds two entries and the
	// third insert forces an eviction of the least-recently-touched key.
	b := openTestBackend(t, 200)
	ctx := context.Background()

	payload := make([]byte, 40)
	b.Set(ctx, "k1", payload, time.Hour)
	b.Set(ctx, "k2", payload, time.Hour)
	// touch k1 so k2 becomes the least-recently-used entry
	b.Get(ctx, "k1")
	b.Set(ctx, "k3", payload, time.Hour)

	if _, ok := b.Get(ctx, "k2"); ok {
		t.Error("expected k2 (least recently used) to have been evicted")
	}
	if _, ok := b.Get(ctx, "k1"); !ok {
		t.Error("expected k1 (recently touched) to have survived eviction")
	}
	if _, ok := b.Get(ctx, "k3"); !ok {
		t.Error("expected k3 (just inserted) to have survived eviction")
	}

	stats := b.Stats()
	if stats.ResidentBytes > stats.SizeCapBytes {
		t.Errorf("resident bytes %d exceed cap %d", stats.ResidentBytes, stats.SizeCapBytes)
	}
}

func TestBadgerBackend_CloseIsIdempotent(t *testing.T) {
	b, err := OpenBadgerBackend(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("OpenBadgerBackend: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}
}

func TestBadgerBackend_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	b1, err := OpenBadgerBackend(dir, 1<<20)
	if err != nil {
		t.Fatalf("OpenBadgerBackend: %v", err)
	}
	b1.Set(ctx, "persisted", []byte("value"), time.Hour)
	if err := b1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b2, err := OpenBadgerBackend(dir, 1<<20)
	if err != nil {
		t.Fatalf("reopen OpenBadgerBackend: %v", err)
	}
	defer b2.Close()

	got, ok := b2.Get(ctx, "persisted")
	if !ok || string(got) != "value" {
		t.Fatalf("expected entry to survive restart, got ok=%v value=%q", ok, got)
	}
}
