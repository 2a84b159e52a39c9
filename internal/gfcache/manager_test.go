// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfcache

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/daveblack/gurufocus-go/internal/gfmodels"
)

func TestManager_MissThenSetThenHit(t *testing.T) {
	backend := openTestBackend(t, 1<<20)
	m := NewManager(backend)
	ctx := context.Background()

	fp := gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL")

	if _, ok := m.Get(ctx, fp, false); ok {
		t.Fatal("expected initial miss")
	}

	m.Set(ctx, fp, []byte(`{"company":"Apple"}`), 0)

	got, ok := m.Get(ctx, fp, false)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != `{"company":"Apple"}` {
		t.Errorf("got %q", got)
	}

	stats := m.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got hits=%d misses=%d", stats.Hits, stats.Misses)
	}
}

func TestManager_BypassForcesMissWithoutDeletingEntry(t *testing.T) {
	backend := openTestBackend(t, 1<<20)
	m := NewManager(backend)
	ctx := context.Background()
	fp := gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL")

	m.Set(ctx, fp, []byte("v1"), 0)

	if _, ok := m.Get(ctx, fp, true); ok {
		t.Fatal("expected bypass to force a miss")
	}

	got, ok := m.Get(ctx, fp, false)
	if !ok || string(got) != "v1" {
		t.Fatal("expected the stored entry to survive a bypassed read")
	}
}

func TestManager_UsesCategoryPolicyTTLWhenNoOverride(t *testing.T) {
	backend := openTestBackend(t, 1<<20)
	m := NewManager(backend)
	ctx := context.Background()
	fp := gfmodels.NewFingerprint(gfmodels.CategoryQuote, "AAPL")

	m.Set(ctx, fp, []byte("v"), 0)

	// Quote's policy TTL is 15 minutes; with no override the stored
	// envelope's expiry must sit that far from now.
	policy, ok := gfmodels.PolicyFor(gfmodels.CategoryQuote)
	if !ok || policy.TTL != 15*time.Minute {
		t.Fatalf("expected quote category TTL of 15m, got %v (recognized=%v)", policy.TTL, ok)
	}

	var entry storedEntry
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fp.Key()))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error { return json.Unmarshal(val, &entry) })
	})
	if err != nil {
		t.Fatalf("reading stored entry: %v", err)
	}
	want := time.Now().Add(policy.TTL).Unix()
	if entry.ExpiresAt < want-5 || entry.ExpiresAt > want+5 {
		t.Errorf("stored expiry %d, want about %d (now + quote policy TTL)", entry.ExpiresAt, want)
	}
}

func TestManager_SetWithTTLOverride(t *testing.T) {
	backend := openTestBackend(t, 1<<20)
	m := NewManager(backend)
	ctx := context.Background()
	fp := gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL")

	m.Set(ctx, fp, []byte("v"), time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	if _, ok := m.Get(ctx, fp, false); ok {
		t.Fatal("expected entry written with a short TTL override to have expired")
	}
}

func TestManager_InvalidateSymbolUppercasesAndMatchesAnyCategory(t *testing.T) {
	backend := openTestBackend(t, 1<<20)
	m := NewManager(backend)
	ctx := context.Background()

	m.Set(ctx, gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL"), []byte("1"), 0)
	m.Set(ctx, gfmodels.NewFingerprint(gfmodels.CategoryFinancials, "AAPL", "annual"), []byte("2"), 0)
	m.Set(ctx, gfmodels.NewFingerprint(gfmodels.CategorySummary, "MSFT"), []byte("3"), 0)

	count := m.InvalidateSymbol(ctx, "aapl")
	if count != 2 {
		t.Fatalf("expected 2 entries invalidated for aapl (case-insensitive symbol), got %d", count)
	}

	if _, ok := m.Get(ctx, gfmodels.NewFingerprint(gfmodels.CategorySummary, "MSFT"), false); !ok {
		t.Error("expected unrelated symbol's entry to survive invalidation")
	}
}

func TestManager_InvalidateCategory(t *testing.T) {
	backend := openTestBackend(t, 1<<20)
	m := NewManager(backend)
	ctx := context.Background()

	m.Set(ctx, gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL"), []byte("1"), 0)
	m.Set(ctx, gfmodels.NewFingerprint(gfmodels.CategorySummary, "MSFT"), []byte("2"), 0)
	m.Set(ctx, gfmodels.NewFingerprint(gfmodels.CategoryFinancials, "AAPL"), []byte("3"), 0)

	count := m.InvalidateCategory(ctx, gfmodels.CategorySummary)
	if count != 2 {
		t.Fatalf("expected 2 summary entries invalidated, got %d", count)
	}
	if _, ok := m.Get(ctx, gfmodels.NewFingerprint(gfmodels.CategoryFinancials, "AAPL"), false); !ok {
		t.Error("expected the financials entry to be untouched by a summary invalidation")
	}
}

func TestManager_ClearResetsStatsAndBackend(t *testing.T) {
	backend := openTestBackend(t, 1<<20)
	m := NewManager(backend)
	ctx := context.Background()
	fp := gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL")

	m.Set(ctx, fp, []byte("v"), 0)
	m.Get(ctx, fp, false)
	m.Get(ctx, gfmodels.NewFingerprint(gfmodels.CategorySummary, "NOPE"), false)

	m.Clear(ctx)

	stats := m.Stats()
	if stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("expected stats reset after Clear, got hits=%d misses=%d", stats.Hits, stats.Misses)
	}
	if _, ok := m.Get(ctx, fp, false); ok {
		t.Error("expected entries to be gone after Clear")
	}
}

func TestFingerprint_KeyIsStableAcrossInvocations(t *testing.T) {
	fp1 := gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL")
	fp2 := gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL")
	if fp1.Key() != fp2.Key() {
		t.Errorf("expected equal-argument fingerprints to produce the same key, got %q vs %q", fp1.Key(), fp2.Key())
	}
	if fp1.Key() != "summary:AAPL" {
		t.Errorf("expected key %q, got %q", "summary:AAPL", fp1.Key())
	}
}

func TestNullManager_AlwaysMissesAndNoOps(t *testing.T) {
	m := NewNullManager()
	ctx := context.Background()
	fp := gfmodels.NewFingerprint(gfmodels.CategorySummary, "AAPL")

	if m.Enabled() {
		t.Fatal("expected NullManager.Enabled to be false")
	}

	m.Set(ctx, fp, []byte("v"), 0)
	if _, ok := m.Get(ctx, fp, false); ok {
		t.Fatal("expected NullManager to never hit, even right after Set")
	}
	if m.InvalidateSymbol(ctx, "AAPL") != 0 {
		t.Error("expected NullManager.InvalidateSymbol to return 0")
	}
	if err := m.Close(); err != nil {
		t.Errorf("expected NullManager.Close to never error, got %v", err)
	}
}
