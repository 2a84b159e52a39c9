// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gfmodels"
)

func TestTokenBucket_StartsFullAndBoundedByCapacity(t *testing.T) {
	b := New(Config{RequestsPerMinute: 60, BurstCapacity: 5})
	stats := b.Stats()
	if stats.Tokens != 5 {
		t.Fatalf("expected bucket to start full at 5 tokens, got %v", stats.Tokens)
	}

	for i := 0; i < 5; i++ {
		if !b.CanAcquire() {
			t.Fatalf("expected token %d to be available", i)
		}
		ok, err := b.Acquire(context.Background(), 0)
		if err != nil || !ok {
			t.Fatalf("acquire %d failed: ok=%v err=%v", i, ok, err)
		}
	}

	stats = b.Stats()
	if stats.Tokens < 0 || stats.Tokens > float64(stats.BurstCapacity) {
		t.Fatalf("tokens %v out of [0, capacity] bounds", stats.Tokens)
	}
}

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	b := New(Config{RequestsPerMinute: 60, BurstCapacity: 1}).(*tokenBucket)

	ok, err := b.Acquire(context.Background(), 0)
	if err != nil || !ok {
		t.Fatalf("expected first acquire to succeed: ok=%v err=%v", ok, err)
	}
	if b.CanAcquire() {
		t.Fatalf("expected bucket to be empty immediately after draining it")
	}

	// Backdate lastUpdate to simulate one second of elapsed wall time at
	// 60 rpm (1 token/sec), without sleeping in the test.
	b.mu.Lock()
	b.lastUpdate = b.lastUpdate.Add(-1100 * time.Millisecond)
	b.mu.Unlock()

	if !b.CanAcquire() {
		t.Fatalf("expected a token to have refilled after simulated elapsed time")
	}
}

func TestTokenBucket_DailyCapBlocksFurtherAcquisition(t *testing.T) {
	b := New(Config{RequestsPerMinute: 600, BurstCapacity: 10, DailyCap: 2})

	for i := 0; i < 2; i++ {
		ok, err := b.Acquire(context.Background(), 0)
		if err != nil || !ok {
			t.Fatalf("expected acquire %d within daily cap to succeed", i)
		}
	}

	ok, err := b.Acquire(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected acquire beyond daily cap to fail")
	}
}

func TestTokenBucket_AcquireOrRaiseReturnsRateLimitedWithRetryAfter(t *testing.T) {
	b := New(Config{RequestsPerMinute: 60, BurstCapacity: 1})

	if err := b.AcquireOrRaise(context.Background(), 0); err != nil {
		t.Fatalf("expected first call to succeed: %v", err)
	}

	// A zero timeout sets no deadline and would wait for the refill, so
	// bound the wait well below the one-second refill interval.
	err := b.AcquireOrRaise(context.Background(), 10*time.Millisecond)
	var clientErr *gfmodels.ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *gfmodels.ClientError, got %T (%v)", err, err)
	}
	if clientErr.Kind != gfmodels.KindRateLimited {
		t.Errorf("expected KindRateLimited, got %v", clientErr.Kind)
	}
	if clientErr.RetryAfter <= 0 {
		t.Errorf("expected positive RetryAfter, got %d", clientErr.RetryAfter)
	}
}

func TestTokenBucket_AcquireBlocksUntilTimeout(t *testing.T) {
	b := New(Config{RequestsPerMinute: 1, BurstCapacity: 1})

	ok, err := b.Acquire(context.Background(), 0)
	if err != nil || !ok {
		t.Fatalf("expected first acquire to succeed")
	}

	start := time.Now()
	ok, err = b.Acquire(context.Background(), 30*time.Millisecond)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected acquire to time out with a 1 rpm refill rate")
	}
	if elapsed < 25*time.Millisecond {
		t.Errorf("expected acquire to wait close to the timeout, waited %v", elapsed)
	}
}

func TestTokenBucket_AcquireRespectsContextCancellation(t *testing.T) {
	b := New(Config{RequestsPerMinute: 1, BurstCapacity: 1})
	_, _ = b.Acquire(context.Background(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Acquire(ctx, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTokenBucket_Reset(t *testing.T) {
	b := New(Config{RequestsPerMinute: 60, BurstCapacity: 3, DailyCap: 5})
	_, _ = b.Acquire(context.Background(), 0)
	_, _ = b.Acquire(context.Background(), 0)

	b.Reset()
	stats := b.Stats()
	if stats.Tokens != 3 {
		t.Errorf("expected reset to refill to capacity, got %v", stats.Tokens)
	}
	if stats.DailyCount != 0 {
		t.Errorf("expected reset to zero the daily counter, got %d", stats.DailyCount)
	}
}

func TestNullLimiter_AlwaysSucceeds(t *testing.T) {
	var n NullLimiter
	if !n.CanAcquire() {
		t.Error("expected NullLimiter.CanAcquire to always be true")
	}
	if n.TimeUntilAvailable() != 0 {
		t.Error("expected NullLimiter.TimeUntilAvailable to be zero")
	}
	ok, err := n.Acquire(context.Background(), time.Second)
	if !ok || err != nil {
		t.Errorf("expected NullLimiter.Acquire to succeed immediately, got ok=%v err=%v", ok, err)
	}
	if err := n.AcquireOrRaise(context.Background(), time.Second); err != nil {
		t.Errorf("expected NullLimiter.AcquireOrRaise to never error, got %v", err)
	}
}
