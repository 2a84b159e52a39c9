// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfratelimit implements a token-bucket rate limiter guarding
// calls to the GuruFocus API: a fractional per-minute refill rate, an
// integer burst capacity, and an optional daily request ceiling.
package gfratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmetrics"
	"github.com/daveblack/gurufocus-go/internal/gfmodels"
)

// Config configures a Limiter.
type Config struct {
	// RequestsPerMinute is the refill rate; fractional values allowed.
	RequestsPerMinute float64
	// BurstCapacity is the maximum number of tokens the bucket holds.
	BurstCapacity int
	// DailyCap is the maximum number of tokens grantable per 24h window.
	// Zero means unlimited.
	DailyCap int
}

// Limiter is the interface the HTTP pipeline acquires tokens through.
// NullLimiter satisfies it for disabled-rate-limit mode.
type Limiter interface {
	CanAcquire() bool
	TimeUntilAvailable() time.Duration
	Acquire(ctx context.Context, timeout time.Duration) (bool, error)
	AcquireOrRaise(ctx context.Context, timeout time.Duration) error
	Reset()
	Stats() Stats
}

// Stats is a snapshot of limiter state for monitoring.
type Stats struct {
	Tokens            float64
	BurstCapacity     int
	RequestsPerMinute float64
	DailyCount        int
	DailyCap          int // 0 = unlimited
	DailyRemaining    int // only meaningful when DailyCap > 0
}

// tokenBucket is the concrete, in-process Limiter implementation.
// All mutable state is guarded by mu; refill is computed lazily on
// every inspection rather than via a background goroutine, following
// the same lazy-refill approach as the krishna-kudari-go-ratelimit
// in-memory bucket this package is modeled on.
type tokenBucket struct {
	mu sync.Mutex

	cfg Config

	tokens     float64
	lastUpdate time.Time

	dailyCount int
	dailyEpoch time.Time
}

// New constructs a token-bucket limiter. The bucket starts full.
func New(cfg Config) Limiter {
	if cfg.BurstCapacity <= 0 {
		cfg.BurstCapacity = 1
	}
	now := time.Now()
	return &tokenBucket{
		cfg:        cfg,
		tokens:     float64(cfg.BurstCapacity),
		lastUpdate: now,
		dailyEpoch: now,
	}
}

const dailyWindow = 24 * time.Hour

// refill must be called with mu held.
func (b *tokenBucket) refillLocked(now time.Time) {
	elapsed := now.Sub(b.lastUpdate).Seconds()
	b.lastUpdate = now

	ratePerSecond := b.cfg.RequestsPerMinute / 60.0
	b.tokens = math.Min(float64(b.cfg.BurstCapacity), b.tokens+elapsed*ratePerSecond)

	if now.Sub(b.dailyEpoch) >= dailyWindow {
		b.dailyCount = 0
		b.dailyEpoch = now
	}
}

func (b *tokenBucket) dailyExhaustedLocked() bool {
	return b.cfg.DailyCap > 0 && b.dailyCount >= b.cfg.DailyCap
}

// CanAcquire reports whether a token is available without consuming one.
func (b *tokenBucket) CanAcquire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked(time.Now())
	if b.dailyExhaustedLocked() {
		return false
	}
	return b.tokens >= 1.0
}

// TimeUntilAvailable returns how long until the next token is ready,
// zero if one is ready now, and +Inf if the refill rate is zero.
func (b *tokenBucket) TimeUntilAvailable() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked(time.Now())
	if b.tokens >= 1.0 {
		return 0
	}

	ratePerSecond := b.cfg.RequestsPerMinute / 60.0
	if ratePerSecond <= 0 {
		return time.Duration(math.MaxInt64)
	}

	deficit := 1.0 - b.tokens
	seconds := deficit / ratePerSecond
	return time.Duration(math.Ceil(seconds*float64(time.Second.Seconds()))) * time.Second
}

// Acquire blocks (subject to ctx and timeout) until a token is
// available, then consumes it. A timeout of zero or less sets no
// deadline. Returns false, nil if timeout elapses or the daily cap is
// exhausted; returns an error only for context cancellation.
func (b *tokenBucket) Acquire(ctx context.Context, timeout time.Duration) (bool, error) {
	deadline := time.Now().Add(timeout)
	hasDeadline := timeout > 0
	start := time.Now()
	defer func() { gfmetrics.RateLimitWaitSeconds.Observe(time.Since(start).Seconds()) }()

	for {
		b.mu.Lock()
		now := time.Now()
		b.refillLocked(now)

		if b.dailyExhaustedLocked() {
			b.mu.Unlock()
			gflog.Debug().Msg("rate limiter daily cap exhausted")
			return false, nil
		}

		if b.tokens >= 1.0 {
			b.tokens -= 1.0
			b.dailyCount++
			b.mu.Unlock()
			return true, nil
		}

		wait := b.timeUntilAvailableLocked(now)
		b.mu.Unlock()

		if hasDeadline {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return false, nil
			}
			if wait > remaining {
				wait = remaining
			}
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (b *tokenBucket) timeUntilAvailableLocked(now time.Time) time.Duration {
	ratePerSecond := b.cfg.RequestsPerMinute / 60.0
	if ratePerSecond <= 0 {
		return time.Hour
	}
	deficit := 1.0 - b.tokens
	seconds := deficit / ratePerSecond
	return time.Duration(math.Ceil(seconds*float64(time.Second.Seconds()))) * time.Second
}

// AcquireOrRaise acquires a token or returns a *gfmodels.ClientError of
// kind RateLimited carrying the seconds until a token (or the daily
// reset) becomes available.
func (b *tokenBucket) AcquireOrRaise(ctx context.Context, timeout time.Duration) error {
	ok, err := b.Acquire(ctx, timeout)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	b.mu.Lock()
	dailyExhausted := b.dailyExhaustedLocked()
	var retryAfter time.Duration
	if dailyExhausted {
		retryAfter = dailyWindow - time.Since(b.dailyEpoch)
		if retryAfter < 0 {
			retryAfter = 0
		}
	} else {
		retryAfter = b.timeUntilAvailableLocked(time.Now())
	}
	b.mu.Unlock()

	return gfmodels.NewRateLimitedError(int(retryAfter.Seconds()) + 1)
}

// Reset restores the bucket to a full, freshly-epoched state.
func (b *tokenBucket) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	b.tokens = float64(b.cfg.BurstCapacity)
	b.lastUpdate = now
	b.dailyCount = 0
	b.dailyEpoch = now
}

// Stats returns a snapshot of the limiter's current state.
func (b *tokenBucket) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked(time.Now())

	remaining := 0
	if b.cfg.DailyCap > 0 {
		remaining = b.cfg.DailyCap - b.dailyCount
		if remaining < 0 {
			remaining = 0
		}
	}

	return Stats{
		Tokens:            b.tokens,
		BurstCapacity:     b.cfg.BurstCapacity,
		RequestsPerMinute: b.cfg.RequestsPerMinute,
		DailyCount:        b.dailyCount,
		DailyCap:          b.cfg.DailyCap,
		DailyRemaining:    remaining,
	}
}

// NullLimiter never limits anything. Used when rate limiting is
// disabled in configuration.
type NullLimiter struct{}

func (NullLimiter) CanAcquire() bool                     { return true }
func (NullLimiter) TimeUntilAvailable() time.Duration    { return 0 }
func (NullLimiter) Acquire(context.Context, time.Duration) (bool, error) {
	return true, nil
}
func (NullLimiter) AcquireOrRaise(context.Context, time.Duration) error { return nil }
func (NullLimiter) Reset()                                              {}
func (NullLimiter) Stats() Stats                                        { return Stats{} }

var (
	_ Limiter = (*tokenBucket)(nil)
	_ Limiter = NullLimiter{}
)
