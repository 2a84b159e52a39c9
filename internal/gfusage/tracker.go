// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfusage keeps a local estimate of remaining upstream API
// quota without issuing probe calls: it trusts the last authoritative
// reading and decrements its own count on every successful request.
package gfusage

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/daveblack/gurufocus-go/internal/gfcache"
	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmetrics"
	"github.com/daveblack/gurufocus-go/internal/gfmodels"
)

// Config configures the usage tracker.
type Config struct {
	DailyLimit   int           // the plan's daily request limit, for the warning threshold
	WarnPercent  float64       // warn once remaining falls below DailyLimit * WarnPercent/100
	SyncInterval time.Duration // minimum time between Sync calls the endpoint layer honors
}

// Tracker is the interface the pipeline and MCP tooling consume.
// NullTracker satisfies it when usage tracking is disabled.
type Tracker interface {
	Initialize(ctx context.Context)
	Decrement()
	Remaining() (int, bool)
	ShouldSync() bool
	Sync(ctx context.Context, authoritativeRemaining int)
	CheckWarningThreshold() bool
}

type snapshot struct {
	BaseRemaining int   `json:"base_remaining"`
	SyncTS        int64 `json:"sync_ts"`
}

type tracker struct {
	cache gfcache.Manager
	cfg   Config

	mu              sync.Mutex
	state           gfmodels.UsageState
	baseRemaining   int
	locallyConsumed int
	syncedAt        time.Time
}

// NewTracker builds a Tracker backed by cache for snapshot persistence.
func NewTracker(cache gfcache.Manager, cfg Config) Tracker {
	return &tracker{cache: cache, cfg: cfg, state: gfmodels.UsageUnknown}
}

// Initialize loads the last-synced snapshot from the reserved cache
// key, entering Synced if one was found.
func (t *tracker) Initialize(ctx context.Context) {
	fp := gfmodels.NewFingerprint(gfmodels.UsageCategory())
	raw, ok := t.cache.Get(ctx, fp, false)
	if !ok {
		return
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		gflog.Warn().Err(err).Msg("usage snapshot corrupt, starting unsynced")
		return
	}

	t.mu.Lock()
	t.state = gfmodels.UsageSynced
	t.baseRemaining = snap.BaseRemaining
	t.locallyConsumed = 0
	t.syncedAt = time.Unix(snap.SyncTS, 0)
	t.mu.Unlock()
	t.reportRemaining()
}

// reportRemaining publishes the current estimate to gfmetrics.UsageRemaining.
// No-op while Unknown, matching Remaining's own undefined-until-synced contract.
func (t *tracker) reportRemaining() {
	if remaining, ok := t.Remaining(); ok {
		gfmetrics.UsageRemaining.Set(float64(remaining))
	}
}

// Decrement records one successful response. No-op while Unknown.
func (t *tracker) Decrement() {
	t.mu.Lock()
	if t.state == gfmodels.UsageSynced {
		t.locallyConsumed++
	}
	t.mu.Unlock()
	t.reportRemaining()
}

// Remaining returns the estimated remaining quota; ok is false while
// Unknown.
func (t *tracker) Remaining() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	est := gfmodels.UsageEstimate{
		State:           t.state,
		BaseRemaining:   t.baseRemaining,
		LocallyConsumed: t.locallyConsumed,
	}
	return est.Remaining()
}

// ShouldSync reports whether enough time has elapsed since the last
// sync to warrant another authoritative read.
func (t *tracker) ShouldSync() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cfg.SyncInterval <= 0 {
		return false
	}
	return time.Since(t.syncedAt) >= t.cfg.SyncInterval
}

// Sync resets the estimate from an authoritative reading and persists
// a snapshot so the next process lifetime starts Synced.
func (t *tracker) Sync(ctx context.Context, authoritativeRemaining int) {
	now := time.Now()

	t.mu.Lock()
	t.state = gfmodels.UsageSynced
	t.baseRemaining = authoritativeRemaining
	t.locallyConsumed = 0
	t.syncedAt = now
	t.mu.Unlock()

	snap := snapshot{BaseRemaining: authoritativeRemaining, SyncTS: now.Unix()}
	encoded, err := json.Marshal(snap)
	if err != nil {
		gflog.Warn().Err(err).Msg("usage snapshot encode failed")
		return
	}
	fp := gfmodels.NewFingerprint(gfmodels.UsageCategory())
	t.cache.Set(ctx, fp, encoded, 0)
	t.reportRemaining()
}

// CheckWarningThreshold reports whether the estimated remaining quota
// has fallen below DailyLimit * WarnPercent/100.
func (t *tracker) CheckWarningThreshold() bool {
	remaining, ok := t.Remaining()
	if !ok || t.cfg.DailyLimit <= 0 {
		return false
	}
	threshold := float64(t.cfg.DailyLimit) * t.cfg.WarnPercent / 100.0
	return float64(remaining) < threshold
}

// NullTracker is the disabled variant: Remaining is always undefined
// and every other operation is a no-op.
type NullTracker struct{}

func (NullTracker) Initialize(context.Context)                {}
func (NullTracker) Decrement()                                 {}
func (NullTracker) Remaining() (int, bool)                      { return 0, false }
func (NullTracker) ShouldSync() bool                            { return false }
func (NullTracker) Sync(context.Context, int)                   {}
func (NullTracker) CheckWarningThreshold() bool                 { return false }

var (
	_ Tracker = (*tracker)(nil)
	_ Tracker = NullTracker{}
)
