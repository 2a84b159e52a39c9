// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfcache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmodels"
)

// Manager is the category-aware façade the endpoint layer and usage
// tracker talk to; it never deals in raw backend keys.
type Manager interface {
	Enabled() bool
	Get(ctx context.Context, fp gfmodels.Fingerprint, bypass bool) ([]byte, bool)
	Set(ctx context.Context, fp gfmodels.Fingerprint, value []byte, ttlOverride time.Duration)
	Delete(ctx context.Context, fp gfmodels.Fingerprint) bool
	InvalidateSymbol(ctx context.Context, symbol string) int
	InvalidateCategory(ctx context.Context, category gfmodels.CacheCategory) int
	Clear(ctx context.Context)
	Close() error
	Stats() ManagerStats
}

// ManagerStats reports hit/miss counters plus the backend's own stats.
type ManagerStats struct {
	Enabled bool
	Hits    int64
	Misses  int64
	Backend Stats
}

// HitRate returns hits/(hits+misses), or 0 when no operations occurred.
func (s ManagerStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type manager struct {
	backend Backend
	hits    atomic.Int64
	misses  atomic.Int64
	mu      sync.Mutex // guards reset-stats-on-clear ordering
}

// NewManager wraps backend in a category-aware cache manager.
func NewManager(backend Backend) Manager {
	return &manager{backend: backend}
}

func (m *manager) Enabled() bool { return true }

func (m *manager) Get(ctx context.Context, fp gfmodels.Fingerprint, bypass bool) ([]byte, bool) {
	if bypass {
		m.misses.Add(1)
		return nil, false
	}

	key := fp.Key()
	value, ok := m.backend.Get(ctx, key)
	if ok {
		m.hits.Add(1)
		gflog.Debug().Str("key", key).Msg("cache hit")
	} else {
		m.misses.Add(1)
		gflog.Debug().Str("key", key).Msg("cache miss")
	}
	return value, ok
}

func (m *manager) Set(ctx context.Context, fp gfmodels.Fingerprint, value []byte, ttlOverride time.Duration) {
	ttl := ttlOverride
	if ttl <= 0 {
		if policy, ok := gfmodels.PolicyFor(fp.Category); ok {
			ttl = policy.TTL
		} else {
			ttl = 24 * time.Hour
		}
	}
	key := fp.Key()
	m.backend.Set(ctx, key, value, ttl)
	gflog.Debug().Str("key", key).Dur("ttl", ttl).Msg("cache set")
}

func (m *manager) Delete(ctx context.Context, fp gfmodels.Fingerprint) bool {
	return m.backend.Delete(ctx, fp.Key())
}

// InvalidateSymbol deletes every entry whose key contains the
// upper-cased symbol, matching the "*:SYMBOL*" pattern used by the
// Python reference manager.
func (m *manager) InvalidateSymbol(ctx context.Context, symbol string) int {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	pattern := fmt.Sprintf("*:%s*", symbol)
	count := m.backend.DeletePattern(ctx, pattern)
	gflog.Info().Str("symbol", symbol).Int("count", count).Msg("invalidated cache entries for symbol")
	return count
}

// InvalidateCategory deletes every entry under category_slug:*.
func (m *manager) InvalidateCategory(ctx context.Context, category gfmodels.CacheCategory) int {
	pattern := string(category) + ":*"
	count := m.backend.DeletePattern(ctx, pattern)
	gflog.Info().Str("category", string(category)).Int("count", count).Msg("invalidated cache entries for category")
	return count
}

func (m *manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backend.Clear(ctx)
	m.hits.Store(0)
	m.misses.Store(0)
}

func (m *manager) Close() error { return m.backend.Close() }

func (m *manager) Stats() ManagerStats {
	return ManagerStats{
		Enabled: true,
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Backend: m.backend.Stats(),
	}
}

// NullManager is the disabled-cache variant: every read is a miss,
// every write a no-op, matching the Python NullCacheManager.
type NullManager struct {
	misses atomic.Int64
}

func NewNullManager() Manager { return &NullManager{} }

func (n *NullManager) Enabled() bool { return false }

func (n *NullManager) Get(context.Context, gfmodels.Fingerprint, bool) ([]byte, bool) {
	n.misses.Add(1)
	return nil, false
}

func (n *NullManager) Set(context.Context, gfmodels.Fingerprint, []byte, time.Duration) {}

func (n *NullManager) Delete(context.Context, gfmodels.Fingerprint) bool { return false }

func (n *NullManager) InvalidateSymbol(context.Context, string) int { return 0 }

func (n *NullManager) InvalidateCategory(context.Context, gfmodels.CacheCategory) int { return 0 }

func (n *NullManager) Clear(context.Context) {}

func (n *NullManager) Close() error { return nil }

func (n *NullManager) Stats() ManagerStats {
	return ManagerStats{Enabled: false, Misses: n.misses.Load()}
}

var (
	_ Manager = (*manager)(nil)
	_ Manager = (*NullManager)(nil)
)
