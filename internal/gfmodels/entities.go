// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfmodels holds the data-model entities, error taxonomy, and
// numeric-coercion helpers shared across the cache, rate limiter,
// pipeline, and endpoint packages.
package gfmodels

import (
	"strings"
	"time"
)

// Fingerprint is the unit of cache identity: a category plus an ordered
// list of key parts. Its string form is the literal cache key and must
// stay stable across releases.
type Fingerprint struct {
	Category CacheCategory
	Parts    []string
}

// NewFingerprint builds a fingerprint from a category and key parts.
func NewFingerprint(category CacheCategory, parts ...string) Fingerprint {
	return Fingerprint{Category: category, Parts: parts}
}

// Key renders the fingerprint as its stable cache key:
// "category_slug:part1:part2:...".
func (f Fingerprint) Key() string {
	segments := make([]string, 0, len(f.Parts)+1)
	segments = append(segments, string(f.Category))
	segments = append(segments, f.Parts...)
	return strings.Join(segments, ":")
}

// UsageState is the usage tracker's synchronization state.
type UsageState int

const (
	UsageUnknown UsageState = iota
	UsageSynced
)

// UsageEstimate is the local estimate of upstream remaining quota.
type UsageEstimate struct {
	State           UsageState
	BaseRemaining   int
	LocallyConsumed int
	SyncedAt        time.Time
}

// Remaining returns the estimated remaining quota and whether the
// estimate is defined (false when State is UsageUnknown).
func (u UsageEstimate) Remaining() (int, bool) {
	if u.State != UsageSynced {
		return 0, false
	}
	remaining := u.BaseRemaining - u.LocallyConsumed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// RetryState tracks one pipeline invocation's retry progress. It exists
// only for the lifetime of a single request() call.
type RetryState struct {
	Attempt    int
	MaxRetries int
	LastErr    error
	StartedAt  time.Time
}

// Exhausted reports whether another attempt would exceed MaxRetries.
func (r RetryState) Exhausted() bool {
	return r.Attempt >= r.MaxRetries
}

// RequestContext is a per-call correlation record consumed by the
// observability collaborator. It is never mutated after creation.
type RequestContext struct {
	RequestID string
	Method    string
	Endpoint  string
	Symbol    string
	StartedAt time.Time
}
