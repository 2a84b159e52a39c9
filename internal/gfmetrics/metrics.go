// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfmetrics exposes Prometheus instrumentation for the request
// pipeline, cache, rate limiter, and circuit breaker.
package gfmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks pipeline request latency by endpoint category
	// and outcome.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gurufocus_request_duration_seconds",
			Help:    "Duration of GuruFocus API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"category", "outcome"},
	)

	// RetryAttempts counts pipeline attempts beyond the first, by
	// endpoint category.
	RetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gurufocus_retry_attempts_total",
			Help: "Total number of retry attempts made by the request pipeline",
		},
		[]string{"category"},
	)

	// CacheHits and CacheMisses count cache manager outcomes by category.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gurufocus_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"category"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gurufocus_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"category"},
	)

	// CacheResidentBytes reports the backend's current resident size.
	CacheResidentBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gurufocus_cache_resident_bytes",
			Help: "Current resident size of the persistent cache",
		},
	)

	// RateLimitWaitSeconds tracks time spent blocked acquiring a token.
	RateLimitWaitSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gurufocus_rate_limit_wait_seconds",
			Help:    "Time spent waiting for a rate-limit token",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CircuitBreakerState reports the breaker's state as a gauge:
	// 0=closed, 1=half-open, 2=open.
	CircuitBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gurufocus_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// UsageRemaining reports the usage tracker's current estimate.
	UsageRemaining = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gurufocus_usage_remaining",
			Help: "Estimated remaining upstream API quota",
		},
	)
)
