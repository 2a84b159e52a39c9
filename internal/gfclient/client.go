// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfclient

import (
	"fmt"
	"sync"

	"github.com/daveblack/gurufocus-go/internal/gfcache"
	"github.com/daveblack/gurufocus-go/internal/gfconfig"
	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfratelimit"
	"github.com/daveblack/gurufocus-go/internal/gfusage"
)

// Client is the scoped resource that owns the pipeline and its
// collaborators (cache backend, rate limiter, usage tracker) for the
// lifetime of a single GuruFocus session. Construct with New and
// always Close when done; Close is idempotent.
type Client struct {
	Pipeline *Pipeline
	Cache    gfcache.Manager
	Limiter  gfratelimit.Limiter
	Usage    gfusage.Tracker

	closeOnce sync.Once
	backend   gfcache.Backend
}

// New constructs a Client from resolved configuration, opening the
// persistent cache directory (preserved across process restarts) and
// wiring the rate limiter and usage tracker the pipeline depends on.
func New(cfg *gfconfig.Config) (*Client, error) {
	var backend gfcache.Backend
	var manager gfcache.Manager
	if cfg.Cache.Enabled {
		b, err := gfcache.OpenBadgerBackend(cfg.Cache.Dir, cfg.Cache.SizeLimitBytes)
		if err != nil {
			return nil, fmt.Errorf("open cache backend at %s: %w", cfg.Cache.Dir, err)
		}
		backend = b
		manager = gfcache.NewManager(b)
	} else {
		manager = gfcache.NewNullManager()
	}

	var limiter gfratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = gfratelimit.New(gfratelimit.Config{
			RequestsPerMinute: cfg.RateLimit.RPM,
			BurstCapacity:     cfg.RateLimit.Burst,
			DailyCap:          cfg.RateLimit.Daily,
		})
	} else {
		limiter = gfratelimit.NullLimiter{}
	}

	var usage gfusage.Tracker
	if cfg.Cache.Enabled {
		usage = gfusage.NewTracker(manager, gfusage.Config{
			DailyLimit:   cfg.RateLimit.Daily,
			SyncInterval: cfg.RateLimit.UsageSyncInterval,
		})
	} else {
		usage = gfusage.NullTracker{}
	}

	pipeline := NewPipeline(cfg.Client, limiter, usage)

	return &Client{
		Pipeline: pipeline,
		Cache:    manager,
		Limiter:  limiter,
		Usage:    usage,
		backend:  backend,
	}, nil
}

// Close releases the cache backend's file handles. Safe to call more
// than once; subsequent calls are no-ops.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		if c.backend != nil {
			err = c.backend.Close()
		}
		gflog.Debug().Msg("client closed")
	})
	return err
}
