// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package main is the entry point for the GuruFocus MCP server.
//
// gurufocus-mcp wires the GuruFocus API client (config, cache, rate
// limiter, usage tracker, HTTP pipeline, endpoint layer) into an MCP
// tool surface that LLM agents use to run fundamental-analysis and
// guru-tracking workflows.
//
// # Startup sequence
//
//  1. Configuration: load settings from environment variables, an
//     optional YAML file, and built-in defaults (Koanf v2).
//  2. Logging: initialize the structured zerolog logger.
//  3. Client: open the persistent cache backend, construct the rate
//     limiter and usage tracker, and build the HTTP request pipeline.
//  4. Endpoint layer: wrap the client in typed per-endpoint methods.
//  5. MCP server: register every tool, prompt, and resource.
//  6. Transport: serve stdio by default; with -http, also serve the
//     streamable-HTTP transport and (optionally) its Swagger UI.
//
// Shutdown releases resources in the reverse order they were
// acquired: HTTP transport, then MCP stdio loop, then the client
// (which closes its cache backend).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gfclient"
	"github.com/daveblack/gurufocus-go/internal/gfconfig"
	"github.com/daveblack/gurufocus-go/internal/gfendpoints"
	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmcp"
	"github.com/daveblack/gurufocus-go/internal/gfmcp/transport"
)

func main() {
	httpAddr := flag.String("http", "", "also serve the streamable-HTTP transport on this address, e.g. :8089 (stdio is always served)")
	enableSwagger := flag.Bool("swagger", false, "mount the Swagger UI at /docs when -http is set")
	corsOrigin := flag.String("cors-origin", "", "comma-separated CORS allow-list for the HTTP transport")
	flag.Parse()

	cfg, err := gfconfig.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gurufocus-mcp: load configuration:", err)
		os.Exit(1)
	}

	gflog.Init(gflog.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    false,
		Timestamp: true,
	})
	gflog.Info().Str("base_url", cfg.Client.BaseURL).Bool("cache_enabled", cfg.Cache.Enabled).Bool("rate_limit_enabled", cfg.RateLimit.Enabled).Msg("configuration loaded")

	client, err := gfclient.New(cfg)
	if err != nil {
		gflog.Error().Err(err).Msg("failed to construct client")
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(); err != nil {
			gflog.Error().Err(err).Msg("error closing client")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client.Usage.Initialize(ctx)

	endpoints := gfendpoints.New(client)
	mcpServer := gfmcp.New(endpoints)

	if *httpAddr != "" {
		httpCfg := transport.DefaultConfig()
		httpCfg.EnableSwagger = *enableSwagger
		for _, origin := range strings.Split(*corsOrigin, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				httpCfg.AllowedOrigins = append(httpCfg.AllowedOrigins, origin)
			}
		}
		handler := transport.New(mcpServer, httpCfg)

		httpServer := &http.Server{
			Addr:              *httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			gflog.Info().Str("addr", *httpAddr).Bool("swagger", *enableSwagger).Msg("streamable-HTTP transport listening")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				gflog.Error().Err(err).Msg("HTTP transport stopped unexpectedly")
				stop()
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				gflog.Error().Err(err).Msg("error shutting down HTTP transport")
			}
		}()
	}

	gflog.Info().Msg("gurufocus-mcp starting")
	if err := mcpServer.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		gflog.Error().Err(err).Msg("stdio transport stopped with error")
		os.Exit(1)
	}
	gflog.Info().Msg("gurufocus-mcp stopped gracefully")
}
