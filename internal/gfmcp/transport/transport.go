// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package transport mounts the MCP server's streamable-HTTP endpoint
// behind a Chi router, the way cartographus's internal/api mounts its
// REST handlers: a global CORS/recoverer/request-ID middleware stack,
// a liveness route, and (optionally) a Swagger UI for tool discovery.
// stdio remains the default transport (see internal/gfmcp.ServeStdio);
// this package exists for deployments that want to reach the MCP
// server over HTTP instead of a subprocess pipe.
package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/mark3labs/mcp-go/server"

	"github.com/daveblack/gurufocus-go/internal/gfmcp"
)

// Config controls the HTTP transport's CORS policy and whether the
// Swagger UI is mounted.
type Config struct {
	// AllowedOrigins is the CORS allow-list. Empty means no
	// cross-origin access, matching cartographus's secure-by-default
	// posture (CORS origins must be explicitly configured).
	AllowedOrigins []string

	// EnableSwagger mounts a Swagger UI describing the tool-discovery
	// endpoint at /docs.
	EnableSwagger bool
}

// DefaultConfig returns a Config with an empty CORS allow-list and
// Swagger disabled.
func DefaultConfig() Config {
	return Config{AllowedOrigins: nil, EnableSwagger: false}
}

// New builds the Chi router exposing srv's MCP server over streamable
// HTTP at POST/GET /mcp, a liveness probe at /healthz, and an optional
// Swagger UI at /docs/*.
func New(srv *gfmcp.Server, cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Mcp-Session-Id"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	streamable := server.NewStreamableHTTPServer(srv.MCPServer())
	r.Handle("/mcp", streamable)
	r.Handle("/mcp/*", streamable)

	if cfg.EnableSwagger {
		r.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/docs/doc.json"),
		))
	}

	return r
}
