// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfmcp exposes the endpoint layer and the domain analyses over
// an MCP (Model Context Protocol) tool surface, using
// github.com/mark3labs/mcp-go the way internal/api mounts chi routers
// over cartographus's REST handlers.
package gfmcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/daveblack/gurufocus-go/internal/gfendpoints"
	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmcp/prompts"
	"github.com/daveblack/gurufocus-go/internal/gfmcp/resources"
)

// ServerName and ServerVersion identify this server to MCP clients.
const ServerName = "gurufocus-go"

// ServerVersion is reported in the MCP initialize handshake.
var ServerVersion = "0.1.0"

// Server wraps the mcp-go server with the endpoint layer and analysis
// helpers every tool handler needs.
type Server struct {
	mcp       *server.MCPServer
	endpoints *gfendpoints.Endpoints
}

// New builds an MCP server with every tool, prompt, and resource
// registered against endpoints.
func New(endpoints *gfendpoints.Endpoints) *Server {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithLogging(),
	)

	srv := &Server{mcp: s, endpoints: endpoints}
	srv.registerTools()
	prompts.Register(s)
	resources.Register(s)
	return srv
}

// MCPServer exposes the underlying *server.MCPServer for transports
// (stdio, streamable HTTP) to serve.
func (s *Server) MCPServer() *server.MCPServer { return s.mcp }

// ServeStdio blocks serving the MCP protocol over stdin/stdout until ctx
// is canceled or the transport errs out.
func (s *Server) ServeStdio(ctx context.Context) error {
	gflog.Info().Str("transport", "stdio").Msg("starting MCP server")
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}
