// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package resources registers MCP resources an agent can read without
// invoking a tool. Grounded on the original Python
// gurufocus_mcp/resources package's schema-discovery resources: since
// this client's cache categories (and their tiering/TTL/invalidation
// rules) are otherwise only implicit in code, they are exposed here as
// a browsable reference instead.
package resources

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/daveblack/gurufocus-go/internal/gfmodels"
)

const catalogueURI = "gurufocus://cache/categories"

// Register adds every resource to s.
func Register(s *server.MCPServer) {
	s.AddResource(mcp.NewResource(
		catalogueURI,
		"Cache category catalogue",
		mcp.WithResourceDescription("Every cache category this client recognizes, with its freshness tier, TTL, and whether an earnings release invalidates it early."),
		mcp.WithMIMEType("application/json"),
	), catalogueHandler)
}

type categoryEntry struct {
	Category             gfmodels.CacheCategory `json:"category"`
	Tier                 gfmodels.CacheTier      `json:"tier"`
	TTLSeconds           float64                 `json:"ttl_seconds"`
	InvalidateOnEarnings bool                    `json:"invalidate_on_earnings"`
}

func catalogueHandler(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	categories := gfmodels.AllCategories()
	entries := make([]categoryEntry, 0, len(categories))
	for _, cat := range categories {
		policy, _ := gfmodels.PolicyFor(cat)
		entries = append(entries, categoryEntry{
			Category:             cat,
			Tier:                 policy.Tier,
			TTLSeconds:           policy.TTL.Seconds(),
			InvalidateOnEarnings: policy.InvalidateOnEarnings,
		})
	}

	body, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      catalogueURI,
			MIMEType: "application/json",
			Text:     string(body),
		},
	}, nil
}
