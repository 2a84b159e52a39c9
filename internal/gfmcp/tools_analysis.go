// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/daveblack/gurufocus-go/internal/gfanalysis"
	"github.com/daveblack/gurufocus-go/internal/gflog"
)

func (s *Server) handleAnalyzeQGARP(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol, bypass := symbolArgs(request)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "analyze_qgarp").Str("symbol", symbol).Msg("tool call")

	summary, err := s.endpoints.Summary(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	keyratios, err := s.endpoints.KeyRatios(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	financials, err := s.endpoints.Financials(ctx, symbol, "annual", bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}

	analysis := gfanalysis.ComputeQGARP(symbol, summary, keyratios, financials)
	return jsonResult(analysis)
}

func (s *Server) handleAnalyzeRisk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol, bypass := symbolArgs(request)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "analyze_risk").Str("symbol", symbol).Msg("tool call")

	summary, err := s.endpoints.Summary(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	keyratios, err := s.endpoints.KeyRatios(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}

	analysis := gfanalysis.ComputeRisk(symbol, summary, keyratios)
	return jsonResult(analysis)
}
