// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/daveblack/gurufocus-go/internal/gflog"
)

// symbolTool builds a tool definition that takes a required "symbol"
// argument and an optional "bypass_cache" boolean, the shape shared by
// every per-stock endpoint tool.
func symbolTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock ticker symbol, e.g. AAPL")),
		mcp.WithBoolean("bypass_cache", mcp.Description("Skip the local cache and force a fresh upstream fetch")),
	)
}

func symbolArgs(request mcp.CallToolRequest) (symbol string, bypass bool) {
	return request.GetString("symbol", ""), request.GetBool("bypass_cache", false)
}

// registerTools wires every endpoint and analysis tool onto the MCP
// server. Each handler derives a correlation ID, logs the call, and
// maps endpoint-layer errors to the documented tool error payload.
func (s *Server) registerTools() {
	s.mcp.AddTool(symbolTool("get_summary", "Fetch the GuruFocus stock summary (overview, price, GF Score, valuation snapshot) for a symbol."), s.handleGetSummary)
	s.mcp.AddTool(symbolTool("get_keyratios", "Fetch GuruFocus key ratios (profitability, solvency, liquidity, growth, valuation, per-share data) for a symbol."), s.handleGetKeyRatios)
	s.mcp.AddTool(financialsTool(), s.handleGetFinancials)
	s.mcp.AddTool(symbolTool("get_dividends", "Fetch dividend payment history for a symbol."), s.handleGetDividends)
	s.mcp.AddTool(symbolTool("get_insider_trades", "Fetch recent insider buy/sell transactions for a symbol."), s.handleGetInsiderTrades)
	s.mcp.AddTool(symbolTool("get_guru_holdings", "Fetch guru investor picks and holdings for a symbol."), s.handleGetGuruHoldings)
	s.mcp.AddTool(symbolTool("get_estimates", "Fetch analyst revenue/EPS estimates for a symbol."), s.handleGetEstimates)
	s.mcp.AddTool(screenerTool(), s.handleScreenerSearch)
	s.mcp.AddTool(symbolTool("analyze_qgarp", "Run the QGARP (Quality at a Good/Reasonable Price) screen and sticker-price valuation for a symbol."), s.handleAnalyzeQGARP)
	s.mcp.AddTool(symbolTool("analyze_risk", "Run the five-dimension quantitative risk assessment for a symbol."), s.handleAnalyzeRisk)
	s.mcp.AddTool(apiUsageTool(), s.handleGetAPIUsage)
}

func apiUsageTool() mcp.Tool {
	return mcp.NewTool("get_api_usage",
		mcp.WithDescription("Fetch API usage statistics for the current token: requests made and requests remaining today. Result may be cached for up to 5 minutes."),
		mcp.WithBoolean("bypass_cache", mcp.Description("Skip the local cache and force a fresh upstream fetch")),
	)
}

func (s *Server) handleGetAPIUsage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	bypass := request.GetBool("bypass_cache", false)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "get_api_usage").Msg("tool call")

	usage, err := s.endpoints.APIUsage(ctx, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(usage)
}

func financialsTool() mcp.Tool {
	return mcp.NewTool("get_financials",
		mcp.WithDescription("Fetch income statement, balance sheet, and cash flow statement history for a symbol."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock ticker symbol, e.g. AAPL")),
		mcp.WithString("period_type", mcp.Description("\"annual\" or \"quarterly\""), mcp.DefaultString("annual")),
		mcp.WithBoolean("bypass_cache", mcp.Description("Skip the local cache and force a fresh upstream fetch")),
	)
}

func (s *Server) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol, bypass := symbolArgs(request)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "get_summary").Str("symbol", symbol).Msg("tool call")

	summary, err := s.endpoints.Summary(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(summary)
}

func (s *Server) handleGetKeyRatios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol, bypass := symbolArgs(request)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "get_keyratios").Str("symbol", symbol).Msg("tool call")

	ratios, err := s.endpoints.KeyRatios(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(ratios)
}

func (s *Server) handleGetFinancials(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol := request.GetString("symbol", "")
	periodType := request.GetString("period_type", "annual")
	bypass := request.GetBool("bypass_cache", false)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "get_financials").Str("symbol", symbol).Msg("tool call")

	financials, err := s.endpoints.Financials(ctx, symbol, periodType, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(financials)
}

func (s *Server) handleGetDividends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol, bypass := symbolArgs(request)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "get_dividends").Str("symbol", symbol).Msg("tool call")

	dividends, err := s.endpoints.Dividends(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(dividends)
}

func (s *Server) handleGetInsiderTrades(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol, bypass := symbolArgs(request)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "get_insider_trades").Str("symbol", symbol).Msg("tool call")

	trades, err := s.endpoints.InsiderTrades(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(trades)
}

func (s *Server) handleGetGuruHoldings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol, bypass := symbolArgs(request)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "get_guru_holdings").Str("symbol", symbol).Msg("tool call")

	gurus, err := s.endpoints.Gurus(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(gurus)
}

func (s *Server) handleGetEstimates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	symbol, bypass := symbolArgs(request)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "get_estimates").Str("symbol", symbol).Msg("tool call")

	estimates, err := s.endpoints.Estimates(ctx, symbol, bypass)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(estimates)
}
