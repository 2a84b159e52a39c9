// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package prompts registers the static MCP prompt templates ported
// from the original Python prompts/analysis.py module: a QGARP
// investment scorecard and an execution-risk analysis template, both
// parameterized on a ticker symbol and intended to guide an agent
// through calling this server's tools in order.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Register adds every prompt template to s.
func Register(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt("qgarp_scorecard",
		mcp.WithPromptDescription("Generate a Quality Growth at a Reasonable Price (QGARP) investment scorecard for a ticker."),
		mcp.WithArgument("ticker", mcp.ArgumentDescription("Stock ticker symbol to analyze, e.g. AAPL"), mcp.RequiredArgument()),
	), qgarpScorecardHandler)

	s.AddPrompt(mcp.NewPrompt("execution_risk_analysis",
		mcp.WithPromptDescription("Assess execution risk across concentration, disruption, outside-forces, and competition dimensions for a ticker."),
		mcp.WithArgument("ticker", mcp.ArgumentDescription("Stock ticker symbol to analyze, e.g. AAPL"), mcp.RequiredArgument()),
	), executionRiskHandler)
}

func qgarpScorecardHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	ticker := request.Params.Arguments["ticker"]
	text := qgarpScorecardTemplate(ticker)
	return mcp.NewGetPromptResult(
		"QGARP investment scorecard instructions",
		[]mcp.PromptMessage{mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text))},
	), nil
}

func executionRiskHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	ticker := request.Params.Arguments["ticker"]
	text := executionRiskTemplate(ticker)
	return mcp.NewGetPromptResult(
		"Execution risk analysis instructions",
		[]mcp.PromptMessage{mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text))},
	), nil
}
