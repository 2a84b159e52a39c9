// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmcp

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmodels"
	"github.com/daveblack/gurufocus-go/internal/gfmodels/dto"
)

func screenerTool() mcp.Tool {
	return mcp.NewTool("screener_search",
		mcp.WithDescription("Run a GuruFocus stock screener query with structured filters, sorting, and pagination."),
		mcp.WithString("filters_json", mcp.Description(`JSON array of {"field","operator","value"} filter objects, e.g. [{"field":"pe_ratio","operator":"lt","value":20}]`)),
		mcp.WithString("sort_field", mcp.Description("Field to sort results by")),
		mcp.WithBoolean("sort_ascending", mcp.Description("Sort ascending instead of descending")),
		mcp.WithNumber("limit", mcp.Description("Maximum rows to return"), mcp.DefaultNumber(100)),
		mcp.WithNumber("offset", mcp.Description("Row offset for pagination")),
		mcp.WithString("exchange", mcp.Description("Restrict to one exchange")),
		mcp.WithString("sector", mcp.Description("Restrict to one GICS sector")),
		mcp.WithString("industry", mcp.Description("Restrict to one industry")),
		mcp.WithString("country", mcp.Description("Restrict to one country")),
		mcp.WithNumber("market_cap_min", mcp.Description("Minimum market capitalization")),
		mcp.WithNumber("market_cap_max", mcp.Description("Maximum market capitalization")),
	)
}

func (s *Server) handleScreenerSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, corrID := withCorrelationID(ctx)
	gflog.Debug().Str("correlation_id", corrID).Str("tool", "screener_search").Msg("tool call")

	req := dto.NewScreenerRequest()
	req.Limit = int(request.GetFloat("limit", 100))
	req.Offset = int(request.GetFloat("offset", 0))
	req.Exchange = request.GetString("exchange", "")
	req.Sector = request.GetString("sector", "")
	req.Industry = request.GetString("industry", "")
	req.Country = request.GetString("country", "")
	req.MarketCapMin = request.GetFloat("market_cap_min", 0)
	req.MarketCapMax = request.GetFloat("market_cap_max", 0)

	if raw := request.GetString("filters_json", ""); raw != "" {
		var filters []dto.ScreenerFilter
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			return toolError(corrID, gfmodels.NewValidationError("invalid filters_json: "+err.Error())), nil
		}
		req.Filters = filters
	}
	if sortField := request.GetString("sort_field", ""); sortField != "" {
		req.Sort = &dto.ScreenerSort{Field: sortField, Ascending: request.GetBool("sort_ascending", false)}
	}

	result, err := s.endpoints.Screener(ctx, req)
	if err != nil {
		return toolError(corrID, err), nil
	}
	return jsonResult(result)
}
