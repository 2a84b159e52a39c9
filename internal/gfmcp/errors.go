// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmcp

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmodels"
)

// errorPayload is the JSON body of a tool error result: {"error": {...}}.
type errorPayload struct {
	Error struct {
		Kind           gfmodels.ErrorKind `json:"kind"`
		Message        string             `json:"message"`
		RetryAfterSecs int                `json:"retry_after_seconds,omitempty"`
		Symbol         string             `json:"symbol,omitempty"`
	} `json:"error"`
}

// toolError converts any error into an MCP tool error result. A
// *gfmodels.ClientError is rendered into the documented
// {error:{kind,message,retry_after_seconds?}} payload; any other error
// is wrapped with KindAPIError so callers never see a bare Go error
// string without a kind.
func toolError(corrID string, err error) *mcp.CallToolResult {
	var ce *gfmodels.ClientError
	if !errors.As(err, &ce) {
		ce = &gfmodels.ClientError{Kind: gfmodels.KindAPIError, Message: err.Error()}
	}

	var payload errorPayload
	payload.Error.Kind = ce.Kind
	payload.Error.Message = ce.Message
	payload.Error.RetryAfterSecs = ce.RetryAfter
	payload.Error.Symbol = ce.Symbol

	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		gflog.Error().Err(marshalErr).Str("correlation_id", corrID).Msg("failed to marshal tool error payload")
		return mcp.NewToolResultError(ce.Error())
	}

	gflog.Warn().
		Str("correlation_id", corrID).
		Str("kind", string(ce.Kind)).
		Msg("tool call failed")

	return mcp.NewToolResultError(string(body))
}

// jsonResult marshals v as the tool's text result body.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(body)), nil
}
