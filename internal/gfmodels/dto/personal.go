// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package dto

import "github.com/goccy/go-json"

// APIUsage is the account-usage endpoint response: how many requests
// the current token has made and how many remain for the day.
type APIUsage struct {
	APIUsage            int `json:"api_usage,omitempty"`
	APIRequestsRemaining int `json:"api_requests_remaining,omitempty"`
}

// ParseAPIUsage builds an APIUsage from the raw upstream JSON, shaped
// {"API Usage": N, "API Requests Remaining": N}.
func ParseAPIUsage(raw json.RawMessage) *APIUsage {
	obj := asObject(raw)
	return &APIUsage{
		APIUsage:             intField(obj, "API Usage"),
		APIRequestsRemaining: intField(obj, "API Requests Remaining"),
	}
}
