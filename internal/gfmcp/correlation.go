// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmcp

import (
	"context"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// withCorrelationID derives a child context carrying a fresh
// correlation ID for one tool invocation. The tool handler logs it and
// returns it in any error payload; the endpoint and pipeline layers do
// not read it (the pipeline logs its own per-request ID).
func withCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, correlationIDKey{}, id), id
}

// correlationID returns the correlation ID carried on ctx, or "" if
// none was attached.
func correlationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}
