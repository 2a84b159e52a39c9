// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmcp

import (
	"context"
	"testing"
)

func TestWithCorrelationID_AttachesRetrievableID(t *testing.T) {
	ctx, id := withCorrelationID(context.Background())
	if id == "" {
		t.Fatal("expected a non-empty correlation ID")
	}
	if got := correlationID(ctx); got != id {
		t.Errorf("correlationID(ctx) = %q, want %q", got, id)
	}
}

func TestWithCorrelationID_EachCallIsUnique(t *testing.T) {
	_, id1 := withCorrelationID(context.Background())
	_, id2 := withCorrelationID(context.Background())
	if id1 == id2 {
		t.Error("expected distinct correlation IDs across calls")
	}
}

func TestCorrelationID_EmptyWhenUnset(t *testing.T) {
	if got := correlationID(context.Background()); got != "" {
		t.Errorf("expected empty correlation ID on a bare context, got %q", got)
	}
}
