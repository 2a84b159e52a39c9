// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gflog

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func withCapturedOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestGenerateRequestID_ProducesUniqueValues(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty request IDs")
	}
	if a == b {
		t.Error("expected distinct request IDs across calls")
	}
}

func TestContextWithRequestID_RoundTrips(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("got request id %q, want %q", got, "req-123")
	}
}

func TestRequestIDFromContext_EmptyWhenUnset(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestCtx_AttachesRequestIDToLogLine(t *testing.T) {
	buf := withCapturedOutput(t)
	ctx := ContextWithNewRequestID(context.Background())
	requestID := RequestIDFromContext(ctx)

	CtxInfo(ctx).Msg("test message")

	out := buf.String()
	if !strings.Contains(out, requestID) {
		t.Errorf("expected log output to contain request_id %q, got: %s", requestID, out)
	}
	if !strings.Contains(out, `"message":"test message"`) {
		t.Errorf("expected log output to contain the message, got: %s", out)
	}
}

func TestCtx_OmitsRequestIDFieldWhenUnset(t *testing.T) {
	buf := withCapturedOutput(t)
	CtxInfo(context.Background()).Msg("no request id here")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("expected no request_id field without one attached, got: %s", buf.String())
	}
}
