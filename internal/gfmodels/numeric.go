// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmodels

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// sentinel values the upstream API uses in place of a real number.
var numericSentinels = map[string]struct{}{
	"":     {},
	"N/A":  {},
	"N\\A": {},
	"-":    {},
	"None": {},
}

// ParseOptionalNumber coerces a dynamically-typed JSON scalar into a
// float64, returning ok=false for null, a sentinel string ("N/A", "-",
// "", "None"), or any value that cannot be parsed as a number.
//
// Every numeric DTO field in this client is optional and is populated
// through this helper: a single malformed field degrades to absent
// rather than failing the whole parse.
func ParseOptionalNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	return parseNumericString(s)
}

func parseNumericString(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if _, sentinel := numericSentinels[trimmed]; sentinel {
		return 0, false
	}
	// Upstream sometimes formats large numbers with thousands separators.
	trimmed = strings.ReplaceAll(trimmed, ",", "")
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseOptionalInt coerces a dynamically-typed JSON scalar into an
// int, using the same sentinel rules as ParseOptionalNumber.
func ParseOptionalInt(raw json.RawMessage) (int, bool) {
	f, ok := ParseOptionalNumber(raw)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// ParseOptionalString coerces a dynamically-typed JSON scalar into a
// string, treating null and the numeric sentinels as absent.
func ParseOptionalString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	trimmed := strings.TrimSpace(s)
	if _, sentinel := numericSentinels[trimmed]; sentinel {
		return "", false
	}
	return s, true
}
