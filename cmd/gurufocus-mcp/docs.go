// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// @title GuruFocus MCP Server
// @version 0.1
// @description MCP (Model Context Protocol) tool surface over the GuruFocus
// @description stock-research API: stock summaries, key ratios, financial
// @description statements, dividends, insider trades, guru holdings,
// @description analyst estimates, a screener, and QGARP/risk analysis tools.
// @description
// @description stdio is the default transport for MCP clients that launch
// @description this binary as a subprocess. Pass -http to additionally
// @description serve the streamable-HTTP transport and this documentation.
package main
