// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package dto

import "github.com/goccy/go-json"

// InsiderTrade is a single Form 4 insider transaction.
type InsiderTrade struct {
	TradeDate        string  `json:"trade_date,omitempty"`
	InsiderName      string  `json:"insider_name,omitempty"`
	InsiderTitle     string  `json:"insider_title,omitempty"`
	TransactionType  string  `json:"transaction_type,omitempty"`
	Shares           float64 `json:"shares,omitempty"`
	Price            float64 `json:"price,omitempty"`
	Value            float64 `json:"value,omitempty"`
	SharesOwnedAfter float64 `json:"shares_owned_after,omitempty"`
	Change           float64 `json:"change,omitempty"`
}

// InsiderTrades is the trades collection from the insiders endpoint.
type InsiderTrades struct {
	Symbol string         `json:"symbol"`
	Trades []InsiderTrade `json:"trades"`
}

// ParseInsiderTrades builds InsiderTrades from the raw upstream JSON,
// shaped {"insider": [ {...}, ... ]}.
func ParseInsiderTrades(raw json.RawMessage, symbol string) *InsiderTrades {
	root := asObject(raw)
	rows := asArray(root["insider"])
	if rows == nil {
		rows = asArray(raw)
	}

	trades := make([]InsiderTrade, 0, len(rows))
	for _, row := range rows {
		obj := asObject(row)
		trades = append(trades, InsiderTrade{
			TradeDate:        strField(obj, "trade_date"),
			InsiderName:      strField(obj, "insider_name"),
			InsiderTitle:     strField(obj, "insider_title"),
			TransactionType:  strField(obj, "transaction_type"),
			Shares:           numField(obj, "shares"),
			Price:            numField(obj, "price"),
			Value:            numField(obj, "value"),
			SharesOwnedAfter: numField(obj, "shares_owned_after"),
			Change:           numField(obj, "change"),
		})
	}
	return &InsiderTrades{Symbol: symbol, Trades: trades}
}
