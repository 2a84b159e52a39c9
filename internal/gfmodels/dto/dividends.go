// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package dto

import "github.com/goccy/go-json"

// DividendPayment is a single historical dividend payment record.
type DividendPayment struct {
	ExDate       string  `json:"ex_date,omitempty"`
	RecordDate   string  `json:"record_date,omitempty"`
	PayDate      string  `json:"pay_date,omitempty"`
	Amount       float64 `json:"amount,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	DividendType string  `json:"dividend_type,omitempty"`
}

// DividendHistory is the payments collection from the dividends endpoint.
type DividendHistory struct {
	Symbol   string            `json:"symbol"`
	Payments []DividendPayment `json:"payments"`
}

// CurrentDividend is the current dividend snapshot.
type CurrentDividend struct {
	Symbol               string  `json:"symbol"`
	DividendsPerShareTTM float64 `json:"dividends_per_share_ttm,omitempty"`
	DividendYield        float64 `json:"dividend_yield,omitempty"`
	NextPaymentDate      string  `json:"next_payment_date,omitempty"`
	Frequency            string  `json:"frequency,omitempty"`
	Currency             string  `json:"currency,omitempty"`
}

// ParseDividendHistory builds a DividendHistory from the raw upstream
// JSON, shaped {"dividend": [ {...}, ... ]}.
func ParseDividendHistory(raw json.RawMessage, symbol string) *DividendHistory {
	root := asObject(raw)
	rows := asArray(root["dividend"])
	if rows == nil {
		rows = asArray(raw)
	}

	payments := make([]DividendPayment, 0, len(rows))
	for _, row := range rows {
		obj := asObject(row)
		payments = append(payments, DividendPayment{
			ExDate:       strField(obj, "ex_date"),
			RecordDate:   strField(obj, "record_date"),
			PayDate:      strField(obj, "pay_date"),
			Amount:       numField(obj, "amount"),
			Currency:     strField(obj, "currency"),
			DividendType: strField(obj, "dividend_type"),
		})
	}
	return &DividendHistory{Symbol: symbol, Payments: payments}
}

// ParseCurrentDividend builds a CurrentDividend from the raw upstream JSON.
func ParseCurrentDividend(raw json.RawMessage, symbol string) *CurrentDividend {
	root := asObject(raw)
	return &CurrentDividend{
		Symbol:               symbol,
		DividendsPerShareTTM: numField(root, "dividends_per_share_ttm"),
		DividendYield:        numField(root, "dividend_yield"),
		NextPaymentDate:      strField(root, "next_payment_date"),
		Frequency:            strField(root, "frequency"),
		Currency:             strField(root, "currency"),
	}
}
