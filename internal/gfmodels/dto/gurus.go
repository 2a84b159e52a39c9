// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package dto

import "github.com/goccy/go-json"

// StockGuruPick is a single guru transaction against one stock.
type StockGuruPick struct {
	Guru          string `json:"guru"`
	GuruID        string `json:"guru_id"`
	Date          string `json:"date"`
	Action        string `json:"action"`
	Impact        string `json:"impact,omitempty"`
	PriceMin      string `json:"price_min,omitempty"`
	PriceMax      string `json:"price_max,omitempty"`
	AvgPrice      string `json:"avg_price,omitempty"`
	Comment       string `json:"comment,omitempty"`
	CurrentShares string `json:"current_shares,omitempty"`
}

// StockGuruHolding is a guru's current reported position in one stock.
type StockGuruHolding struct {
	Guru          string `json:"guru"`
	GuruID        string `json:"guru_id"`
	Date          string `json:"date"`
	CurrentShares string `json:"current_shares,omitempty"`
	PercShares    string `json:"perc_shares,omitempty"`
	PercAssets    string `json:"perc_assets,omitempty"`
	Change        string `json:"change,omitempty"`
}

// StockGurusResponse is the picks and holdings collection from the
// gurus endpoint, scoped to one stock.
type StockGurusResponse struct {
	Symbol   string             `json:"symbol"`
	Picks    []StockGuruPick    `json:"picks"`
	Holdings []StockGuruHolding `json:"holdings"`
}

// GuruInfo is one entry in the gurus/list directory.
type GuruInfo struct {
	GuruID         string  `json:"guru_id"`
	Name           string  `json:"name"`
	Firm           string  `json:"firm,omitempty"`
	PortfolioValue float64 `json:"portfolio_value,omitempty"`
	NumHoldings    int     `json:"num_holdings,omitempty"`
	Turnover       float64 `json:"turnover,omitempty"`
	AvgReturn      float64 `json:"avg_return,omitempty"`
	LastUpdated    string  `json:"last_updated,omitempty"`
	ProfileURL     string  `json:"profile_url,omitempty"`
}

// GuruList is the gurus/list directory response.
type GuruList struct {
	Gurus      []GuruInfo `json:"gurus"`
	TotalCount int        `json:"total_count"`
}

// GuruHolding is one position within a guru's portfolio.
type GuruHolding struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name,omitempty"`
	Shares      int    `json:"shares,omitempty"`
}

// ParseStockGurusResponse builds a StockGurusResponse from the raw
// upstream JSON, shaped {"gurus": {"picks": [...], "holdings": [...]}}.
func ParseStockGurusResponse(raw json.RawMessage, symbol string) *StockGurusResponse {
	root := asObject(raw)
	gurus := root
	if inner, ok := root["gurus"]; ok {
		gurus = asObject(inner)
	}

	picks := make([]StockGuruPick, 0)
	for _, row := range asArray(gurus["picks"]) {
		obj := asObject(row)
		picks = append(picks, StockGuruPick{
			Guru:          strField(obj, "guru"),
			GuruID:        strField(obj, "guru_id"),
			Date:          strField(obj, "date"),
			Action:        strField(obj, "action"),
			Impact:        strField(obj, "impact"),
			PriceMin:      strField(obj, "price_min"),
			PriceMax:      strField(obj, "price_max"),
			AvgPrice:      strField(obj, "avg_price"),
			Comment:       strField(obj, "comment"),
			CurrentShares: strField(obj, "current_shares"),
		})
	}

	holdings := make([]StockGuruHolding, 0)
	for _, row := range asArray(gurus["holdings"]) {
		obj := asObject(row)
		holdings = append(holdings, StockGuruHolding{
			Guru:          strField(obj, "guru"),
			GuruID:        strField(obj, "guru_id"),
			Date:          strField(obj, "date"),
			CurrentShares: strField(obj, "current_shares"),
			PercShares:    strField(obj, "perc_shares"),
			PercAssets:    strField(obj, "perc_assets"),
			Change:        strField(obj, "change"),
		})
	}

	return &StockGurusResponse{Symbol: symbol, Picks: picks, Holdings: holdings}
}

// ParseGuruList builds a GuruList from the raw upstream JSON, shaped
// {"gurus": [ {...}, ... ]}.
func ParseGuruList(raw json.RawMessage) *GuruList {
	root := asObject(raw)
	rows := asArray(root["gurus"])
	if rows == nil {
		rows = asArray(raw)
	}
	gurus := make([]GuruInfo, 0, len(rows))
	for _, row := range rows {
		obj := asObject(row)
		gurus = append(gurus, GuruInfo{
			GuruID:         strField(obj, "guru_id"),
			Name:           strField(obj, "name"),
			Firm:           strField(obj, "firm"),
			PortfolioValue: numField(obj, "portfolio_value"),
			NumHoldings:    intField(obj, "num_holdings"),
			Turnover:       numField(obj, "turnover"),
			AvgReturn:      numField(obj, "avg_return"),
			LastUpdated:    strField(obj, "last_updated"),
			ProfileURL:     strField(obj, "profile_url"),
		})
	}
	return &GuruList{Gurus: gurus, TotalCount: len(gurus)}
}

// ParseGuruHoldings builds the holding list from a guru's portfolio
// response, shaped {"holdings": [ {...}, ... ]}.
func ParseGuruHoldings(raw json.RawMessage) []GuruHolding {
	root := asObject(raw)
	rows := asArray(root["holdings"])
	if rows == nil {
		rows = asArray(raw)
	}
	holdings := make([]GuruHolding, 0, len(rows))
	for _, row := range rows {
		obj := asObject(row)
		holdings = append(holdings, GuruHolding{
			Symbol:      strField(obj, "symbol"),
			CompanyName: strField(obj, "company_name"),
			Shares:      intField(obj, "shares"),
		})
	}
	return holdings
}
