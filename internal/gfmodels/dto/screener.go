// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package dto

import "github.com/goccy/go-json"

// FilterOperator is a screener filter comparison operator.
type FilterOperator string

const (
	OpEqual        FilterOperator = "eq"
	OpNotEqual     FilterOperator = "ne"
	OpGreaterThan  FilterOperator = "gt"
	OpGreaterEqual FilterOperator = "gte"
	OpLessThan     FilterOperator = "lt"
	OpLessEqual    FilterOperator = "lte"
	OpBetween      FilterOperator = "between"
	OpIn           FilterOperator = "in"
)

// ScreenerFilter narrows the screener to stocks whose Field compares
// to Value per Operator.
type ScreenerFilter struct {
	Field    string         `json:"field" validate:"required"`
	Operator FilterOperator `json:"operator" validate:"required,oneof=eq ne gt gte lt lte between in"`
	Value    any            `json:"value" validate:"required"`
}

// ScreenerSort orders screener results by Field.
type ScreenerSort struct {
	Field     string `json:"field"`
	Ascending bool   `json:"ascending"`
}

// ScreenerRequest is the POST body for the screener endpoint. Struct
// tags are enforced by gfmodels.ValidateStruct before the request
// reaches the pipeline, the same validate-before-dispatch shape
// cartographus applies to its own inbound API request bodies.
type ScreenerRequest struct {
	Filters      []ScreenerFilter `json:"filters,omitempty" validate:"max=50,dive"`
	Sort         *ScreenerSort    `json:"sort,omitempty" validate:"omitempty"`
	Limit        int              `json:"limit" validate:"min=1,max=1000"`
	Offset       int              `json:"offset" validate:"min=0"`
	Exchange     string           `json:"exchange,omitempty"`
	Sector       string           `json:"sector,omitempty"`
	Industry     string           `json:"industry,omitempty"`
	Country      string           `json:"country,omitempty"`
	MarketCapMin float64          `json:"market_cap_min,omitempty" validate:"gte=0"`
	MarketCapMax float64          `json:"market_cap_max,omitempty" validate:"gte=0"`
}

// NewScreenerRequest returns a ScreenerRequest with the documented
// defaults applied (limit 100, offset 0).
func NewScreenerRequest() ScreenerRequest {
	return ScreenerRequest{Limit: 100, Offset: 0}
}

// ScreenerStock is a single row of screener results.
type ScreenerStock struct {
	Symbol            string  `json:"symbol"`
	CompanyName       string  `json:"company_name,omitempty"`
	Exchange          string  `json:"exchange,omitempty"`
	Sector            string  `json:"sector,omitempty"`
	Industry          string  `json:"industry,omitempty"`
	Country           string  `json:"country,omitempty"`
	Price             float64 `json:"price,omitempty"`
	MarketCap         float64 `json:"market_cap,omitempty"`
	Volume            int     `json:"volume,omitempty"`
	PERatio           float64 `json:"pe_ratio,omitempty"`
	PBRatio           float64 `json:"pb_ratio,omitempty"`
	PSRatio           float64 `json:"ps_ratio,omitempty"`
	PEGRatio          float64 `json:"peg_ratio,omitempty"`
	EVEBITDA          float64 `json:"ev_ebitda,omitempty"`
	GFScore           int     `json:"gf_score,omitempty"`
	GFValue           float64 `json:"gf_value,omitempty"`
	FinancialStrength int     `json:"financial_strength,omitempty"`
	ProfitabilityRank int     `json:"profitability_rank,omitempty"`
	ROE               float64 `json:"roe,omitempty"`
	ROIC              float64 `json:"roic,omitempty"`
}

// ScreenerResult is the response from the screener endpoint.
type ScreenerResult struct {
	Stocks     []ScreenerStock `json:"stocks"`
	TotalCount int             `json:"total_count"`
}

// ParseScreenerResult builds a ScreenerResult from the raw upstream
// JSON, shaped {"stocks": [ {...}, ... ], "total_count": N}.
func ParseScreenerResult(raw json.RawMessage) *ScreenerResult {
	root := asObject(raw)
	rows := asArray(root["stocks"])
	if rows == nil {
		rows = asArray(raw)
	}

	stocks := make([]ScreenerStock, 0, len(rows))
	for _, row := range rows {
		obj := asObject(row)
		stocks = append(stocks, ScreenerStock{
			Symbol:            strField(obj, "symbol"),
			CompanyName:       strField(obj, "company_name"),
			Exchange:          strField(obj, "exchange"),
			Sector:            strField(obj, "sector"),
			Industry:          strField(obj, "industry"),
			Country:           strField(obj, "country"),
			Price:             numField(obj, "price"),
			MarketCap:         numField(obj, "market_cap"),
			Volume:            intField(obj, "volume"),
			PERatio:           numField(obj, "pe_ratio"),
			PBRatio:           numField(obj, "pb_ratio"),
			PSRatio:           numField(obj, "ps_ratio"),
			PEGRatio:          numField(obj, "peg_ratio"),
			EVEBITDA:          numField(obj, "ev_ebitda"),
			GFScore:           intField(obj, "gf_score"),
			GFValue:           numField(obj, "gf_value"),
			FinancialStrength: intField(obj, "financial_strength"),
			ProfitabilityRank: intField(obj, "profitability_rank"),
			ROE:               numField(obj, "roe"),
			ROIC:              numField(obj, "roic"),
		})
	}

	totalCount := intField(root, "total_count")
	if totalCount == 0 {
		totalCount = len(stocks)
	}
	return &ScreenerResult{Stocks: stocks, TotalCount: totalCount}
}
