// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package dto

import "github.com/goccy/go-json"

// EstimatePeriod holds consensus analyst estimates for one forward period.
type EstimatePeriod struct {
	Period              string  `json:"period"`
	RevenueEstimate     float64 `json:"revenue_estimate,omitempty"`
	EBITEstimate        float64 `json:"ebit_estimate,omitempty"`
	EBITDAEstimate      float64 `json:"ebitda_estimate,omitempty"`
	NetIncomeEstimate   float64 `json:"net_income_estimate,omitempty"`
	EPSEstimate         float64 `json:"eps_estimate,omitempty"`
	EPSNRIEstimate      float64 `json:"eps_nri_estimate,omitempty"`
	DividendEstimate    float64 `json:"dividend_estimate,omitempty"`
	PETTMEstimate       float64 `json:"pe_ttm_estimate,omitempty"`
}

// GrowthEstimates holds forward-looking growth rate estimates.
type GrowthEstimates struct {
	LongTermGrowthRate        float64 `json:"long_term_growth_rate,omitempty"`
	LongTermRevenueGrowthRate float64 `json:"long_term_revenue_growth_rate,omitempty"`
	EPSGrowth                 float64 `json:"eps_growth,omitempty"`
	RevenueGrowth             float64 `json:"revenue_growth,omitempty"`
	EBITGrowth                float64 `json:"ebit_growth,omitempty"`
	EBITDAGrowth              float64 `json:"ebitda_growth,omitempty"`
	DividendGrowth            float64 `json:"dividend_growth,omitempty"`
}

// AnalystEstimates is the estimates endpoint response.
type AnalystEstimates struct {
	Symbol             string           `json:"symbol"`
	AnnualEstimates    []EstimatePeriod `json:"annual_estimates"`
	QuarterlyEstimates []EstimatePeriod `json:"quarterly_estimates"`
	GrowthEstimates    *GrowthEstimates `json:"growth_estimates,omitempty"`
}

func parseEstimatePeriods(rows []json.RawMessage) []EstimatePeriod {
	periods := make([]EstimatePeriod, 0, len(rows))
	for _, row := range rows {
		obj := asObject(row)
		periods = append(periods, EstimatePeriod{
			Period:            strField(obj, "period"),
			RevenueEstimate:   numField(obj, "revenue_estimate"),
			EBITEstimate:      numField(obj, "ebit_estimate"),
			EBITDAEstimate:    numField(obj, "ebitda_estimate"),
			NetIncomeEstimate: numField(obj, "net_income_estimate"),
			EPSEstimate:       numField(obj, "eps_estimate"),
			EPSNRIEstimate:    numField(obj, "eps_nri_estimate"),
			DividendEstimate:  numField(obj, "dividend_estimate"),
			PETTMEstimate:     numField(obj, "pe_ttm_estimate"),
		})
	}
	return periods
}

// ParseAnalystEstimates builds AnalystEstimates from the raw upstream
// JSON, shaped {"estimate": {"annual": [...], "quarterly": [...], "growth": {...}}}.
func ParseAnalystEstimates(raw json.RawMessage, symbol string) *AnalystEstimates {
	root := asObject(raw)
	estimate := root
	if inner, ok := root["estimate"]; ok {
		estimate = asObject(inner)
	}

	growth := asObject(estimate["growth"])
	var growthPtr *GrowthEstimates
	if len(growth) > 0 {
		growthPtr = &GrowthEstimates{
			LongTermGrowthRate:        numField(growth, "long_term_growth_rate"),
			LongTermRevenueGrowthRate: numField(growth, "long_term_revenue_growth_rate"),
			EPSGrowth:                 numField(growth, "eps_growth"),
			RevenueGrowth:             numField(growth, "revenue_growth"),
			EBITGrowth:                numField(growth, "ebit_growth"),
			EBITDAGrowth:              numField(growth, "ebitda_growth"),
			DividendGrowth:            numField(growth, "dividend_growth"),
		}
	}

	return &AnalystEstimates{
		Symbol:             symbol,
		AnnualEstimates:    parseEstimatePeriods(asArray(estimate["annual"])),
		QuarterlyEstimates: parseEstimatePeriods(asArray(estimate["quarterly"])),
		GrowthEstimates:    growthPtr,
	}
}
