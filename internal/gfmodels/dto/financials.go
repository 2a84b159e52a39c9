// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package dto

import "github.com/goccy/go-json"

// FinancialPeriod holds one reporting period's income statement,
// balance sheet, and cash flow figures.
type FinancialPeriod struct {
	Period        string  `json:"period"`
	IsPreliminary bool    `json:"is_preliminary,omitempty"`
	EPSDiluted    float64 `json:"eps_diluted,omitempty"`
	EPSWithoutNRI float64 `json:"eps_without_nri,omitempty"`
	Revenue       float64 `json:"revenue,omitempty"`
	GrossProfit   float64 `json:"gross_profit,omitempty"`
	OperatingIncome float64 `json:"operating_income,omitempty"`
	NetIncome     float64 `json:"net_income,omitempty"`
	EBITDA        float64 `json:"ebitda,omitempty"`
	TotalAssets   float64 `json:"total_assets,omitempty"`
	TotalLiabilities float64 `json:"total_liabilities,omitempty"`
	TotalEquity   float64 `json:"total_equity,omitempty"`
	TotalDebt     float64 `json:"total_debt,omitempty"`
	CashAndEquivalents float64 `json:"cash_and_equivalents,omitempty"`
	OperatingCashFlow float64 `json:"operating_cash_flow,omitempty"`
	CapitalExpenditures float64 `json:"capital_expenditures,omitempty"`
	FreeCashFlow  float64 `json:"free_cash_flow,omitempty"`
	GrossMargin   float64 `json:"gross_margin,omitempty"`
	OperatingMargin float64 `json:"operating_margin,omitempty"`
	NetMargin     float64 `json:"net_margin,omitempty"`
	BookValuePerShare float64 `json:"book_value_per_share,omitempty"`
}

// FinancialStatements is the periods collection returned by the
// financials endpoint.
type FinancialStatements struct {
	Symbol         string            `json:"symbol"`
	Currency       string            `json:"currency,omitempty"`
	PeriodType     string            `json:"period_type"`
	Periods        []FinancialPeriod `json:"periods"`
}

// ParseFinancialStatements builds FinancialStatements from the raw
// upstream JSON, shaped {"financials": {"annual": {...}, "quarterly": {...}}}.
func ParseFinancialStatements(raw json.RawMessage, symbol, periodType string) *FinancialStatements {
	root := asObject(raw)
	financials := root
	if inner, ok := root["financials"]; ok {
		financials = asObject(inner)
	}

	section := financials[periodType]
	if len(section) == 0 {
		section = financials["annual"]
	}
	rows := asArray(section)

	periods := make([]FinancialPeriod, 0, len(rows))
	for _, row := range rows {
		obj := asObject(row)
		periods = append(periods, FinancialPeriod{
			Period:              strField(obj, "period"),
			EPSDiluted:          numField(obj, "eps_diluted"),
			EPSWithoutNRI:       numField(obj, "eps_without_nri"),
			Revenue:             numField(obj, "revenue"),
			GrossProfit:         numField(obj, "gross_profit"),
			OperatingIncome:     numField(obj, "operating_income"),
			NetIncome:           numField(obj, "net_income"),
			EBITDA:              numField(obj, "ebitda"),
			TotalAssets:         numField(obj, "total_assets"),
			TotalLiabilities:    numField(obj, "total_liabilities"),
			TotalEquity:         numField(obj, "total_equity"),
			TotalDebt:           numField(obj, "total_debt"),
			CashAndEquivalents:  numField(obj, "cash_and_equivalents"),
			OperatingCashFlow:   numField(obj, "operating_cash_flow"),
			CapitalExpenditures: numField(obj, "capital_expenditures"),
			FreeCashFlow:        numField(obj, "free_cash_flow"),
			GrossMargin:         numField(obj, "gross_margin"),
			OperatingMargin:     numField(obj, "operating_margin"),
			NetMargin:           numField(obj, "net_margin"),
			BookValuePerShare:   numField(obj, "book_value_per_share"),
		})
	}

	return &FinancialStatements{
		Symbol:     symbol,
		Currency:   strField(financials, "currency"),
		PeriodType: periodType,
		Periods:    periods,
	}
}

func asArray(raw json.RawMessage) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil
	}
	return arr
}
