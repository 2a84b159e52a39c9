// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfanalysis

import (
	"testing"

	"github.com/daveblack/gurufocus-go/internal/gfmodels/dto"
)

func strongQualityStock() (*dto.StockSummary, *dto.KeyRatios, *dto.FinancialStatements) {
	summary := &dto.StockSummary{
		General: &dto.GeneralInfo{CompanyName: "Acme Corp", Sector: "Technology", MarketCap: 5000},
		Quality: &dto.QualityScores{GFScore: 88, FinancialStrength: 8, ProfitabilityRank: 9, GrowthRank: 8},
		Price:   &dto.PriceInfo{Current: 100},
		Valuation: &dto.ValuationMetrics{GFValue: 150, DCFFCFBased: 140, DCFEarningsBased: 130},
	}
	keyratios := &dto.KeyRatios{
		PiotroskiScore: 8,
		AltmanZScore:   3.5,
		Profitability:  &dto.ProfitabilityRatios{ROIC: 18, ROE: 22, GrossMargin: 55, OperatingMargin: 30},
		Solvency:       &dto.SolvencyRatios{DebtToEquity: 0.3, InterestCoverage: 12},
		Liquidity:      &dto.LiquidityRatios{CurrentRatio: 2.1},
		Growth:         &dto.GrowthRatios{RevenueGrowth5Y: 15, EPSGrowth5Y: 18, RevenueGrowth1Y: 14, EPSGrowth1Y: 16},
		Valuation:      &dto.ValuationRatios{PERatio: 22, GFValue: 150},
		PerShare:       &dto.PerShareData{EPSTTM: 5, FCFPerShare: 4},
		Price:          &dto.PriceMetrics{High52Week: 120, Low52Week: 80},
		Dividends:      &dto.DividendMetrics{DividendYield: 1.2},
	}
	financials := &dto.FinancialStatements{
		Periods: []dto.FinancialPeriod{
			{Period: "2025", BookValuePerShare: 20},
			{Period: "2024", BookValuePerShare: 18},
			{Period: "2023", BookValuePerShare: 16},
			{Period: "2022", BookValuePerShare: 14},
			{Period: "2021", BookValuePerShare: 12},
			{Period: "2020", BookValuePerShare: 10},
		},
	}
	return summary, keyratios, financials
}

func TestComputeQGARP_ScreenPassesAllFiveGates(t *testing.T) {
	summary, keyratios, financials := strongQualityStock()
	analysis := ComputeQGARP("ACME", summary, keyratios, financials)

	if analysis.Screen.PassCount() != 5 {
		t.Fatalf("expected all 5 screen criteria to pass, got %d: %+v", analysis.Screen.PassCount(), analysis.Screen)
	}
	if !analysis.Screen.Passed() {
		t.Error("expected screen.Passed() to be true")
	}
}

func TestComputeQGARP_DecisionGatesOnAllFourConditions(t *testing.T) {
	summary, keyratios, financials := strongQualityStock()
	analysis := ComputeQGARP("ACME", summary, keyratios, financials)

	if analysis.Decision.GateDecision != GateProceed {
		t.Errorf("expected PROCEED gate for a strong stock, got %s", analysis.Decision.GateDecision)
	}
}

func TestComputeQGARP_WeakStockIsDiscarded(t *testing.T) {
	keyratios := &dto.KeyRatios{
		Solvency:  &dto.SolvencyRatios{DebtToEquity: 2.0, InterestCoverage: 1.0},
		Valuation: &dto.ValuationRatios{PERatio: 80},
		Growth:    &dto.GrowthRatios{RevenueGrowth5Y: -5, EPSGrowth5Y: -10},
	}
	analysis := ComputeQGARP("WEAK", &dto.StockSummary{}, keyratios, &dto.FinancialStatements{})

	if analysis.Decision.GateDecision != GateDiscard {
		t.Errorf("expected DISCARD gate for a weak stock, got %s", analysis.Decision.GateDecision)
	}
	if !analysis.FinancialStrength.HighDebtFlag {
		t.Error("expected high debt flag for D/E of 2.0")
	}
}

func TestCalculateRule1_AppliesMarginOfSafety(t *testing.T) {
	rule1 := calculateRule1(5.0, 15.0)

	if rule1.BuyPrice <= 0 || rule1.BuyPrice >= rule1.StickerPrice {
		t.Fatalf("expected buy price to be a positive fraction of sticker price, got buy=%v sticker=%v", rule1.BuyPrice, rule1.StickerPrice)
	}
	if rule1.FuturePE > 40 {
		t.Errorf("future P/E must be capped at 40, got %v", rule1.FuturePE)
	}
}

func TestCalculateRule1_ZeroInputsYieldEmptyValuation(t *testing.T) {
	rule1 := calculateRule1(0, 10)
	if rule1.StickerPrice != 0 {
		t.Errorf("expected no sticker price when EPS is zero, got %v", rule1.StickerPrice)
	}
}

func TestCalculateBVGrowth_ComputesCAGROverAvailableHorizons(t *testing.T) {
	financials := &dto.FinancialStatements{
		Periods: []dto.FinancialPeriod{
			{BookValuePerShare: 20},
			{BookValuePerShare: 18},
			{BookValuePerShare: 16},
		},
	}
	m := calculateBVGrowth(financials)
	if m.Year1 <= 0 {
		t.Errorf("expected positive 1yr BV/share growth, got %v", m.Year1)
	}
	if m.Year5 != 0 {
		t.Errorf("expected no 5yr growth with only 3 periods, got %v", m.Year5)
	}
}
