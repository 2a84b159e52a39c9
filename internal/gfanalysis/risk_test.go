// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfanalysis

import (
	"testing"

	"github.com/daveblack/gurufocus-go/internal/gfmodels/dto"
)

func TestComputeRisk_DistressedStockRatesRed(t *testing.T) {
	summary := &dto.StockSummary{Price: &dto.PriceInfo{Current: 100}}
	keyratios := &dto.KeyRatios{
		AltmanZScore: 1.2,
		Solvency:     &dto.SolvencyRatios{DebtToEquity: 2.5, InterestCoverage: 0.5, DebtToEBITDA: 6},
		Liquidity:    &dto.LiquidityRatios{CurrentRatio: 0.5},
	}

	analysis := ComputeRisk("DISTRESS", summary, keyratios)

	if analysis.Financial.OverallRating() != RiskRed {
		t.Errorf("expected RED financial risk rating, got %s", analysis.Financial.OverallRating())
	}
	if analysis.Financial.KeyConcern() == "" {
		t.Error("expected a key concern for a distressed balance sheet")
	}
}

func TestComputeRisk_CleanStockRatesGreen(t *testing.T) {
	summary := &dto.StockSummary{Price: &dto.PriceInfo{Current: 100}}
	keyratios := &dto.KeyRatios{
		AltmanZScore: 4.5,
		Solvency:     &dto.SolvencyRatios{DebtToEquity: 0.2, InterestCoverage: 15, DebtToEBITDA: 0.5},
		Liquidity:    &dto.LiquidityRatios{CurrentRatio: 2.5},
	}

	analysis := ComputeRisk("CLEAN", summary, keyratios)

	if analysis.Financial.OverallRating() != RiskGreen {
		t.Errorf("expected GREEN financial risk rating, got %s", analysis.Financial.OverallRating())
	}
}

func TestComputeRisk_NoDataYieldsYellowAndZeroAvailable(t *testing.T) {
	analysis := ComputeRisk("EMPTY", &dto.StockSummary{}, &dto.KeyRatios{})

	if analysis.Summary.OverallRating != RiskYellow {
		t.Errorf("expected YELLOW default rating with no data, got %s", analysis.Summary.OverallRating)
	}
	if analysis.MetricsAvailable != 0 {
		t.Errorf("expected 0 available metrics with no data, got %d", analysis.MetricsAvailable)
	}
}

func TestRiskMetric_RatingRespectsHigherIsWorseDirection(t *testing.T) {
	debtToEquity := newMetric("Debt-to-Equity", 2.0, true, 1.5, 0.5, true, interpretDebtEquity)
	if debtToEquity.Rating() != RiskRed {
		t.Errorf("expected RED for D/E of 2.0 above red threshold, got %s", debtToEquity.Rating())
	}

	interestCoverage := newMetric("Interest Coverage", 10.0, true, 2.0, 5.0, false, interpretInterestCoverage)
	if interestCoverage.Rating() != RiskGreen {
		t.Errorf("expected GREEN for interest coverage of 10 above green threshold, got %s", interestCoverage.Rating())
	}
}

func TestDimensionRating_AllYellowWhenNoMetricsHaveValues(t *testing.T) {
	rating := dimensionRating([]RiskMetric{{Name: "x", HasValue: false}})
	if rating != RiskYellow {
		t.Errorf("expected YELLOW when no metrics have values, got %s", rating)
	}
}
