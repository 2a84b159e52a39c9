// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfanalysis

import (
	"time"

	"github.com/daveblack/gurufocus-go/internal/gfmodels/dto"
)

// RiskRating is a traffic-light risk rating.
type RiskRating string

const (
	RiskRed    RiskRating = "RED"
	RiskYellow RiskRating = "YELLOW"
	RiskGreen  RiskRating = "GREEN"
)

func ratingToScore(r RiskRating) int {
	switch r {
	case RiskRed:
		return 3
	case RiskGreen:
		return 1
	default:
		return 2
	}
}

// RiskTrend is a directional trend for a risk dimension.
type RiskTrend string

const (
	TrendIncreasing RiskTrend = "INCREASING"
	TrendStable     RiskTrend = "STABLE"
	TrendDecreasing RiskTrend = "DECREASING"
	TrendUnknown    RiskTrend = "UNKNOWN"
)

// RiskMetric is a single risk metric with its rating thresholds.
type RiskMetric struct {
	Name           string
	Value          float64
	HasValue       bool
	ThresholdRed   float64
	ThresholdGreen float64
	HigherIsWorse  bool
	Interpretation string
}

// Rating computes RED/YELLOW/GREEN from the metric's thresholds.
func (m RiskMetric) Rating() RiskRating {
	if !m.HasValue {
		return RiskYellow
	}
	if m.HigherIsWorse {
		if m.Value >= m.ThresholdRed {
			return RiskRed
		}
		if m.Value <= m.ThresholdGreen {
			return RiskGreen
		}
		return RiskYellow
	}
	if m.Value <= m.ThresholdRed {
		return RiskRed
	}
	if m.Value >= m.ThresholdGreen {
		return RiskGreen
	}
	return RiskYellow
}

func newMetric(name string, value float64, hasValue bool, red, green float64, higherIsWorse bool, interpret func(float64, bool) string) RiskMetric {
	return RiskMetric{
		Name: name, Value: value, HasValue: hasValue,
		ThresholdRed: red, ThresholdGreen: green, HigherIsWorse: higherIsWorse,
		Interpretation: interpret(value, hasValue),
	}
}

func dimensionRating(metrics []RiskMetric) RiskRating {
	var scores []int
	for _, m := range metrics {
		if m.HasValue {
			scores = append(scores, ratingToScore(m.Rating()))
		}
	}
	if len(scores) == 0 {
		return RiskYellow
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := float64(sum) / float64(len(scores))
	switch {
	case avg >= 2.5:
		return RiskRed
	case avg >= 1.5:
		return RiskYellow
	default:
		return RiskGreen
	}
}

// FinancialRisk assesses leverage, solvency, and bankruptcy probability.
type FinancialRisk struct {
	AltmanZScore     RiskMetric
	DebtToEquity     RiskMetric
	InterestCoverage RiskMetric
	CurrentRatio     RiskMetric
	DebtToEBITDA     RiskMetric
	Trend            RiskTrend
}

func (f FinancialRisk) OverallRating() RiskRating {
	return dimensionRating([]RiskMetric{f.AltmanZScore, f.DebtToEquity, f.InterestCoverage, f.CurrentRatio, f.DebtToEBITDA})
}

func (f FinancialRisk) KeyConcern() string {
	switch {
	case f.AltmanZScore.Rating() == RiskRed:
		return "Bankruptcy risk (Z-Score in distress zone)"
	case f.InterestCoverage.Rating() == RiskRed:
		return "Debt servicing risk (low interest coverage)"
	case f.DebtToEquity.Rating() == RiskRed:
		return "High leverage (elevated D/E ratio)"
	default:
		return ""
	}
}

// QualityRisk assesses business fundamentals and earnings quality.
type QualityRisk struct {
	PiotroskiScore RiskMetric
	GFScore        RiskMetric
	BeneishMScore  RiskMetric
	ROEConsistency RiskMetric
	Trend          RiskTrend
}

func (q QualityRisk) OverallRating() RiskRating {
	return dimensionRating([]RiskMetric{q.PiotroskiScore, q.GFScore, q.BeneishMScore, q.ROEConsistency})
}

func (q QualityRisk) KeyConcern() string {
	switch {
	case q.BeneishMScore.Rating() == RiskRed:
		return "Earnings manipulation risk (M-Score above threshold)"
	case q.PiotroskiScore.Rating() == RiskRed:
		return "Weak fundamentals (low Piotroski score)"
	case q.GFScore.Rating() == RiskRed:
		return "Below-average quality (low GF Score)"
	default:
		return ""
	}
}

// GrowthRisk assesses revenue/earnings trajectory and sustainability.
type GrowthRisk struct {
	RevenueGrowth3Y           RiskMetric
	EPSGrowth3Y               RiskMetric
	FCFGrowth3Y               RiskMetric
	RevenueGrowthConsistency  RiskMetric
	Trend                     RiskTrend
}

func (g GrowthRisk) OverallRating() RiskRating {
	return dimensionRating([]RiskMetric{g.RevenueGrowth3Y, g.EPSGrowth3Y, g.FCFGrowth3Y, g.RevenueGrowthConsistency})
}

func (g GrowthRisk) KeyConcern() string {
	switch {
	case g.RevenueGrowth3Y.Rating() == RiskRed:
		return "Revenue decline (negative 3Y growth)"
	case g.EPSGrowth3Y.Rating() == RiskRed:
		return "Earnings decline (negative 3Y EPS growth)"
	case g.FCFGrowth3Y.Rating() == RiskRed:
		return "Cash flow deterioration (negative FCF growth)"
	default:
		return ""
	}
}

// ValuationRisk assesses price against intrinsic value and margin of safety.
type ValuationRisk struct {
	PriceToGFValue  RiskMetric
	PEGRatio        RiskMetric
	PEVsHistorical  RiskMetric
	MarginOfSafety  RiskMetric
	Trend           RiskTrend
}

func (v ValuationRisk) OverallRating() RiskRating {
	return dimensionRating([]RiskMetric{v.PriceToGFValue, v.PEGRatio, v.PEVsHistorical, v.MarginOfSafety})
}

func (v ValuationRisk) KeyConcern() string {
	switch {
	case v.PriceToGFValue.Rating() == RiskRed:
		return "Overvalued vs intrinsic value (price > GF Value)"
	case v.PEGRatio.Rating() == RiskRed:
		return "Expensive relative to growth (high PEG)"
	case v.MarginOfSafety.Rating() == RiskRed:
		return "No margin of safety (trading above fair value)"
	default:
		return ""
	}
}

// MarketRisk assesses beta, volatility, and price drawdown.
type MarketRisk struct {
	Beta             RiskMetric
	Volatility1Y     RiskMetric
	DrawdownFromHigh RiskMetric
	Trend            RiskTrend
}

func (m MarketRisk) OverallRating() RiskRating {
	return dimensionRating([]RiskMetric{m.Beta, m.Volatility1Y, m.DrawdownFromHigh})
}

func (m MarketRisk) KeyConcern() string {
	switch {
	case m.Beta.Rating() == RiskRed:
		return "High systematic risk (elevated beta)"
	case m.Volatility1Y.Rating() == RiskRed:
		return "High price volatility"
	case m.DrawdownFromHigh.Rating() == RiskRed:
		return "Significant drawdown from recent high"
	default:
		return ""
	}
}

// RiskMatrix is a quick-reference grid of per-dimension ratings.
type RiskMatrix struct {
	Financial RiskRating
	Quality   RiskRating
	Growth    RiskRating
	Valuation RiskRating
	Market    RiskRating
}

// RiskSummary is the overall weighted risk summary.
type RiskSummary struct {
	OverallRating RiskRating
	OverallScore  float64
	RedFlags      []string
	GreenFlags    []string
}

// RiskAnalysis is the complete five-dimension quantitative risk
// analysis for a stock.
type RiskAnalysis struct {
	Symbol           string
	CompanyName      string
	AnalysisDate     string
	Financial        FinancialRisk
	Quality          QualityRisk
	Growth           GrowthRisk
	Valuation        ValuationRisk
	Market           MarketRisk
	Summary          RiskSummary
	Matrix           RiskMatrix
	MetricsAvailable int
	MetricsTotal     int
}

// ComputeRisk computes a complete quantitative risk analysis from
// already-fetched summary and key-ratio DTOs.
func ComputeRisk(symbol string, summary *dto.StockSummary, keyratios *dto.KeyRatios) RiskAnalysis {
	analysis := RiskAnalysis{
		Symbol:       symbol,
		AnalysisDate: time.Now().UTC().Format("2006-01-02"),
		MetricsTotal: 20,
	}
	if keyratios != nil {
		analysis.CompanyName = keyratios.CompanyName
	}

	analysis.Financial = buildFinancialRisk(keyratios)
	analysis.Quality = buildQualityRisk(keyratios, summary)
	analysis.Growth = buildGrowthRisk(keyratios)
	analysis.Valuation = buildValuationRisk(keyratios, summary)
	analysis.Market = buildMarketRisk(keyratios)

	analysis.Matrix = RiskMatrix{
		Financial: analysis.Financial.OverallRating(),
		Quality:   analysis.Quality.OverallRating(),
		Growth:    analysis.Growth.OverallRating(),
		Valuation: analysis.Valuation.OverallRating(),
		Market:    analysis.Market.OverallRating(),
	}
	analysis.Summary = buildRiskSummary(analysis)
	analysis.MetricsAvailable = countAvailableMetrics(analysis)

	return analysis
}

func interpretZScore(v float64, has bool) string {
	if !has {
		return ""
	}
	if v > 2.99 {
		return "Safe zone"
	}
	if v >= 1.81 {
		return "Grey zone"
	}
	return "Distress zone"
}

func interpretDebtEquity(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v <= 0.5:
		return "Conservative leverage"
	case v <= 1.0:
		return "Moderate leverage"
	case v <= 1.5:
		return "Elevated leverage"
	default:
		return "High leverage"
	}
}

func interpretInterestCoverage(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v >= 5:
		return "Strong coverage"
	case v >= 2:
		return "Adequate coverage"
	default:
		return "Weak coverage"
	}
}

func interpretCurrentRatio(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v >= 1.5:
		return "Strong liquidity"
	case v >= 1.0:
		return "Adequate liquidity"
	default:
		return "Weak liquidity"
	}
}

func interpretDebtEBITDA(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v <= 2:
		return "Low debt burden"
	case v <= 4:
		return "Moderate debt burden"
	default:
		return "High debt burden"
	}
}

func buildFinancialRisk(keyratios *dto.KeyRatios) FinancialRisk {
	var de, ic, cr, deEBITDA float64
	var hasDE, hasIC, hasCR, hasDEEBITDA bool
	var altman float64
	var hasAltman bool

	if keyratios != nil {
		altman, hasAltman = keyratios.AltmanZScore, keyratios.AltmanZScore != 0
		if keyratios.Solvency != nil {
			de, hasDE = keyratios.Solvency.DebtToEquity, keyratios.Solvency.DebtToEquity != 0
			ic, hasIC = keyratios.Solvency.InterestCoverage, keyratios.Solvency.InterestCoverage != 0
			deEBITDA, hasDEEBITDA = keyratios.Solvency.DebtToEBITDA, keyratios.Solvency.DebtToEBITDA != 0
		}
		if keyratios.Liquidity != nil {
			cr, hasCR = keyratios.Liquidity.CurrentRatio, keyratios.Liquidity.CurrentRatio != 0
		}
	}

	return FinancialRisk{
		AltmanZScore:     newMetric("Altman Z-Score", altman, hasAltman, 1.81, 2.99, false, interpretZScore),
		DebtToEquity:     newMetric("Debt-to-Equity", de, hasDE, 1.5, 0.5, true, interpretDebtEquity),
		InterestCoverage: newMetric("Interest Coverage", ic, hasIC, 2.0, 5.0, false, interpretInterestCoverage),
		CurrentRatio:     newMetric("Current Ratio", cr, hasCR, 1.0, 1.5, false, interpretCurrentRatio),
		DebtToEBITDA:     newMetric("Debt-to-EBITDA", deEBITDA, hasDEEBITDA, 4.0, 2.0, true, interpretDebtEBITDA),
		Trend:            TrendUnknown,
	}
}

func interpretPiotroski(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v >= 7:
		return "Strong fundamentals"
	case v >= 4:
		return "Mixed fundamentals"
	default:
		return "Weak fundamentals"
	}
}

func interpretGFScore(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v >= 75:
		return "High quality"
	case v >= 50:
		return "Average quality"
	default:
		return "Below average"
	}
}

func interpretBeneish(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v < -2.22:
		return "Unlikely manipulator"
	case v <= -1.78:
		return "Inconclusive"
	default:
		return "Possible manipulator"
	}
}

func interpretROE(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v >= 15:
		return "Strong profitability"
	case v >= 10:
		return "Adequate profitability"
	case v >= 5:
		return "Low profitability"
	default:
		return "Weak profitability"
	}
}

func buildQualityRisk(keyratios *dto.KeyRatios, summary *dto.StockSummary) QualityRisk {
	var piotroski float64
	var hasPiotroski bool
	var beneish float64
	var hasBeneish bool
	var roe float64
	var hasROE bool
	var gfScore float64
	var hasGFScore bool

	if keyratios != nil {
		piotroski, hasPiotroski = float64(keyratios.PiotroskiScore), keyratios.PiotroskiScore != 0
		beneish, hasBeneish = keyratios.BeneishMScore, keyratios.BeneishMScore != 0
		if keyratios.Profitability != nil {
			roe, hasROE = keyratios.Profitability.ROE, keyratios.Profitability.ROE != 0
		}
	}
	if summary != nil && summary.Quality != nil {
		gfScore, hasGFScore = float64(summary.Quality.GFScore), summary.Quality.GFScore != 0
	}

	return QualityRisk{
		PiotroskiScore: newMetric("Piotroski F-Score", piotroski, hasPiotroski, 3, 7, false, interpretPiotroski),
		GFScore:        newMetric("GF Score", gfScore, hasGFScore, 50, 75, false, interpretGFScore),
		BeneishMScore:  newMetric("Beneish M-Score", beneish, hasBeneish, -1.78, -2.22, true, interpretBeneish),
		ROEConsistency: newMetric("ROE", roe, hasROE, 5, 15, false, interpretROE),
		Trend:          TrendUnknown,
	}
}

func interpretGrowth(metric string) func(float64, bool) string {
	return func(v float64, has bool) string {
		if !has {
			return ""
		}
		switch {
		case v >= 15:
			return "Strong " + metric + " growth"
		case v >= 5:
			return "Moderate " + metric + " growth"
		case v >= 0:
			return "Flat " + metric
		default:
			return "Declining " + metric
		}
	}
}

func interpretMomentum(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v > 5:
		return "Accelerating"
	case v > -5:
		return "Stable"
	default:
		return "Decelerating"
	}
}

func buildGrowthRisk(keyratios *dto.KeyRatios) GrowthRisk {
	var rev3y, eps3y, fcf3y, rev1y float64
	var hasRev3y, hasEPS3y, hasFCF3y, hasRev1y bool

	if keyratios != nil && keyratios.Growth != nil {
		g := keyratios.Growth
		rev3y, hasRev3y = g.RevenueGrowth3Y, g.RevenueGrowth3Y != 0
		eps3y, hasEPS3y = g.EPSGrowth3Y, g.EPSGrowth3Y != 0
		fcf3y, hasFCF3y = g.FCFGrowth3Y, g.FCFGrowth3Y != 0
		rev1y, hasRev1y = g.RevenueGrowth1Y, g.RevenueGrowth1Y != 0
	}

	var momentum float64
	hasMomentum := hasRev1y && hasRev3y
	if hasMomentum {
		momentum = rev1y - rev3y
	}

	trend := TrendUnknown
	if hasMomentum {
		switch {
		case rev1y > rev3y:
			trend = TrendDecreasing
		case rev1y < rev3y-10:
			trend = TrendIncreasing
		default:
			trend = TrendStable
		}
	}

	return GrowthRisk{
		RevenueGrowth3Y:          newMetric("Revenue Growth (3Y)", rev3y, hasRev3y, -5, 10, false, interpretGrowth("Revenue")),
		EPSGrowth3Y:              newMetric("EPS Growth (3Y)", eps3y, hasEPS3y, -10, 15, false, interpretGrowth("EPS")),
		FCFGrowth3Y:              newMetric("FCF Growth (3Y)", fcf3y, hasFCF3y, -15, 10, false, interpretGrowth("FCF")),
		RevenueGrowthConsistency: newMetric("Revenue Momentum", momentum, hasMomentum, -20, 0, false, interpretMomentum),
		Trend:                    trend,
	}
}

func interpretPriceToValue(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v < 0.8:
		return "Significantly undervalued"
	case v < 1.0:
		return "Modestly undervalued"
	case v <= 1.1:
		return "Fairly valued"
	case v <= 1.3:
		return "Modestly overvalued"
	default:
		return "Significantly overvalued"
	}
}

func interpretPEG(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v < 1:
		return "Cheap relative to growth"
	case v <= 1.5:
		return "Fair relative to growth"
	case v <= 2:
		return "Elevated relative to growth"
	default:
		return "Expensive relative to growth"
	}
}

func interpretPEVsHistory(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v < 0.8:
		return "Below historical average"
	case v <= 1.2:
		return "Near historical average"
	default:
		return "Above historical average"
	}
}

func interpretMOS(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v >= 30:
		return "Large margin of safety"
	case v >= 10:
		return "Moderate margin of safety"
	case v >= 0:
		return "Minimal margin of safety"
	default:
		return "Negative margin of safety"
	}
}

func buildValuationRisk(keyratios *dto.KeyRatios, summary *dto.StockSummary) ValuationRisk {
	var currentPrice, gfValue, peg, peCurrent, peHistorical float64
	var hasPriceToGF, hasPEG, hasPEVsHist bool

	if summary != nil && summary.Price != nil {
		currentPrice = summary.Price.Current
	}
	if keyratios != nil && keyratios.Valuation != nil {
		gfValue = keyratios.Valuation.GFValue
		peg = keyratios.Valuation.PEGRatio
		peCurrent = keyratios.Valuation.PERatio
	}
	hasPEG = peg != 0

	var priceToGF float64
	if currentPrice != 0 && gfValue > 0 {
		priceToGF = currentPrice / gfValue
		hasPriceToGF = true
	}

	if summary != nil && summary.Ratios != nil && summary.Ratios.PETTM != nil && summary.Ratios.PETTM.His != nil {
		peHistorical = summary.Ratios.PETTM.His.Med
	}
	var peVsHist float64
	if peCurrent != 0 && peHistorical > 0 {
		peVsHist = peCurrent / peHistorical
		hasPEVsHist = true
	}

	var mos float64
	if hasPriceToGF {
		mos = (1 - priceToGF) * 100
	}

	return ValuationRisk{
		PriceToGFValue: newMetric("Price/GF Value", priceToGF, hasPriceToGF, 1.3, 0.8, true, interpretPriceToValue),
		PEGRatio:       newMetric("PEG Ratio", peg, hasPEG, 2.0, 1.0, true, interpretPEG),
		PEVsHistorical: newMetric("P/E vs Historical", peVsHist, hasPEVsHist, 1.5, 0.8, true, interpretPEVsHistory),
		MarginOfSafety: newMetric("Margin of Safety", mos, hasPriceToGF, -10, 30, false, interpretMOS),
		Trend:          TrendUnknown,
	}
}

func interpretBeta(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v < 0.8:
		return "Low systematic risk"
	case v <= 1.2:
		return "Market-like risk"
	case v <= 1.5:
		return "Above-market risk"
	default:
		return "High systematic risk"
	}
}

func interpretVolatility(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v < 25:
		return "Low volatility"
	case v < 40:
		return "Moderate volatility"
	case v < 50:
		return "Elevated volatility"
	default:
		return "High volatility"
	}
}

func interpretDrawdown(v float64, has bool) string {
	if !has {
		return ""
	}
	switch {
	case v < 10:
		return "Near highs"
	case v < 20:
		return "Modest pullback"
	case v < 40:
		return "Significant drawdown"
	default:
		return "Deep drawdown"
	}
}

func buildMarketRisk(keyratios *dto.KeyRatios) MarketRisk {
	var beta, vol, current, high52w float64
	var hasBeta, hasVol, hasDrawdown bool

	if keyratios != nil && keyratios.Price != nil {
		beta, hasBeta = keyratios.Price.Beta, keyratios.Price.Beta != 0
		vol, hasVol = keyratios.Price.Volatility1Y, keyratios.Price.Volatility1Y != 0
		current = keyratios.Price.CurrentPrice
		high52w = keyratios.Price.High52Week
	}

	var drawdown float64
	if current != 0 && high52w > 0 {
		drawdown = (high52w - current) / high52w * 100
		hasDrawdown = true
	}

	return MarketRisk{
		Beta:             newMetric("Beta", beta, hasBeta, 1.5, 0.8, true, interpretBeta),
		Volatility1Y:     newMetric("1Y Volatility", vol, hasVol, 50, 25, true, interpretVolatility),
		DrawdownFromHigh: newMetric("Drawdown from 52W High", drawdown, hasDrawdown, 40, 15, true, interpretDrawdown),
		Trend:            TrendUnknown,
	}
}

func buildRiskSummary(a RiskAnalysis) RiskSummary {
	ratings := []RiskRating{a.Financial.OverallRating(), a.Quality.OverallRating(), a.Growth.OverallRating(), a.Valuation.OverallRating(), a.Market.OverallRating()}
	sum := 0
	for _, r := range ratings {
		sum += ratingToScore(r)
	}
	avg := float64(sum) / float64(len(ratings))

	overall := RiskGreen
	switch {
	case avg >= 2.5:
		overall = RiskRed
	case avg >= 1.5:
		overall = RiskYellow
	}

	var redFlags, greenFlags []string
	if c := a.Financial.KeyConcern(); c != "" {
		redFlags = append(redFlags, c)
	}
	if c := a.Quality.KeyConcern(); c != "" {
		redFlags = append(redFlags, c)
	}
	if c := a.Growth.KeyConcern(); c != "" {
		redFlags = append(redFlags, c)
	}
	if c := a.Valuation.KeyConcern(); c != "" {
		redFlags = append(redFlags, c)
	}
	if c := a.Market.KeyConcern(); c != "" {
		redFlags = append(redFlags, c)
	}

	if a.Financial.OverallRating() == RiskGreen {
		greenFlags = append(greenFlags, "Strong financial position")
	}
	if a.Quality.OverallRating() == RiskGreen {
		greenFlags = append(greenFlags, "High-quality business metrics")
	}
	if a.Growth.OverallRating() == RiskGreen {
		greenFlags = append(greenFlags, "Healthy growth trajectory")
	}
	if a.Valuation.OverallRating() == RiskGreen {
		greenFlags = append(greenFlags, "Attractive valuation")
	}
	if a.Market.OverallRating() == RiskGreen {
		greenFlags = append(greenFlags, "Low market/volatility risk")
	}

	return RiskSummary{
		OverallRating: overall,
		OverallScore:  round2(avg),
		RedFlags:      redFlags,
		GreenFlags:    greenFlags,
	}
}

func countAvailableMetrics(a RiskAnalysis) int {
	count := 0
	metrics := []RiskMetric{
		a.Financial.AltmanZScore, a.Financial.DebtToEquity, a.Financial.InterestCoverage, a.Financial.CurrentRatio, a.Financial.DebtToEBITDA,
		a.Quality.PiotroskiScore, a.Quality.GFScore, a.Quality.BeneishMScore, a.Quality.ROEConsistency,
		a.Growth.RevenueGrowth3Y, a.Growth.EPSGrowth3Y, a.Growth.FCFGrowth3Y, a.Growth.RevenueGrowthConsistency,
		a.Valuation.PriceToGFValue, a.Valuation.PEGRatio, a.Valuation.PEVsHistorical, a.Valuation.MarginOfSafety,
		a.Market.Beta, a.Market.Volatility1Y, a.Market.DrawdownFromHigh,
	}
	for _, m := range metrics {
		if m.HasValue {
			count++
		}
	}
	return count
}
