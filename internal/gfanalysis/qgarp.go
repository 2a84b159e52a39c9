// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfanalysis computes read-only investment analyses from
// already-fetched endpoint DTOs. Neither analysis in this package
// issues HTTP calls of its own.
package gfanalysis

import (
	"math"
	"time"

	"github.com/daveblack/gurufocus-go/internal/gfmodels/dto"
)

// ScreenResult is the outcome of comparing a metric against its
// QGARP screening threshold.
type ScreenResult string

const (
	ScreenPass ScreenResult = "PASS"
	ScreenFail ScreenResult = "FAIL"
	ScreenNA   ScreenResult = "N/A"
)

// GateDecision is the final investment gate recommendation.
type GateDecision string

const (
	GateProceed   GateDecision = "PROCEED"
	GateWatchlist GateDecision = "WATCHLIST"
	GateDiscard   GateDecision = "DISCARD"
)

// CompanyOverview is section 1 of a QGARP analysis.
type CompanyOverview struct {
	CompanyName string
	Sector      string
	Industry    string
	MarketCap   float64
	Currency    string
	CurrentPrice float64
	High52Week  float64
	Low52Week   float64
	Description string
}

// ScreenCriterion is a single QGARP screening criterion.
type ScreenCriterion struct {
	Name      string
	Value     float64
	HasValue  bool
	Threshold string
	Result    ScreenResult
}

// QGARPScreen is section 2: the five-gate QGARP screen.
type QGARPScreen struct {
	ROIC            ScreenCriterion
	RevenueGrowth5Y ScreenCriterion
	EPSGrowth5Y     ScreenCriterion
	DebtToEquity    ScreenCriterion
	PERatio         ScreenCriterion
}

// PassCount returns how many of the five criteria passed.
func (s QGARPScreen) PassCount() int {
	count := 0
	for _, c := range []ScreenCriterion{s.ROIC, s.RevenueGrowth5Y, s.EPSGrowth5Y, s.DebtToEquity, s.PERatio} {
		if c.Result == ScreenPass {
			count++
		}
	}
	return count
}

// Passed reports whether the overall screen passed (>=4 of 5).
func (s QGARPScreen) Passed() bool { return s.PassCount() >= 4 }

// QualityScores is section 3.
type QualityScores struct {
	GFScore           int
	FinancialStrength int
	ProfitabilityRank int
	GrowthRank        int
	PiotroskiScore    int
	AltmanZScore      float64
}

// AltmanStatus interprets the Altman Z-Score.
func (q QualityScores) AltmanStatus() string {
	switch {
	case q.AltmanZScore == 0:
		return "N/A"
	case q.AltmanZScore > 2.99:
		return "Safe"
	case q.AltmanZScore >= 1.81:
		return "Grey Zone"
	default:
		return "Distress"
	}
}

// QualityAssessment summarizes overall business quality from GF Score.
func (q QualityScores) QualityAssessment() string {
	switch {
	case q.GFScore == 0:
		return "Unknown"
	case q.GFScore >= 80:
		return "Strong"
	case q.GFScore >= 60:
		return "Moderate"
	default:
		return "Weak"
	}
}

// FinancialStrength is section 4.
type FinancialStrength struct {
	DebtToEquity     float64
	DebtToEBITDA     float64
	InterestCoverage float64
	CurrentRatio     float64
	QuickRatio       float64
	CashRatio        float64
	HighDebtFlag     bool
	LowCoverageFlag  bool
}

// Verdict reports the financial strength pass/fail/caution verdict.
func (f FinancialStrength) Verdict() string {
	if f.HighDebtFlag || f.LowCoverageFlag {
		return "FAIL"
	}
	if f.DebtToEquity > 0.5 {
		return "PASS WITH CAUTION"
	}
	return "PASS"
}

// GrowthMetric is one Big Four growth metric across time horizons.
type GrowthMetric struct {
	Name   string
	Year1  float64
	Year3  float64
	Year5  float64
	Year10 float64
}

// ConsistentAbove10 reports whether every available period grew above 10%.
func (g GrowthMetric) ConsistentAbove10() bool {
	values := nonZero(g.Year1, g.Year3, g.Year5, g.Year10)
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v <= 10 {
			return false
		}
	}
	return true
}

func nonZero(values ...float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// BigFourGrowth is section 5: the Rule #1 "Big Four" growth metrics.
type BigFourGrowth struct {
	Revenue   GrowthMetric
	EPS       GrowthMetric
	BookValue GrowthMetric
	FCF       GrowthMetric
}

// ConsistentCount counts how many of the Big Four grew consistently above 10%.
func (g BigFourGrowth) ConsistentCount() int {
	count := 0
	for _, m := range []GrowthMetric{g.Revenue, g.EPS, g.BookValue, g.FCF} {
		if m.ConsistentAbove10() {
			count++
		}
	}
	return count
}

// ConsistencyRating labels the Big Four consistency count.
func (g BigFourGrowth) ConsistencyRating() string {
	switch c := g.ConsistentCount(); {
	case c >= 4:
		return "Excellent"
	case c >= 3:
		return "Good"
	case c >= 2:
		return "Inconsistent"
	default:
		return "Poor"
	}
}

// ConservativeGrowthRate is the lowest positive 5-year rate among the
// Big Four, used as the conservative input to the Rule #1 valuation.
func (g BigFourGrowth) ConservativeGrowthRate() (float64, bool) {
	candidates := []float64{g.Revenue.Year5, g.EPS.Year5, g.BookValue.Year5, g.FCF.Year5}
	var best float64
	found := false
	for _, r := range candidates {
		if r > 0 && (!found || r < best) {
			best = r
			found = true
		}
	}
	return best, found
}

// ProfitabilityMetrics is section 6.
type ProfitabilityMetrics struct {
	ROE             float64
	ROA             float64
	ROIC            float64
	GrossMargin     float64
	OperatingMargin float64
	NetMargin       float64
	FCFMargin       float64
	ROEVsIndustry   float64
	ROICVsIndustry  float64
}

// MoatIndicators is section 7: quantitative moat signals only.
type MoatIndicators struct {
	ROICCurrent         float64
	ROICAboveWACC       bool
	GrossMargin         float64
	GrossMarginIndustry float64
	CashConversionCycle float64
}

// PreliminaryRating gives a coarse moat classification from ROIC alone.
func (m MoatIndicators) PreliminaryRating() string {
	switch {
	case m.ROICCurrent == 0:
		return "Unknown"
	case m.ROICCurrent > 20 && m.ROICAboveWACC:
		return "Narrow (Potential Wide)"
	case m.ROICCurrent > 15 && m.ROICAboveWACC:
		return "Narrow"
	case m.ROICAboveWACC:
		return "Weak"
	default:
		return "None"
	}
}

// ValuationMultiple is a valuation multiple with historical/industry context.
type ValuationMultiple struct {
	Name             string
	Current          float64
	HistoricalMedian float64
	IndustryMedian   float64
}

// VsHistory compares the current multiple to its historical median.
func (v ValuationMultiple) VsHistory() string {
	if v.Current == 0 || v.HistoricalMedian == 0 {
		return "N/A"
	}
	ratio := v.Current / v.HistoricalMedian
	switch {
	case ratio < 0.8:
		return "Undervalued"
	case ratio > 1.2:
		return "Overvalued"
	default:
		return "Fair"
	}
}

// Rule1Valuation is the Rule #1 sticker-price and buy-price calculation.
type Rule1Valuation struct {
	EPSTTM        float64
	GrowthRate    float64
	FuturePE      float64
	FutureEPS10Y  float64
	FuturePrice10Y float64
	StickerPrice  float64
	BuyPrice      float64
}

// ValuationAnalysis is section 8.
type ValuationAnalysis struct {
	PE           ValuationMultiple
	PB           ValuationMultiple
	PS           ValuationMultiple
	EVEBITDA     ValuationMultiple
	PEG          ValuationMultiple
	CurrentPrice float64
	GFValue      float64
	DCFEarnings  float64
	DCFFCF       float64
	Rule1        Rule1Valuation
}

// GFValueDiscount is the discount (positive) or premium (negative) of
// price to GF Value, as a percentage.
func (v ValuationAnalysis) GFValueDiscount() (float64, bool) {
	if v.CurrentPrice > 0 && v.GFValue > 0 {
		return round2((v.GFValue - v.CurrentPrice) / v.GFValue * 100), true
	}
	return 0, false
}

// Verdict labels the valuation based on the GF Value discount.
func (v ValuationAnalysis) Verdict() string {
	discount, ok := v.GFValueDiscount()
	if !ok {
		return "Unknown"
	}
	switch {
	case discount > 20:
		return "Undervalued"
	case discount < -20:
		return "Overvalued"
	default:
		return "Fairly Valued"
	}
}

// BusinessCyclePhase is section 9.
type BusinessCyclePhase struct {
	RevenueGrowth5Y float64
	OperatingMargin float64
	MarginTrend     string
	FCFPositive     bool
	PaysDividends   bool
}

// Phase classifies the business into one of six simplified lifecycle stages.
func (b BusinessCyclePhase) Phase() string {
	if b.RevenueGrowth5Y == 0 && b.OperatingMargin == 0 {
		return "Unknown"
	}
	switch {
	case b.RevenueGrowth5Y > 30:
		return "2-Hypergrowth"
	case b.FCFPositive && b.RevenueGrowth5Y > 15:
		return "3-Self-Funding"
	case b.FCFPositive && b.MarginTrend == "Expanding":
		return "4-Operating Leverage"
	case b.PaysDividends && b.FCFPositive:
		return "5-Capital Return"
	case b.RevenueGrowth5Y < 0:
		return "6-Decline"
	default:
		return "3-Self-Funding"
	}
}

// RecommendedMOS is the recommended margin-of-safety percentage for the phase.
func (b BusinessCyclePhase) RecommendedMOS() int {
	phase := b.Phase()
	switch {
	case contains(phase, "Hypergrowth") || contains(phase, "Startup"):
		return 60
	case contains(phase, "Decline"):
		return 70
	default:
		return 50
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// InstitutionalActivity is section 10.
type InstitutionalActivity struct {
	GuruBuysPct  float64
	GuruSellsPct float64
	FundBuysPct  float64
	FundSellsPct float64
	ETFBuysPct   float64
	ETFSellsPct  float64
	hasData      bool
}

// Sentiment summarizes net guru/fund positioning.
func (i InstitutionalActivity) Sentiment() string {
	if !i.hasData {
		return "Unknown"
	}
	netGuru := i.GuruBuysPct - i.GuruSellsPct
	netFund := i.FundBuysPct - i.FundSellsPct
	switch {
	case netGuru > 10 && netFund > 10:
		return "Accumulation"
	case netGuru < -10 && netFund < -10:
		return "Distribution"
	default:
		return "Mixed"
	}
}

// SummaryScore is section 11: the weighted 0-100 scorecard.
type SummaryScore struct {
	QGARPScreenScore       int
	QualityScore           int
	FinancialStrengthPass  bool
	GrowthConsistencyScore int
	ProfitabilityScore     int
	ValuationScore         int
}

// OverallScore computes the weighted 0-100 score: QGARP 20%, Quality
// 15%, Financial 20%, Growth 15%, Profitability 10%, Valuation 20%.
func (s SummaryScore) OverallScore() int {
	score := 0.0
	score += float64(s.QGARPScreenScore) / 5 * 20
	score += float64(s.QualityScore) / 10 * 15
	if s.FinancialStrengthPass {
		score += 20
	}
	score += float64(s.GrowthConsistencyScore) / 4 * 15
	score += float64(s.ProfitabilityScore) / 10 * 10
	score += float64(s.ValuationScore) / 10 * 20
	return int(math.Round(score))
}

// PriceTargets are the Rule #1-derived buy/sticker/sell prices.
type PriceTargets struct {
	BuyPrice     float64
	StickerPrice float64
	SellPrice    float64
}

// InvestmentDecision is section 12: the final gate decision.
type InvestmentDecision struct {
	QGARPPassed       bool
	FinancialPassed   bool
	QualityPassed     bool
	GrowthPassed      bool
	GateDecision      GateDecision
	PriceTargets      PriceTargets
	MoatInvestigation []string
	RiskFactors       []string
}

// QGARPAnalysis is the complete investment analysis for a stock,
// combining the summary, keyratios, and financials DTOs.
type QGARPAnalysis struct {
	Symbol            string
	AnalysisDate       string
	Overview           CompanyOverview
	Screen             QGARPScreen
	Quality            QualityScores
	FinancialStrength  FinancialStrength
	Growth             BigFourGrowth
	Profitability      ProfitabilityMetrics
	Moat               MoatIndicators
	Valuation          ValuationAnalysis
	BusinessCycle      BusinessCyclePhase
	Institutional      InstitutionalActivity
	Summary            SummaryScore
	Decision           InvestmentDecision
}

// ComputeQGARP computes a complete QGARP analysis from already-fetched
// summary, key-ratio, and financial-statement DTOs.
func ComputeQGARP(symbol string, summary *dto.StockSummary, keyratios *dto.KeyRatios, financials *dto.FinancialStatements) QGARPAnalysis {
	analysis := QGARPAnalysis{
		Symbol:       symbol,
		AnalysisDate: time.Now().UTC().Format("2006-01-02"),
	}

	analysis.Overview = buildOverview(summary, keyratios)
	analysis.Screen = buildScreen(keyratios)
	analysis.Quality = buildQualityScores(summary, keyratios)
	analysis.FinancialStrength = buildFinancialStrength(keyratios)
	analysis.Growth = buildGrowth(keyratios, financials)
	analysis.Profitability = buildProfitability(keyratios, summary)
	analysis.Moat = buildMoatIndicators(keyratios, summary)
	analysis.Valuation = buildValuation(summary, keyratios, analysis.Growth)
	analysis.BusinessCycle = buildBusinessCycle(keyratios)
	analysis.Institutional = buildInstitutional(summary)
	analysis.Summary = buildSummaryScore(analysis)
	analysis.Decision = buildDecision(analysis)

	return analysis
}

func buildOverview(summary *dto.StockSummary, keyratios *dto.KeyRatios) CompanyOverview {
	o := CompanyOverview{}
	if summary != nil && summary.General != nil {
		o.CompanyName = summary.General.CompanyName
		o.Sector = summary.General.Sector
		o.Industry = summary.General.Industry
		o.MarketCap = summary.General.MarketCap
		o.Currency = summary.General.Currency
		o.Description = summary.General.ShortDesc
	}
	if summary != nil && summary.Price != nil {
		o.CurrentPrice = summary.Price.Current
	}
	if keyratios != nil && keyratios.Price != nil {
		o.High52Week = keyratios.Price.High52Week
		o.Low52Week = keyratios.Price.Low52Week
	}
	return o
}

func checkThreshold(value float64, hasValue bool, op string, threshold float64) ScreenResult {
	if !hasValue {
		return ScreenNA
	}
	switch op {
	case ">":
		if value > threshold {
			return ScreenPass
		}
	case "<":
		if value < threshold {
			return ScreenPass
		}
	}
	return ScreenFail
}

func buildScreen(keyratios *dto.KeyRatios) QGARPScreen {
	var roic, revGrowth5y, epsGrowth5y, de, pe float64
	var hasROIC, hasRev, hasEPS, hasDE, hasPE bool

	if keyratios != nil {
		if keyratios.Profitability != nil {
			roic, hasROIC = keyratios.Profitability.ROIC, keyratios.Profitability.ROIC != 0
		}
		if keyratios.Growth != nil {
			revGrowth5y, hasRev = keyratios.Growth.RevenueGrowth5Y, keyratios.Growth.RevenueGrowth5Y != 0
			epsGrowth5y, hasEPS = keyratios.Growth.EPSGrowth5Y, keyratios.Growth.EPSGrowth5Y != 0
		}
		if keyratios.Solvency != nil {
			de, hasDE = keyratios.Solvency.DebtToEquity, keyratios.Solvency.DebtToEquity != 0
		}
		if keyratios.Valuation != nil {
			pe, hasPE = keyratios.Valuation.PERatio, keyratios.Valuation.PERatio != 0
		}
	}

	return QGARPScreen{
		ROIC: ScreenCriterion{
			Name: "ROIC", Value: roic, HasValue: hasROIC, Threshold: ">10%",
			Result: checkThreshold(roic, hasROIC, ">", 10),
		},
		RevenueGrowth5Y: ScreenCriterion{
			Name: "Revenue Growth (5yr)", Value: revGrowth5y, HasValue: hasRev, Threshold: ">10%",
			Result: checkThreshold(revGrowth5y, hasRev, ">", 10),
		},
		EPSGrowth5Y: ScreenCriterion{
			Name: "EPS Growth (5yr)", Value: epsGrowth5y, HasValue: hasEPS, Threshold: ">10%",
			Result: checkThreshold(epsGrowth5y, hasEPS, ">", 10),
		},
		DebtToEquity: ScreenCriterion{
			Name: "Debt-to-Equity", Value: de, HasValue: hasDE, Threshold: "<0.5",
			Result: checkThreshold(de, hasDE, "<", 0.5),
		},
		PERatio: ScreenCriterion{
			Name: "P/E Ratio", Value: pe, HasValue: hasPE, Threshold: "<40",
			Result: checkThreshold(pe, hasPE, "<", 40),
		},
	}
}

func buildQualityScores(summary *dto.StockSummary, keyratios *dto.KeyRatios) QualityScores {
	q := QualityScores{}
	if summary != nil && summary.Quality != nil {
		q.GFScore = summary.Quality.GFScore
		q.FinancialStrength = summary.Quality.FinancialStrength
		q.ProfitabilityRank = summary.Quality.ProfitabilityRank
		q.GrowthRank = summary.Quality.GrowthRank
	}
	if keyratios != nil {
		q.PiotroskiScore = keyratios.PiotroskiScore
		q.AltmanZScore = keyratios.AltmanZScore
	}
	return q
}

func buildFinancialStrength(keyratios *dto.KeyRatios) FinancialStrength {
	f := FinancialStrength{}
	if keyratios == nil {
		return f
	}
	if keyratios.Solvency != nil {
		f.DebtToEquity = keyratios.Solvency.DebtToEquity
		f.DebtToEBITDA = keyratios.Solvency.DebtToEBITDA
		f.InterestCoverage = keyratios.Solvency.InterestCoverage
	}
	if keyratios.Liquidity != nil {
		f.CurrentRatio = keyratios.Liquidity.CurrentRatio
		f.QuickRatio = keyratios.Liquidity.QuickRatio
		f.CashRatio = keyratios.Liquidity.CashRatio
	}
	f.HighDebtFlag = f.DebtToEquity > 0.8
	f.LowCoverageFlag = keyratios.Solvency != nil && keyratios.Solvency.InterestCoverage != 0 && keyratios.Solvency.InterestCoverage < 2
	return f
}

func buildGrowth(keyratios *dto.KeyRatios, financials *dto.FinancialStatements) BigFourGrowth {
	g := BigFourGrowth{Revenue: GrowthMetric{Name: "Revenue"}, EPS: GrowthMetric{Name: "EPS"}, FCF: GrowthMetric{Name: "FCF"}}
	if keyratios != nil && keyratios.Growth != nil {
		kg := keyratios.Growth
		g.Revenue = GrowthMetric{Name: "Revenue", Year1: kg.RevenueGrowth1Y, Year3: kg.RevenueGrowth3Y, Year5: kg.RevenueGrowth5Y, Year10: kg.RevenueGrowth10Y}
		g.EPS = GrowthMetric{Name: "EPS", Year1: kg.EPSGrowth1Y, Year3: kg.EPSGrowth3Y, Year5: kg.EPSGrowth5Y, Year10: kg.EPSGrowth10Y}
		g.FCF = GrowthMetric{Name: "FCF", Year1: kg.FCFGrowth1Y, Year3: kg.FCFGrowth3Y, Year5: kg.FCFGrowth5Y}
	}
	g.BookValue = calculateBVGrowth(financials)
	return g
}

// calculateBVGrowth computes book-value-per-share CAGR over 1/3/5/10
// year horizons from historical financial periods (most recent first).
func calculateBVGrowth(financials *dto.FinancialStatements) GrowthMetric {
	m := GrowthMetric{Name: "Book Value/Share"}
	if financials == nil || len(financials.Periods) < 2 {
		return m
	}
	periods := financials.Periods
	currentBV := periods[0].BookValuePerShare
	if currentBV <= 0 {
		return m
	}

	cagr := func(years int) (float64, bool) {
		if len(periods) <= years {
			return 0, false
		}
		pastBV := periods[years].BookValuePerShare
		if pastBV <= 0 {
			return 0, false
		}
		rate := (math.Pow(currentBV/pastBV, 1.0/float64(years)) - 1) * 100
		return round2(rate), true
	}

	if v, ok := cagr(1); ok {
		m.Year1 = v
	}
	if v, ok := cagr(3); ok {
		m.Year3 = v
	}
	if v, ok := cagr(5); ok {
		m.Year5 = v
	}
	if v, ok := cagr(10); ok {
		m.Year10 = v
	}
	return m
}

func buildProfitability(keyratios *dto.KeyRatios, summary *dto.StockSummary) ProfitabilityMetrics {
	p := ProfitabilityMetrics{}
	if keyratios != nil && keyratios.Profitability != nil {
		kp := keyratios.Profitability
		p.ROE, p.ROA, p.ROIC = kp.ROE, kp.ROA, kp.ROIC
		p.GrossMargin, p.OperatingMargin, p.NetMargin, p.FCFMargin = kp.GrossMargin, kp.OperatingMargin, kp.NetMargin, kp.FCFMargin
	}
	if summary != nil && summary.Ratios != nil {
		if summary.Ratios.ROE != nil && summary.Ratios.ROE.Indu != nil {
			p.ROEVsIndustry = summary.Ratios.ROE.Indu.InduMed
		}
		if summary.Ratios.ROIC != nil && summary.Ratios.ROIC.Indu != nil {
			p.ROICVsIndustry = summary.Ratios.ROIC.Indu.InduMed
		}
	}
	return p
}

func buildMoatIndicators(keyratios *dto.KeyRatios, summary *dto.StockSummary) MoatIndicators {
	m := MoatIndicators{}
	if keyratios != nil && keyratios.Profitability != nil {
		m.ROICCurrent = keyratios.Profitability.ROIC
		m.ROICAboveWACC = m.ROICCurrent > 10
		m.GrossMargin = keyratios.Profitability.GrossMargin
	}
	if keyratios != nil && keyratios.Efficiency != nil {
		m.CashConversionCycle = keyratios.Efficiency.CashConversionCycle
	}
	_ = summary // industry gross margin median not exposed on the summary ratios DTO today
	return m
}

func buildValuationMultiple(name string, current float64, ratio *dto.RatioValue) ValuationMultiple {
	vm := ValuationMultiple{Name: name, Current: current}
	if ratio != nil {
		if ratio.His != nil {
			vm.HistoricalMedian = ratio.His.Med
		}
		if ratio.Indu != nil {
			vm.IndustryMedian = ratio.Indu.InduMed
		}
	}
	return vm
}

func buildValuation(summary *dto.StockSummary, keyratios *dto.KeyRatios, growth BigFourGrowth) ValuationAnalysis {
	var v *dto.ValuationRatios
	var sr *dto.FinancialRatios
	if keyratios != nil {
		v = keyratios.Valuation
	}
	if summary != nil {
		sr = summary.Ratios
	}

	var currentPrice float64
	if summary != nil && summary.Price != nil {
		currentPrice = summary.Price.Current
	}

	valuation := ValuationAnalysis{CurrentPrice: currentPrice}
	if v != nil {
		valuation.PE = buildValuationMultiple("P/E", v.PERatio, ratioOrNil(sr, "pe_ttm"))
		valuation.PB = buildValuationMultiple("P/B", v.PBRatio, ratioOrNil(sr, "pb_ratio"))
		valuation.PS = buildValuationMultiple("P/S", v.PSRatio, ratioOrNil(sr, "ps_ratio"))
		valuation.EVEBITDA = buildValuationMultiple("EV/EBITDA", v.EVToEBITDA, ratioOrNil(sr, "ev_ebitda"))
		valuation.PEG = buildValuationMultiple("PEG", v.PEGRatio, ratioOrNil(sr, "peg_ratio"))
	} else {
		valuation.PE, valuation.PB, valuation.PS = ValuationMultiple{Name: "P/E"}, ValuationMultiple{Name: "P/B"}, ValuationMultiple{Name: "P/S"}
		valuation.EVEBITDA, valuation.PEG = ValuationMultiple{Name: "EV/EBITDA"}, ValuationMultiple{Name: "PEG"}
	}

	if summary != nil && summary.Valuation != nil {
		valuation.GFValue = summary.Valuation.GFValue
		valuation.DCFEarnings = summary.Valuation.DCFEarningsBased
		valuation.DCFFCF = summary.Valuation.DCFFCFBased
	}

	var eps float64
	if keyratios != nil && keyratios.PerShare != nil {
		eps = keyratios.PerShare.EPSTTM
	}
	growthRate, _ := growth.ConservativeGrowthRate()
	valuation.Rule1 = calculateRule1(eps, growthRate)

	return valuation
}

// ratioOrNil looks up a named ratio field on FinancialRatios; the
// Python source consumes attributes directly, so this mirrors that
// with the small fixed set of ratios QGARP valuation needs.
func ratioOrNil(sr *dto.FinancialRatios, field string) *dto.RatioValue {
	if sr == nil {
		return nil
	}
	switch field {
	case "pe_ttm":
		return sr.PETTM
	case "pb_ratio":
		return sr.PBRatio
	case "ps_ratio":
		return sr.PSRatio
	case "ev_ebitda":
		return sr.EVEBITDA
	case "peg_ratio":
		return sr.PEGRatio
	default:
		return nil
	}
}

// calculateRule1 computes the Rule #1 sticker price and buy price:
// future P/E capped at 2x the growth rate (max 40), EPS compounded at
// growth rate over 10 years, discounted to a 15% annual return
// (divide by 4.05), then halved for a 50% margin of safety.
func calculateRule1(eps, growthRate float64) Rule1Valuation {
	if eps <= 0 || growthRate <= 0 {
		return Rule1Valuation{EPSTTM: eps, GrowthRate: growthRate}
	}

	futurePE := math.Min(growthRate*2, 40)
	futureEPS := eps * math.Pow(1+growthRate/100, 10)
	futurePrice := futureEPS * futurePE
	stickerPrice := futurePrice / 4.05
	buyPrice := stickerPrice * 0.5

	return Rule1Valuation{
		EPSTTM:         round2(eps),
		GrowthRate:     round2(growthRate),
		FuturePE:       round2(futurePE),
		FutureEPS10Y:   round2(futureEPS),
		FuturePrice10Y: round2(futurePrice),
		StickerPrice:   round2(stickerPrice),
		BuyPrice:       round2(buyPrice),
	}
}

func buildBusinessCycle(keyratios *dto.KeyRatios) BusinessCyclePhase {
	b := BusinessCyclePhase{MarginTrend: "Unknown"}
	if keyratios == nil {
		return b
	}
	if keyratios.Growth != nil {
		b.RevenueGrowth5Y = keyratios.Growth.RevenueGrowth5Y
	}
	if keyratios.Profitability != nil {
		b.OperatingMargin = keyratios.Profitability.OperatingMargin
	}
	var fcfPerShare, dividendYield float64
	if keyratios.PerShare != nil {
		fcfPerShare = keyratios.PerShare.FCFPerShare
	}
	if keyratios.Dividends != nil {
		dividendYield = keyratios.Dividends.DividendYield
	}
	b.FCFPositive = fcfPerShare > 0
	b.PaysDividends = dividendYield > 0
	return b
}

func buildInstitutional(summary *dto.StockSummary) InstitutionalActivity {
	if summary == nil || summary.Institutional == nil {
		return InstitutionalActivity{}
	}
	inst := summary.Institutional
	return InstitutionalActivity{
		GuruBuysPct:  inst.GuruBuysPct,
		GuruSellsPct: inst.GuruSellsPct,
		FundBuysPct:  inst.FundBuysPct,
		FundSellsPct: inst.FundSellsPct,
		ETFBuysPct:   inst.ETFBuysPct,
		ETFSellsPct:  inst.ETFSellsPct,
		hasData:      true,
	}
}

func buildSummaryScore(a QGARPAnalysis) SummaryScore {
	qualityScore := a.Quality.GFScore / 10

	var profitScore int
	switch roic := a.Profitability.ROIC; {
	case roic == 0:
		profitScore = 0
	case roic > 20:
		profitScore = 10
	case roic > 15:
		profitScore = 8
	case roic > 10:
		profitScore = 6
	default:
		profitScore = 4
	}

	valScore := 5
	if discount, ok := a.Valuation.GFValueDiscount(); ok {
		switch {
		case discount > 30:
			valScore = 10
		case discount > 20:
			valScore = 8
		case discount > 0:
			valScore = 6
		case discount > -20:
			valScore = 4
		default:
			valScore = 2
		}
	}

	verdict := a.FinancialStrength.Verdict()
	return SummaryScore{
		QGARPScreenScore:       a.Screen.PassCount(),
		QualityScore:           qualityScore,
		FinancialStrengthPass:  verdict == "PASS" || verdict == "PASS WITH CAUTION",
		GrowthConsistencyScore: a.Growth.ConsistentCount(),
		ProfitabilityScore:     profitScore,
		ValuationScore:         valScore,
	}
}

func buildDecision(a QGARPAnalysis) InvestmentDecision {
	qgarpPassed := a.Screen.PassCount() >= 4
	verdict := a.FinancialStrength.Verdict()
	financialPassed := verdict == "PASS" || verdict == "PASS WITH CAUTION"
	qualityPassed := a.Quality.GFScore >= 70
	growthPassed := a.Growth.ConsistentCount() >= 2

	gate := GateDiscard
	switch {
	case qgarpPassed && financialPassed && qualityPassed && growthPassed:
		gate = GateProceed
	case qgarpPassed && financialPassed:
		gate = GateWatchlist
	}

	rule1 := a.Valuation.Rule1
	targets := PriceTargets{BuyPrice: rule1.BuyPrice, StickerPrice: rule1.StickerPrice}
	if rule1.StickerPrice != 0 {
		targets.SellPrice = round2(rule1.StickerPrice * 1.5)
	}

	return InvestmentDecision{
		QGARPPassed:       qgarpPassed,
		FinancialPassed:   financialPassed,
		QualityPassed:     qualityPassed,
		GrowthPassed:      growthPassed,
		GateDecision:      gate,
		PriceTargets:      targets,
		MoatInvestigation: suggestMoatAreas(a),
		RiskFactors:       suggestRiskAreas(a),
	}
}

func suggestMoatAreas(a QGARPAnalysis) []string {
	var areas []string
	if a.Profitability.ROIC > 15 {
		areas = append(areas, "High ROIC - investigate source of competitive advantage")
	}
	if a.Profitability.GrossMargin > 40 {
		areas = append(areas, "High gross margin - evaluate pricing power")
	}
	if a.Moat.CashConversionCycle != 0 && a.Moat.CashConversionCycle < 0 {
		areas = append(areas, "Negative cash conversion cycle - analyze working capital advantage")
	}
	if len(areas) == 0 {
		areas = []string{"Standard competitive analysis required"}
	}
	return areas
}

func suggestRiskAreas(a QGARPAnalysis) []string {
	var risks []string
	if a.FinancialStrength.HighDebtFlag {
		risks = append(risks, "High debt levels - review debt covenants and refinancing risk")
	}
	if a.FinancialStrength.LowCoverageFlag {
		risks = append(risks, "Low interest coverage - assess cash flow stability")
	}
	if a.Growth.ConsistentCount() < 2 {
		risks = append(risks, "Inconsistent growth - investigate cyclicality or disruption risk")
	}
	if a.Valuation.Verdict() == "Overvalued" {
		risks = append(risks, "Elevated valuation - consider margin of safety requirements")
	}
	if len(risks) == 0 {
		risks = []string{"Standard 10-K risk factor review"}
	}
	return risks
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
