// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package dto

import "github.com/goccy/go-json"

// ProfitabilityRatios holds profitability and return metrics.
type ProfitabilityRatios struct {
	ROE             float64 `json:"roe,omitempty"`
	ROA             float64 `json:"roa,omitempty"`
	ROIC            float64 `json:"roic,omitempty"`
	ROCE            float64 `json:"roce,omitempty"`
	GrossMargin     float64 `json:"gross_margin,omitempty"`
	OperatingMargin float64 `json:"operating_margin,omitempty"`
	NetMargin       float64 `json:"net_margin,omitempty"`
	FCFMargin       float64 `json:"fcf_margin,omitempty"`
	EBITDAMargin    float64 `json:"ebitda_margin,omitempty"`
}

// LiquidityRatios holds liquidity and short-term solvency metrics.
type LiquidityRatios struct {
	CurrentRatio float64 `json:"current_ratio,omitempty"`
	QuickRatio   float64 `json:"quick_ratio,omitempty"`
	CashRatio    float64 `json:"cash_ratio,omitempty"`
}

// SolvencyRatios holds solvency and leverage metrics.
type SolvencyRatios struct {
	DebtToEquity     float64 `json:"debt_to_equity,omitempty"`
	DebtToAsset      float64 `json:"debt_to_asset,omitempty"`
	DebtToEBITDA     float64 `json:"debt_to_ebitda,omitempty"`
	InterestCoverage float64 `json:"interest_coverage,omitempty"`
	EquityToAsset    float64 `json:"equity_to_asset,omitempty"`
}

// GrowthRatios holds year-over-year and multi-year growth metrics.
type GrowthRatios struct {
	RevenueGrowth1Y  float64 `json:"revenue_growth_1y,omitempty"`
	RevenueGrowth3Y  float64 `json:"revenue_growth_3y,omitempty"`
	RevenueGrowth5Y  float64 `json:"revenue_growth_5y,omitempty"`
	RevenueGrowth10Y float64 `json:"revenue_growth_10y,omitempty"`
	EPSGrowth1Y      float64 `json:"eps_growth_1y,omitempty"`
	EPSGrowth3Y      float64 `json:"eps_growth_3y,omitempty"`
	EPSGrowth5Y      float64 `json:"eps_growth_5y,omitempty"`
	EPSGrowth10Y     float64 `json:"eps_growth_10y,omitempty"`
	FCFGrowth1Y      float64 `json:"fcf_growth_1y,omitempty"`
	FCFGrowth3Y      float64 `json:"fcf_growth_3y,omitempty"`
	FCFGrowth5Y      float64 `json:"fcf_growth_5y,omitempty"`
}

// PriceMetrics holds current trading price context.
type PriceMetrics struct {
	CurrentPrice float64 `json:"current_price,omitempty"`
	High52Week   float64 `json:"high_52week,omitempty"`
	Low52Week    float64 `json:"low_52week,omitempty"`
	Beta         float64 `json:"beta,omitempty"`
	Volatility1Y float64 `json:"volatility_1y,omitempty"`
}

// DividendMetrics holds dividend yield and payout data.
type DividendMetrics struct {
	DividendYield float64 `json:"dividend_yield,omitempty"`
	PayoutRatio   float64 `json:"payout_ratio,omitempty"`
}

// EfficiencyRatios holds working-capital and turnover metrics.
type EfficiencyRatios struct {
	CashConversionCycle float64 `json:"cash_conversion_cycle,omitempty"`
	AssetTurnover       float64 `json:"asset_turnover,omitempty"`
	InventoryTurnover   float64 `json:"inventory_turnover,omitempty"`
}

// PerShareData holds per-share metrics.
type PerShareData struct {
	EPSTTM               float64 `json:"eps_ttm,omitempty"`
	EPSWithoutNRI        float64 `json:"eps_without_nri,omitempty"`
	BookValuePerShare    float64 `json:"book_value_per_share,omitempty"`
	TangibleBookPerShare float64 `json:"tangible_book_per_share,omitempty"`
	FCFPerShare          float64 `json:"fcf_per_share,omitempty"`
	DividendsPerShareTTM float64 `json:"dividends_per_share_ttm,omitempty"`
}

// ValuationRatios holds valuation metrics.
type ValuationRatios struct {
	PERatio     float64 `json:"pe_ratio,omitempty"`
	PBRatio     float64 `json:"pb_ratio,omitempty"`
	PSRatio     float64 `json:"ps_ratio,omitempty"`
	PEGRatio    float64 `json:"peg_ratio,omitempty"`
	PriceToFCF  float64 `json:"price_to_fcf,omitempty"`
	EVToEBITDA  float64 `json:"ev_to_ebitda,omitempty"`
	EVToEBIT    float64 `json:"ev_to_ebit,omitempty"`
	EVToRevenue float64 `json:"ev_to_revenue,omitempty"`
	GFValue     float64 `json:"gf_value,omitempty"`
	ForwardPE   float64 `json:"forward_pe,omitempty"`
}

// KeyRatios is the comprehensive collection of key financial ratios
// returned by the keyratios endpoint.
type KeyRatios struct {
	Symbol         string               `json:"symbol"`
	CompanyName    string               `json:"company_name,omitempty"`
	Currency       string               `json:"currency,omitempty"`
	PiotroskiScore int                  `json:"piotroski_score,omitempty"`
	AltmanZScore   float64              `json:"altman_z_score,omitempty"`
	BeneishMScore  float64              `json:"beneish_m_score,omitempty"`
	Profitability  *ProfitabilityRatios `json:"profitability,omitempty"`
	Liquidity      *LiquidityRatios     `json:"liquidity,omitempty"`
	Solvency       *SolvencyRatios      `json:"solvency,omitempty"`
	Growth         *GrowthRatios        `json:"growth,omitempty"`
	PerShare       *PerShareData        `json:"per_share,omitempty"`
	Valuation      *ValuationRatios     `json:"valuation,omitempty"`
	Price          *PriceMetrics        `json:"price,omitempty"`
	Dividends      *DividendMetrics     `json:"dividends,omitempty"`
	Efficiency     *EfficiencyRatios    `json:"efficiency,omitempty"`
}

// ParseKeyRatios builds a KeyRatios from the raw upstream JSON, which
// organizes values into sections named after the GuruFocus keyratios
// report tabs (Basic, Fundamental, Valuation Ratio, Profitability,
// Growth, Price, Dividends).
func ParseKeyRatios(raw json.RawMessage, symbol string) *KeyRatios {
	root := asObject(raw)

	return &KeyRatios{
		Symbol:         symbol,
		CompanyName:    strField(root, "company_name"),
		Currency:       strField(root, "currency"),
		PiotroskiScore: intField(root, "piotroski_score"),
		AltmanZScore:   numField(root, "altman_z_score"),
		BeneishMScore:  numField(root, "beneish_m_score"),
		Profitability: &ProfitabilityRatios{
			ROE:             numField(root, "roe"),
			ROA:             numField(root, "roa"),
			ROIC:            numField(root, "roic"),
			ROCE:            numField(root, "roce"),
			GrossMargin:     numField(root, "gross_margin"),
			OperatingMargin: numField(root, "operating_margin"),
			NetMargin:       numField(root, "net_margin"),
			FCFMargin:       numField(root, "fcf_margin"),
			EBITDAMargin:    numField(root, "ebitda_margin"),
		},
		Liquidity: &LiquidityRatios{
			CurrentRatio: numField(root, "current_ratio"),
			QuickRatio:   numField(root, "quick_ratio"),
			CashRatio:    numField(root, "cash_ratio"),
		},
		Solvency: &SolvencyRatios{
			DebtToEquity:     numField(root, "debt_to_equity"),
			DebtToAsset:      numField(root, "debt_to_asset"),
			DebtToEBITDA:     numField(root, "debt_to_ebitda"),
			InterestCoverage: numField(root, "interest_coverage"),
			EquityToAsset:    numField(root, "equity_to_asset"),
		},
		Growth: &GrowthRatios{
			RevenueGrowth1Y:  numField(root, "revenue_growth_1y"),
			RevenueGrowth3Y:  numField(root, "revenue_growth_3y"),
			RevenueGrowth5Y:  numField(root, "revenue_growth_5y"),
			RevenueGrowth10Y: numField(root, "revenue_growth_10y"),
			EPSGrowth1Y:      numField(root, "eps_growth_1y"),
			EPSGrowth3Y:      numField(root, "eps_growth_3y"),
			EPSGrowth5Y:      numField(root, "eps_growth_5y"),
			EPSGrowth10Y:     numField(root, "eps_growth_10y"),
			FCFGrowth1Y:      numField(root, "fcf_growth_1y"),
			FCFGrowth3Y:      numField(root, "fcf_growth_3y"),
			FCFGrowth5Y:      numField(root, "fcf_growth_5y"),
		},
		PerShare: &PerShareData{
			EPSTTM:               numField(root, "eps_ttm"),
			EPSWithoutNRI:        numField(root, "eps_without_nri"),
			BookValuePerShare:    numField(root, "book_value_per_share"),
			TangibleBookPerShare: numField(root, "tangible_book_per_share"),
			FCFPerShare:          numField(root, "fcf_per_share"),
			DividendsPerShareTTM: numField(root, "dividends_per_share_ttm"),
		},
		Valuation: &ValuationRatios{
			PERatio:     numField(root, "pe_ratio"),
			PBRatio:     numField(root, "pb_ratio"),
			PSRatio:     numField(root, "ps_ratio"),
			PEGRatio:    numField(root, "peg_ratio"),
			PriceToFCF:  numField(root, "price_to_fcf"),
			EVToEBITDA:  numField(root, "ev_to_ebitda"),
			EVToEBIT:    numField(root, "ev_to_ebit"),
			EVToRevenue: numField(root, "ev_to_revenue"),
			GFValue:     numField(root, "gf_value"),
			ForwardPE:   numField(root, "forward_pe"),
		},
		Price: &PriceMetrics{
			CurrentPrice: numField(root, "current_price"),
			High52Week:   numField(root, "high_52week"),
			Low52Week:    numField(root, "low_52week"),
			Beta:         numField(root, "beta"),
			Volatility1Y: numField(root, "volatility_1y"),
		},
		Dividends: &DividendMetrics{
			DividendYield: numField(root, "dividend_yield"),
			PayoutRatio:   numField(root, "payout_ratio"),
		},
		Efficiency: &EfficiencyRatios{
			CashConversionCycle: numField(root, "cash_conversion_cycle"),
			AssetTurnover:       numField(root, "asset_turnover"),
			InventoryTurnover:   numField(root, "inventory_turnover"),
		},
	}
}
