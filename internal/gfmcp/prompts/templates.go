// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package prompts

import "fmt"

func qgarpScorecardTemplate(ticker string) string {
	return fmt.Sprintf(`You are an investment analyst applying the QGARP (Quality Growth at a Reasonable Price) framework to %s.

1. Call get_summary, get_keyratios, and get_financials for %s.
2. Call analyze_qgarp for %s and use its fields to fill in the scorecard below.

# QGARP INVESTMENT SCORECARD: %s

## Company overview
Company, sector, market cap, current price, 52-week range, one-sentence business summary.

## Screening criteria (PASS requires >=4/5)
ROIC >10%%, 5yr revenue growth >10%%, 5yr EPS growth >10%%, debt-to-equity <0.5, P/E <40.

## Quality scores
GF Score /100, Financial Strength /10, Profitability Rank /10, Growth Rank /10,
Piotroski F-Score /9, Altman Z-Score (Safe >2.99 / Grey 1.81-2.99 / Distress <1.81).

## Financial strength and red flags
Debt-to-equity, debt-to-EBITDA, interest coverage, current ratio. Disqualify on
debt-to-equity > 0.8 or interest coverage < 2x.

## Big Four growth consistency
Revenue, EPS, book value per share, and free cash flow growth at 1/3/5/10yr
horizons; note the conservative (lowest positive) growth rate to use for valuation.

## Profitability
ROE, ROA, ROIC, gross/operating/net margin, FCF margin, each vs industry and trend.

## Moat indicators (preliminary only; full analysis needs qualitative research)
ROIC persistence above cost of capital, gross margin stability, pricing power,
cash conversion cycle.

## Valuation
Current P/E, P/B, P/S, EV/EBITDA, PEG vs historical median and industry median.
GF Value and DCF estimates vs current price. Rule #1 sticker price and buy price
(50%% margin of safety) from the conservative growth rate and current EPS.

## Business cycle phase
Classify 1-Startup through 6-Decline from revenue growth and margin trend; state
the appropriate valuation method and required margin of safety for that phase.

## Institutional activity
Guru, fund, and ETF buying vs selling percentages; overall sentiment.

## Gate decision
PROCEED requires screen PASS (>=4/5), financial strength PASS, GF Score >=70, and
Big Four consistency >=2/4. Otherwise WATCHLIST or DISCARD.

## Price targets
Buy price, sticker price, sell price (150%% of fair value), stop loss.

This scorecard is quantitative screening only; a full investment decision still
requires qualitative moat analysis and risk review. It is not investment advice.`,
		ticker, ticker, ticker, ticker)
}

func executionRiskTemplate(ticker string) string {
	return fmt.Sprintf(`You are a risk analyst assessing execution risk for %s using its most recent
10-K and 10-Q filings plus recent news coverage.

Rate each dimension Red/Yellow/Green, defaulting to Yellow when evidence is
ambiguous, and cite the filing section or source for every rating.

## Concentration risk
Red: a single customer >20%% of revenue, or top 3 customers >50%%.
Yellow: largest customer 10-20%% of revenue.
Green: no customer >10%%, highly diversified.

## Disruption risk
Red: an identifiable threat to the core business from a technology or business
model shift. Yellow: normal industry evolution. Green: the company is the
disruptor or well positioned for the shift.

## Outside-forces risk
Red: high exposure to regulation, commodity prices, interest rates, or
geopolitical factors. Yellow: normal, manageable exposure. Green: low exposure.

## Competition risk
Red: severe pricing pressure or margin compression in a fragmented,
undifferentiated market. Yellow: a normal, stable competitive environment.
Green: monopoly/duopoly dynamics with pricing power.

## Output
For each dimension: rating, trend (increasing/stable/decreasing), and bulleted
evidence with citations. Close with a risk assessment matrix, 2-3 sentences on
how the risks interact, and the company's strongest defensive positions.

Overall risk is the weighted average of Red=3/Yellow=2/Green=1 across the four
dimensions: >=2.5 is High, 1.5-2.4 is Medium, <1.5 is Low.

This analysis is for educational purposes only and is not investment advice.`,
		ticker)
}
