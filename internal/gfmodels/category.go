// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmodels

import (
	"sort"
	"time"
)

// CacheTier is a coarse freshness classification for a cache category.
type CacheTier string

const (
	TierPriceDependent    CacheTier = "price_dependent"
	TierEarningsDependent CacheTier = "earnings_dependent"
	TierStatic            CacheTier = "static"
)

// CacheCategory is a symbolic label tagging a class of cached responses.
// Its string value is the cache-key slug and must stay stable across
// releases: renaming a category silently invalidates existing entries.
type CacheCategory string

const (
	CategoryQuote             CacheCategory = "quote"
	CategoryValuationRatios   CacheCategory = "valuation_ratios"
	CategoryMarketData        CacheCategory = "market_data"
	CategoryPriceHistory      CacheCategory = "price_history"
	CategoryPriceOHLC         CacheCategory = "price_ohlc"
	CategoryVolume            CacheCategory = "volume"
	CategoryUnadjustedPrice   CacheCategory = "unadjusted_price"
	CategoryCurrentDividend  CacheCategory = "current_dividend"
	CategorySummary           CacheCategory = "summary"
	CategoryFinancials        CacheCategory = "financials"
	CategoryKeyRatios         CacheCategory = "key_ratios"
	CategoryFundamentalRatios CacheCategory = "fundamental_ratios"
	CategoryGrowthMetrics     CacheCategory = "growth_metrics"
	CategoryEstimates         CacheCategory = "estimates"
	CategoryGFScore           CacheCategory = "gf_score"
	CategoryDividends         CacheCategory = "dividends"
	CategoryInsiders          CacheCategory = "insiders"
	CategoryInsiderUpdates    CacheCategory = "insider_updates"
	CategoryInsiderCEOBuys    CacheCategory = "insider_ceo_buys"
	CategoryInsiderCFOBuys    CacheCategory = "insider_cfo_buys"
	CategoryInsiderClusterBuy CacheCategory = "insider_cluster_buy"
	CategoryInsiderDouble     CacheCategory = "insider_double"
	CategoryInsiderTriple     CacheCategory = "insider_triple"
	CategoryInsiderList       CacheCategory = "insider_list"
	CategoryProfile           CacheCategory = "profile"
	CategoryGurus             CacheCategory = "gurus"
	CategoryGuruList          CacheCategory = "guru_list"
	CategoryExecutives        CacheCategory = "executives"
	CategoryTradesHistory     CacheCategory = "trades_history"
	CategoryScreener          CacheCategory = "screener"
	CategoryAPIUsage          CacheCategory = "api_usage"

	// categoryUsage is a reserved, internal-only category under which the
	// usage tracker persists its synced snapshot. It does not appear in
	// the public catalogue and has no TTL of its own.
	categoryUsage CacheCategory = "__api_usage__"
)

// CategoryPolicy is the process-wide immutable tier/TTL/invalidation rule
// for one cache category.
type CategoryPolicy struct {
	Tier                 CacheTier
	TTL                  time.Duration
	InvalidateOnEarnings bool
}

var categoryCatalogue = map[CacheCategory]CategoryPolicy{
	CategoryQuote:             {Tier: TierPriceDependent, TTL: 15 * time.Minute},
	CategoryValuationRatios:   {Tier: TierPriceDependent, TTL: 24 * time.Hour},
	CategoryMarketData:        {Tier: TierPriceDependent, TTL: 24 * time.Hour},
	CategoryPriceHistory:      {Tier: TierPriceDependent, TTL: 24 * time.Hour},
	CategoryPriceOHLC:         {Tier: TierPriceDependent, TTL: 24 * time.Hour},
	CategoryVolume:            {Tier: TierPriceDependent, TTL: 24 * time.Hour},
	CategoryUnadjustedPrice:   {Tier: TierPriceDependent, TTL: 24 * time.Hour},
	CategoryCurrentDividend:   {Tier: TierPriceDependent, TTL: 24 * time.Hour},
	CategorySummary:           {Tier: TierEarningsDependent, TTL: 24 * time.Hour, InvalidateOnEarnings: true},
	CategoryFinancials:        {Tier: TierEarningsDependent, TTL: 95 * 24 * time.Hour, InvalidateOnEarnings: true},
	CategoryKeyRatios:         {Tier: TierEarningsDependent, TTL: 95 * 24 * time.Hour, InvalidateOnEarnings: true},
	CategoryFundamentalRatios: {Tier: TierEarningsDependent, TTL: 95 * 24 * time.Hour, InvalidateOnEarnings: true},
	CategoryGrowthMetrics:     {Tier: TierEarningsDependent, TTL: 95 * 24 * time.Hour, InvalidateOnEarnings: true},
	CategoryEstimates:         {Tier: TierEarningsDependent, TTL: 7 * 24 * time.Hour, InvalidateOnEarnings: true},
	CategoryGFScore:           {Tier: TierEarningsDependent, TTL: 24 * time.Hour, InvalidateOnEarnings: true},
	CategoryDividends:         {Tier: TierEarningsDependent, TTL: 30 * 24 * time.Hour, InvalidateOnEarnings: true},
	CategoryInsiders:          {Tier: TierEarningsDependent, TTL: 7 * 24 * time.Hour},
	CategoryInsiderUpdates:    {Tier: TierEarningsDependent, TTL: 24 * time.Hour},
	CategoryInsiderCEOBuys:    {Tier: TierEarningsDependent, TTL: 24 * time.Hour},
	CategoryInsiderCFOBuys:    {Tier: TierEarningsDependent, TTL: 24 * time.Hour},
	CategoryInsiderClusterBuy: {Tier: TierEarningsDependent, TTL: 24 * time.Hour},
	CategoryInsiderDouble:     {Tier: TierEarningsDependent, TTL: 24 * time.Hour},
	CategoryInsiderTriple:     {Tier: TierEarningsDependent, TTL: 24 * time.Hour},
	CategoryInsiderList:       {Tier: TierStatic, TTL: 7 * 24 * time.Hour},
	CategoryProfile:           {Tier: TierStatic, TTL: 30 * 24 * time.Hour},
	CategoryGurus:             {Tier: TierStatic, TTL: 14 * 24 * time.Hour},
	CategoryGuruList:          {Tier: TierStatic, TTL: 7 * 24 * time.Hour},
	CategoryExecutives:        {Tier: TierStatic, TTL: 30 * 24 * time.Hour},
	CategoryTradesHistory:     {Tier: TierStatic, TTL: 7 * 24 * time.Hour},
	CategoryScreener:          {Tier: TierPriceDependent, TTL: 24 * time.Hour},
	CategoryAPIUsage:          {Tier: TierPriceDependent, TTL: 5 * time.Minute},

	// The usage snapshot carries a one-year TTL, so in practice it does
	// not expire; the tracker overwrites it on every sync and the cache
	// backend's size-cap eviction is the only thing that can remove it
	// early.
	categoryUsage: {Tier: TierStatic, TTL: 365 * 24 * time.Hour},
}

// PolicyFor returns the category policy, and whether the category is
// recognized. Unrecognized categories have no TTL guarantee.
func PolicyFor(category CacheCategory) (CategoryPolicy, bool) {
	p, ok := categoryCatalogue[category]
	return p, ok
}

// UsageCategory is the reserved category the usage tracker persists its
// snapshot under. It is not part of the public catalogue.
func UsageCategory() CacheCategory { return categoryUsage }

// AllCategories returns the public cache category catalogue sorted by
// name, excluding the reserved usage-tracker category. Intended for
// building a browsable reference (see internal/gfmcp/resources).
func AllCategories() []CacheCategory {
	cats := make([]CacheCategory, 0, len(categoryCatalogue))
	for c := range categoryCatalogue {
		if c == categoryUsage {
			continue
		}
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
