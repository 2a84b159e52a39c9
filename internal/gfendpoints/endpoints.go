// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfendpoints exposes one raw and one typed method per
// upstream endpoint. Raw methods return the decoded-but-unprocessed
// JSON payload; typed methods parse it into the dto package's
// structures. Both consult the cache manager before falling back to
// the pipeline, and populate the cache on a successful fetch.
package gfendpoints

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/daveblack/gurufocus-go/internal/gfcache"
	"github.com/daveblack/gurufocus-go/internal/gfclient"
	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmetrics"
	"github.com/daveblack/gurufocus-go/internal/gfmodels"
	"github.com/daveblack/gurufocus-go/internal/gfmodels/dto"
	"github.com/daveblack/gurufocus-go/internal/gfusage"
)

// Endpoints is the typed endpoint layer built atop a Client.
type Endpoints struct {
	pipeline *gfclient.Pipeline
	cache    gfcache.Manager
	usage    gfusage.Tracker
}

// New builds an Endpoints layer from an already-constructed Client.
func New(client *gfclient.Client) *Endpoints {
	return &Endpoints{pipeline: client.Pipeline, cache: client.Cache, usage: client.Usage}
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// fetchRaw consults the cache for fp unless bypass is set, falling
// back to calling fn and caching its result on success.
func (e *Endpoints) fetchRaw(ctx context.Context, fp gfmodels.Fingerprint, bypass bool, fn func() (json.RawMessage, error)) (json.RawMessage, error) {
	category := string(fp.Category)
	if cached, ok := e.cache.Get(ctx, fp, bypass); ok {
		gfmetrics.CacheHits.WithLabelValues(category).Inc()
		return cached, nil
	}
	gfmetrics.CacheMisses.WithLabelValues(category).Inc()

	raw, err := fn()
	if err != nil {
		return nil, err
	}
	e.cache.Set(ctx, fp, raw, 0)
	if fp.Category != gfmodels.CategoryAPIUsage {
		go e.maybeSyncUsage()
	}
	return raw, nil
}

// maybeSyncUsage opportunistically refreshes the usage tracker's
// authoritative reading once per SyncInterval, piggybacking on normal
// endpoint traffic rather than running its own ticker. It runs
// detached from the triggering request's context so a canceled caller
// doesn't abort an in-flight sync.
func (e *Endpoints) maybeSyncUsage() {
	if e.usage == nil || !e.usage.ShouldSync() {
		return
	}
	if _, err := e.APIUsage(context.Background(), true); err != nil {
		gflog.Debug().Err(err).Msg("periodic usage sync failed")
	}
}

func (e *Endpoints) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := e.pipeline.Request(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SummaryRaw fetches the raw summary payload for symbol.
func (e *Endpoints) SummaryRaw(ctx context.Context, symbol string, bypass bool) (json.RawMessage, error) {
	symbol = normalizeSymbol(symbol)
	fp := gfmodels.NewFingerprint(gfmodels.CategorySummary, symbol)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, fmt.Sprintf("stock/%s/summary", symbol), nil)
	})
}

// Summary fetches and parses the stock summary for symbol.
func (e *Endpoints) Summary(ctx context.Context, symbol string, bypass bool) (*dto.StockSummary, error) {
	symbol = normalizeSymbol(symbol)
	raw, err := e.SummaryRaw(ctx, symbol, bypass)
	if err != nil {
		return nil, err
	}
	return dto.ParseStockSummary(raw, symbol), nil
}

// KeyRatiosRaw fetches the raw key ratios payload for symbol.
func (e *Endpoints) KeyRatiosRaw(ctx context.Context, symbol string, bypass bool) (json.RawMessage, error) {
	symbol = normalizeSymbol(symbol)
	fp := gfmodels.NewFingerprint(gfmodels.CategoryKeyRatios, symbol)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, fmt.Sprintf("stock/%s/keyratios", symbol), nil)
	})
}

// KeyRatios fetches and parses key ratios for symbol.
func (e *Endpoints) KeyRatios(ctx context.Context, symbol string, bypass bool) (*dto.KeyRatios, error) {
	symbol = normalizeSymbol(symbol)
	raw, err := e.KeyRatiosRaw(ctx, symbol, bypass)
	if err != nil {
		return nil, err
	}
	return dto.ParseKeyRatios(raw, symbol), nil
}

// FinancialsRaw fetches the raw financial statements payload for symbol.
func (e *Endpoints) FinancialsRaw(ctx context.Context, symbol, periodType string, bypass bool) (json.RawMessage, error) {
	symbol = normalizeSymbol(symbol)
	if periodType == "" {
		periodType = "annual"
	}
	fp := gfmodels.NewFingerprint(gfmodels.CategoryFinancials, symbol, periodType)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, fmt.Sprintf("stock/%s/financials", symbol), nil)
	})
}

// Financials fetches and parses financial statements for symbol.
func (e *Endpoints) Financials(ctx context.Context, symbol, periodType string, bypass bool) (*dto.FinancialStatements, error) {
	symbol = normalizeSymbol(symbol)
	if periodType == "" {
		periodType = "annual"
	}
	raw, err := e.FinancialsRaw(ctx, symbol, periodType, bypass)
	if err != nil {
		return nil, err
	}
	return dto.ParseFinancialStatements(raw, symbol, periodType), nil
}

// DividendsRaw fetches the raw dividend history payload for symbol.
func (e *Endpoints) DividendsRaw(ctx context.Context, symbol string, bypass bool) (json.RawMessage, error) {
	symbol = normalizeSymbol(symbol)
	fp := gfmodels.NewFingerprint(gfmodels.CategoryDividends, symbol)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, fmt.Sprintf("stock/%s/dividend", symbol), nil)
	})
}

// Dividends fetches and parses dividend history for symbol.
func (e *Endpoints) Dividends(ctx context.Context, symbol string, bypass bool) (*dto.DividendHistory, error) {
	symbol = normalizeSymbol(symbol)
	raw, err := e.DividendsRaw(ctx, symbol, bypass)
	if err != nil {
		return nil, err
	}
	return dto.ParseDividendHistory(raw, symbol), nil
}

// CurrentDividendRaw fetches the raw current-dividend snapshot for symbol.
func (e *Endpoints) CurrentDividendRaw(ctx context.Context, symbol string, bypass bool) (json.RawMessage, error) {
	symbol = normalizeSymbol(symbol)
	fp := gfmodels.NewFingerprint(gfmodels.CategoryCurrentDividend, symbol)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, fmt.Sprintf("stock/%s/current_dividend", symbol), nil)
	})
}

// CurrentDividend fetches and parses the current-dividend snapshot for symbol.
func (e *Endpoints) CurrentDividend(ctx context.Context, symbol string, bypass bool) (*dto.CurrentDividend, error) {
	symbol = normalizeSymbol(symbol)
	raw, err := e.CurrentDividendRaw(ctx, symbol, bypass)
	if err != nil {
		return nil, err
	}
	return dto.ParseCurrentDividend(raw, symbol), nil
}

// InsiderTradesRaw fetches the raw insider trades payload for symbol.
func (e *Endpoints) InsiderTradesRaw(ctx context.Context, symbol string, bypass bool) (json.RawMessage, error) {
	symbol = normalizeSymbol(symbol)
	fp := gfmodels.NewFingerprint(gfmodels.CategoryInsiders, symbol)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, fmt.Sprintf("stock/%s/insider", symbol), nil)
	})
}

// InsiderTrades fetches and parses insider trades for symbol.
func (e *Endpoints) InsiderTrades(ctx context.Context, symbol string, bypass bool) (*dto.InsiderTrades, error) {
	symbol = normalizeSymbol(symbol)
	raw, err := e.InsiderTradesRaw(ctx, symbol, bypass)
	if err != nil {
		return nil, err
	}
	return dto.ParseInsiderTrades(raw, symbol), nil
}

// GurusRaw fetches the raw guru picks/holdings payload for symbol.
func (e *Endpoints) GurusRaw(ctx context.Context, symbol string, bypass bool) (json.RawMessage, error) {
	symbol = normalizeSymbol(symbol)
	fp := gfmodels.NewFingerprint(gfmodels.CategoryGurus, symbol)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, fmt.Sprintf("stock/%s/guru_trade", symbol), nil)
	})
}

// Gurus fetches and parses guru picks/holdings for symbol.
func (e *Endpoints) Gurus(ctx context.Context, symbol string, bypass bool) (*dto.StockGurusResponse, error) {
	symbol = normalizeSymbol(symbol)
	raw, err := e.GurusRaw(ctx, symbol, bypass)
	if err != nil {
		return nil, err
	}
	return dto.ParseStockGurusResponse(raw, symbol), nil
}

// GuruListRaw fetches one page of the raw gurus directory payload.
func (e *Endpoints) GuruListRaw(ctx context.Context, page int, bypass bool) (json.RawMessage, error) {
	fp := gfmodels.NewFingerprint(gfmodels.CategoryGuruList, strconv.Itoa(page))
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		q := url.Values{"page": []string{strconv.Itoa(page)}}
		return e.get(ctx, "gurus/list", q)
	})
}

// GuruList returns a pagination iterator over the full gurus directory.
func (e *Endpoints) GuruList(bypass bool, maxPages int) *PageIterator[dto.GuruInfo] {
	fetch := func(ctx context.Context, page int) (Page[dto.GuruInfo], error) {
		raw, err := e.GuruListRaw(ctx, page, bypass)
		if err != nil {
			return Page[dto.GuruInfo]{}, err
		}
		list := dto.ParseGuruList(raw)
		env := pageEnvelope(raw)
		return Page[dto.GuruInfo]{Items: list.Gurus, CurrentPage: env.currentPage, LastPage: env.lastPage}, nil
	}
	return NewPageIterator(fetch, maxPages)
}

// GuruHoldingsRaw fetches one page of a guru's raw portfolio payload.
func (e *Endpoints) GuruHoldingsRaw(ctx context.Context, guruID string, page int, bypass bool) (json.RawMessage, error) {
	fp := gfmodels.NewFingerprint(gfmodels.CategoryTradesHistory, guruID, strconv.Itoa(page))
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		q := url.Values{"page": []string{strconv.Itoa(page)}}
		return e.get(ctx, fmt.Sprintf("guru/%s/holdings", guruID), q)
	})
}

// GuruHoldings returns a pagination iterator over one guru's full portfolio.
func (e *Endpoints) GuruHoldings(guruID string, bypass bool, maxPages int) *PageIterator[dto.GuruHolding] {
	fetch := func(ctx context.Context, page int) (Page[dto.GuruHolding], error) {
		raw, err := e.GuruHoldingsRaw(ctx, guruID, page, bypass)
		if err != nil {
			return Page[dto.GuruHolding]{}, err
		}
		holdings := dto.ParseGuruHoldings(raw)
		env := pageEnvelope(raw)
		return Page[dto.GuruHolding]{Items: holdings, CurrentPage: env.currentPage, LastPage: env.lastPage}, nil
	}
	return NewPageIterator(fetch, maxPages)
}

// EstimatesRaw fetches the raw analyst estimates payload for symbol.
func (e *Endpoints) EstimatesRaw(ctx context.Context, symbol string, bypass bool) (json.RawMessage, error) {
	symbol = normalizeSymbol(symbol)
	fp := gfmodels.NewFingerprint(gfmodels.CategoryEstimates, symbol)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, fmt.Sprintf("stock/%s/analyst_estimate", symbol), nil)
	})
}

// Estimates fetches and parses analyst estimates for symbol.
func (e *Endpoints) Estimates(ctx context.Context, symbol string, bypass bool) (*dto.AnalystEstimates, error) {
	symbol = normalizeSymbol(symbol)
	raw, err := e.EstimatesRaw(ctx, symbol, bypass)
	if err != nil {
		return nil, err
	}
	return dto.ParseAnalystEstimates(raw, symbol), nil
}

// Screener runs a screener query. Screener results are not cached:
// the same filter set can return different rankings as market data
// updates throughout the trading day.
func (e *Endpoints) Screener(ctx context.Context, req dto.ScreenerRequest) (*dto.ScreenerResult, error) {
	if err := gfmodels.ValidateStruct(req); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := e.pipeline.Request(ctx, http.MethodPost, "screener", nil, req, &raw); err != nil {
		return nil, err
	}
	gfmetrics.CacheMisses.WithLabelValues(string(gfmodels.CategoryScreener)).Inc()
	return dto.ParseScreenerResult(raw), nil
}

// APIUsageRaw fetches the raw account-usage payload for the
// configured token. It is cached briefly (see
// gfmodels.CategoryAPIUsage) since the upstream value is itself only
// refreshed periodically.
func (e *Endpoints) APIUsageRaw(ctx context.Context, bypass bool) (json.RawMessage, error) {
	fp := gfmodels.NewFingerprint(gfmodels.CategoryAPIUsage)
	return e.fetchRaw(ctx, fp, bypass, func() (json.RawMessage, error) {
		return e.get(ctx, "api_usage", nil)
	})
}

// APIUsage fetches and parses account usage, and feeds the result's
// api_requests_remaining back into the usage tracker as the
// authoritative reading, the way the pipeline's local decrement
// estimate is periodically corrected.
func (e *Endpoints) APIUsage(ctx context.Context, bypass bool) (*dto.APIUsage, error) {
	raw, err := e.APIUsageRaw(ctx, bypass)
	if err != nil {
		return nil, err
	}
	usage := dto.ParseAPIUsage(raw)
	if e.usage != nil {
		e.usage.Sync(ctx, usage.APIRequestsRemaining)
	}
	return usage, nil
}

type pageEnv struct {
	currentPage int
	lastPage    int
}

// pageEnvelope extracts current_page/last_page from a paginated
// response's top level, defaulting to a single page when absent.
func pageEnvelope(raw json.RawMessage) pageEnv {
	var env struct {
		CurrentPage int `json:"current_page"`
		LastPage    int `json:"last_page"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		gflog.Debug().Err(err).Msg("pagination envelope missing, treating as single page")
		return pageEnv{currentPage: 1, lastPage: 1}
	}
	if env.LastPage == 0 {
		env.LastPage = 1
	}
	if env.CurrentPage == 0 {
		env.CurrentPage = 1
	}
	return pageEnv{currentPage: env.CurrentPage, lastPage: env.LastPage}
}
