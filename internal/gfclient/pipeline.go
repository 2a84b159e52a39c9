// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfclient implements the HTTP request pipeline that every
// endpoint method funnels through: rate limiting, retry with
// exponential backoff, response classification into the closed error
// taxonomy, circuit breaker protection, and usage-quota bookkeeping.
package gfclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/daveblack/gurufocus-go/internal/gfconfig"
	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmetrics"
	"github.com/daveblack/gurufocus-go/internal/gfmodels"
	"github.com/daveblack/gurufocus-go/internal/gfratelimit"
	"github.com/daveblack/gurufocus-go/internal/gfusage"
)

// maxErrorBodySize bounds how much of an error response body is read
// and carried in a ClientError.
const maxErrorBodySize = 64 * 1024

// Pipeline issues authenticated requests against the upstream API,
// applying rate limiting, retries, and circuit breaker protection.
// It holds no cache state; callers (the endpoint layer) own caching.
type Pipeline struct {
	httpClient *http.Client
	cfg        gfconfig.ClientConfig
	limiter    gfratelimit.Limiter
	usage      gfusage.Tracker
	cb         *gobreaker.CircuitBreaker[*http.Response]
	name       string
}

// NewPipeline builds a Pipeline wired to the given limiter and usage
// tracker. Pass gfratelimit.NullLimiter{} or gfusage.NullTracker{} to
// disable either collaborator.
func NewPipeline(cfg gfconfig.ClientConfig, limiter gfratelimit.Limiter, usage gfusage.Tracker) *Pipeline {
	const cbName = "gurufocus-api"
	gfmetrics.CircuitBreakerState.Set(0)

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			gflog.Info().Str("from", stateLabel(from)).Str("to", stateLabel(to)).Msg("circuit breaker state transition")
			gfmetrics.CircuitBreakerState.Set(stateValue(to))
		},
	})

	return &Pipeline{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		limiter:    limiter,
		usage:      usage,
		cb:         cb,
		name:       cbName,
	}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateLabel(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stockSymbolFrom extracts SYMBOL from an endpoint path of the shape
// "stock/SYMBOL/...", returning "" if the path isn't symbol-scoped.
func stockSymbolFrom(endpointPath string) (symbol string, isStockPath bool) {
	trimmed := strings.TrimPrefix(endpointPath, "/")
	parts := strings.SplitN(trimmed, "/", 3)
	if len(parts) < 2 || parts[0] != "stock" {
		return "", false
	}
	return parts[1], true
}

func (p *Pipeline) buildURL(endpointPath string, query url.Values) (string, error) {
	trimmed := strings.TrimPrefix(endpointPath, "/")
	base := strings.TrimSuffix(p.cfg.BaseURL, "/")
	raw := fmt.Sprintf("%s/%s/%s", base, p.cfg.APIToken, trimmed)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("build request url: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// Request issues method against endpointPath with the given query
// parameters and optional JSON body, retrying transient failures with
// exponential backoff, and decodes the response into result (if
// non-nil). It returns a *gfmodels.ClientError on any upstream or
// transport failure.
func (p *Pipeline) Request(ctx context.Context, method, endpointPath string, query url.Values, body any, result any) (reqErr error) {
	symbol, isStockPath := stockSymbolFrom(endpointPath)
	category := categoryLabel(endpointPath)

	requestID := gflog.GenerateRequestID()
	ctx = gflog.ContextWithRequestID(ctx, requestID)
	reqCtx := gfmodels.RequestContext{
		RequestID: requestID,
		Method:    method,
		Endpoint:  endpointPath,
		Symbol:    symbol,
		StartedAt: time.Now(),
	}

	statusCode := 0
	retryCount := 0
	gflog.CtxDebug(ctx).Str("method", reqCtx.Method).Str("endpoint", reqCtx.Endpoint).Str("symbol", reqCtx.Symbol).Msg("request started")
	defer func() {
		durationMs := time.Since(reqCtx.StartedAt).Milliseconds()
		ev := gflog.CtxDebug(ctx)
		if reqErr != nil {
			ev = gflog.CtxWarn(ctx)
		}
		ev.Int("http.status_code", statusCode).
			Int64("duration_ms", durationMs).
			Int("retry_count", retryCount).
			AnErr("error", reqErr).
			Msg("request finished")
	}()

	var encodedBody []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return gfmodels.NewValidationError(fmt.Sprintf("encode request body: %v", err))
		}
		encodedBody = encoded
	}

	reqURL, err := p.buildURL(endpointPath, query)
	if err != nil {
		return gfmodels.NewValidationError(err.Error())
	}

	maxAttempts := p.cfg.MaxRetries + 1
	var lastErr error
	retryState := gfmodels.RetryState{MaxRetries: p.cfg.MaxRetries, StartedAt: reqCtx.StartedAt}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		retryCount = attempt
		retryState.Attempt = attempt
		if err := ctx.Err(); err != nil {
			return gfmodels.NewNetworkError(err)
		}

		if p.limiter != nil {
			if err := p.limiter.AcquireOrRaise(ctx, p.cfg.Timeout); err != nil {
				return err
			}
		}

		start := time.Now()
		resp, attemptErr := p.doOnce(ctx, method, reqURL, encodedBody)
		elapsed := time.Since(start)

		if attemptErr != nil {
			lastErr = attemptErr
			retryState.LastErr = attemptErr
			gflog.CtxDebug(ctx).Int("attempt", attempt).Err(attemptErr).Msg("request attempt transport error")
			var clientErr *gfmodels.ClientError
			if errors.As(attemptErr, &clientErr) && !clientErr.Retryable() {
				gfmetrics.RequestDuration.WithLabelValues(category, outcomeLabel(clientErr)).Observe(elapsed.Seconds())
				return clientErr
			}
			gfmetrics.RequestDuration.WithLabelValues(category, "retry").Observe(elapsed.Seconds())
			if !retryState.Exhausted() {
				gfmetrics.RetryAttempts.WithLabelValues(category).Inc()
				if err := p.sleepBackoff(ctx, attempt); err != nil {
					return gfmodels.NewNetworkError(err)
				}
				continue
			}
			return lastErr
		}

		statusCode = resp.StatusCode
		classified := classifyStatus(resp, symbol, isStockPath)
		if classified != nil {
			resp.Body.Close()
			lastErr = classified
			retryState.LastErr = classified
			gflog.CtxDebug(ctx).Int("attempt", attempt).Int("http.status_code", statusCode).Msg("request attempt classified as error")
			gfmetrics.RequestDuration.WithLabelValues(category, outcomeLabel(classified)).Observe(elapsed.Seconds())
			if !classified.Retryable() || retryState.Exhausted() {
				return classified
			}
			gfmetrics.RetryAttempts.WithLabelValues(category).Inc()
			if err := p.sleepBackoff(ctx, attempt); err != nil {
				return gfmodels.NewNetworkError(err)
			}
			continue
		}

		gfmetrics.RequestDuration.WithLabelValues(category, "success").Observe(elapsed.Seconds())
		if p.usage != nil {
			p.usage.Decrement()
		}

		if result == nil {
			resp.Body.Close()
			return nil
		}
		decodeErr := json.NewDecoder(resp.Body).Decode(result)
		resp.Body.Close()
		if decodeErr != nil {
			return gfmodels.NewAPIError(resp.StatusCode, fmt.Sprintf("decode response: %v", decodeErr))
		}
		return nil
	}

	return lastErr
}

func (p *Pipeline) doOnce(ctx context.Context, method, reqURL string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, gfmodels.NewValidationError(fmt.Sprintf("build request: %v", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.cb.Execute(func() (*http.Response, error) {
		r, doErr := p.httpClient.Do(req)
		if doErr != nil {
			return nil, gfmodels.NewNetworkError(doErr)
		}
		return r, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, gfmodels.NewAPIError(http.StatusServiceUnavailable, "circuit breaker open")
		}
		var clientErr *gfmodels.ClientError
		if errors.As(err, &clientErr) {
			return nil, clientErr
		}
		return nil, gfmodels.NewNetworkError(err)
	}
	return resp, nil
}

// classifyStatus maps a non-transport HTTP response onto the closed
// error taxonomy. It returns nil for 2xx responses.
func classifyStatus(resp *http.Response, symbol string, isStockPath bool) *gfmodels.ClientError {
	status := resp.StatusCode
	if status >= 200 && status < 300 {
		return nil
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return gfmodels.NewAuthenticationError(fmt.Sprintf("upstream rejected credentials (HTTP %d)", status))
	case status == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return gfmodels.NewRateLimitedError(retryAfter)
	case status == http.StatusNotFound:
		if isStockPath && symbol != "" {
			return gfmodels.NewInvalidSymbolError(symbol)
		}
		return gfmodels.NewNotFoundError(fmt.Sprintf("resource not found (HTTP %d)", status))
	case status >= 500:
		return gfmodels.NewAPIError(status, string(readBodyForError(resp.Body)))
	default:
		return gfmodels.NewAPIError(status, string(readBodyForError(resp.Body)))
	}
}

func parseRetryAfter(header string) int {
	if header == "" {
		return 60
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return seconds
	}
	return 60
}

func readBodyForError(r io.Reader) []byte {
	limited := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

func (p *Pipeline) sleepBackoff(ctx context.Context, attempt int) error {
	delay := p.cfg.RetryDelay * time.Duration(1<<uint(attempt))
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func categoryLabel(endpointPath string) string {
	trimmed := strings.TrimPrefix(endpointPath, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) == 0 {
		return "unknown"
	}
	if parts[0] == "stock" && len(parts) >= 3 {
		return parts[2]
	}
	return parts[0]
}

func outcomeLabel(err *gfmodels.ClientError) string {
	if err == nil {
		return "success"
	}
	return string(err.Kind)
}
