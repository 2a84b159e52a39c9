// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmodels

import "fmt"

// ErrorKind is the closed taxonomy of client failures. Classification
// rules live at the HTTP pipeline boundary; every other layer only
// ever sees *ClientError values carrying one of these kinds.
type ErrorKind string

const (
	KindAuthentication ErrorKind = "authentication"
	KindRateLimited    ErrorKind = "rate_limited"
	KindInvalidSymbol  ErrorKind = "invalid_symbol"
	KindNotFound       ErrorKind = "not_found"
	KindAPIError       ErrorKind = "api_error"
	KindNetwork        ErrorKind = "network"
	KindValidation     ErrorKind = "validation"
)

// ClientError is the single error type surfaced across package
// boundaries. Kind selects the taxonomy member; the optional fields
// are populated only by the kinds that carry them.
type ClientError struct {
	Kind       ErrorKind
	Message    string
	RetryAfter int    // seconds; set only for KindRateLimited
	Symbol     string // set only for KindInvalidSymbol
	StatusCode int    // set only for KindAPIError
	Body       string // truncated response body (<=500 chars); KindAPIError
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ClientError) Unwrap() error { return e.Cause }

// Is supports errors.Is(err, gfmodels.ErrRateLimited) style sentinel
// comparisons based on Kind alone, ignoring the per-kind payload.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors usable with errors.Is; payload fields are zero.
var (
	ErrAuthentication = &ClientError{Kind: KindAuthentication}
	ErrRateLimited    = &ClientError{Kind: KindRateLimited}
	ErrInvalidSymbol  = &ClientError{Kind: KindInvalidSymbol}
	ErrNotFound       = &ClientError{Kind: KindNotFound}
	ErrAPIError       = &ClientError{Kind: KindAPIError}
	ErrNetwork        = &ClientError{Kind: KindNetwork}
	ErrValidation     = &ClientError{Kind: KindValidation}
)

// NewAuthenticationError builds an Authentication error with a
// user-actionable message.
func NewAuthenticationError(message string) *ClientError {
	if message == "" {
		message = "authentication failed; verify GURUFOCUS_API_TOKEN is set and valid"
	}
	return &ClientError{Kind: KindAuthentication, Message: message}
}

// NewRateLimitedError builds a RateLimited error carrying the number
// of seconds the caller should wait before retrying.
func NewRateLimitedError(retryAfter int) *ClientError {
	return &ClientError{
		Kind:       KindRateLimited,
		Message:    fmt.Sprintf("rate limit exceeded, retry after %ds", retryAfter),
		RetryAfter: retryAfter,
	}
}

// NewInvalidSymbolError builds an InvalidSymbol error for the given
// ticker.
func NewInvalidSymbolError(symbol string) *ClientError {
	return &ClientError{
		Kind:    KindInvalidSymbol,
		Message: fmt.Sprintf("invalid symbol %q; verify ticker form and exchange suffix", symbol),
		Symbol:  symbol,
	}
}

// NewNotFoundError builds a NotFound error for a non-symbol path.
func NewNotFoundError(message string) *ClientError {
	return &ClientError{Kind: KindNotFound, Message: message}
}

// NewAPIError builds an APIError carrying the offending status code
// and a response body truncated to 500 characters.
func NewAPIError(statusCode int, body string) *ClientError {
	if len(body) > 500 {
		body = body[:500]
	}
	return &ClientError{
		Kind:       KindAPIError,
		Message:    fmt.Sprintf("unexpected API response (status %d)", statusCode),
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewNetworkError wraps a transport-level failure (connect, timeout,
// DNS, reset).
func NewNetworkError(cause error) *ClientError {
	return &ClientError{Kind: KindNetwork, Message: "network error", Cause: cause}
}

// NewValidationError builds a Validation error for a response whose
// top-level shape is fundamentally incompatible with what was
// expected (not for a single missing/null field — those degrade to an
// absent optional, see ParseOptionalNumber).
func NewValidationError(message string) *ClientError {
	return &ClientError{Kind: KindValidation, Message: message}
}

// Retryable reports whether the pipeline should attempt another
// request for this error: 5xx APIError and Network are retryable;
// everything else is terminal.
func (e *ClientError) Retryable() bool {
	switch e.Kind {
	case KindNetwork:
		return true
	case KindAPIError:
		return e.StatusCode >= 500
	default:
		return false
	}
}
