// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfendpoints

import "context"

// Page is one fetched page of a paginated endpoint: its items plus
// the page numbers the upstream response declared.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	LastPage    int
}

// PageFetcher retrieves page n (1-indexed) of a paginated endpoint.
type PageFetcher[T any] func(ctx context.Context, page int) (Page[T], error)

// PageIterator lazily walks a paginated endpoint one page at a time,
// yielding items in order. It terminates when the response declares
// current_page >= last_page, an empty page is returned, or MaxPages
// is reached; there is no prefetch.
type PageIterator[T any] struct {
	fetch    PageFetcher[T]
	maxPages int

	buffer     []T
	nextPage   int
	done       bool
}

// NewPageIterator builds an iterator over fetch, stopping after
// maxPages pages have been fetched (0 means unbounded).
func NewPageIterator[T any](fetch PageFetcher[T], maxPages int) *PageIterator[T] {
	return &PageIterator[T]{fetch: fetch, maxPages: maxPages, nextPage: 1}
}

// Next returns the next item in traversal order. ok is false once the
// iterator is exhausted; err is non-nil if a page fetch failed, in
// which case the iterator is also exhausted.
func (it *PageIterator[T]) Next(ctx context.Context) (item T, ok bool, err error) {
	for len(it.buffer) == 0 {
		if it.done {
			var zero T
			return zero, false, nil
		}
		if it.maxPages > 0 && it.nextPage > it.maxPages {
			it.done = true
			var zero T
			return zero, false, nil
		}

		page, fetchErr := it.fetch(ctx, it.nextPage)
		if fetchErr != nil {
			it.done = true
			var zero T
			return zero, false, fetchErr
		}

		if len(page.Items) == 0 {
			it.done = true
			var zero T
			return zero, false, nil
		}

		it.buffer = page.Items
		if page.LastPage > 0 && page.CurrentPage >= page.LastPage {
			it.done = true
		}
		it.nextPage++
	}

	item = it.buffer[0]
	it.buffer = it.buffer[1:]
	return item, true, nil
}

// Collect drains the iterator into a slice, stopping early on error.
func (it *PageIterator[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for {
		item, ok, err := it.Next(ctx)
		if err != nil {
			return all, err
		}
		if !ok {
			return all, nil
		}
		all = append(all, item)
	}
}
