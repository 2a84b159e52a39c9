// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfcache

import "sync"

// lruEntry is one node of the size-tracking access-order list.
type lruEntry struct {
	key       string
	size      int64
	prev      *lruEntry
	next      *lruEntry
}

// sizeIndex tracks per-key resident size in most-recently-used order
// so the backend can decide which keys to evict once the resident
// size cap would be exceeded. It holds no values, only bookkeeping —
// the badger store remains the source of truth for data.
//
// The doubly-linked-list-plus-map structure mirrors
// internal/cache.LRUCache from the teacher codebase, generalized here
// to track byte size instead of a fixed timestamp payload.
type sizeIndex struct {
	mu sync.Mutex

	nodes      map[string]*lruEntry
	head, tail *lruEntry
	total      int64
}

func newSizeIndex() *sizeIndex {
	idx := &sizeIndex{
		nodes: make(map[string]*lruEntry),
		head:  &lruEntry{},
		tail:  &lruEntry{},
	}
	idx.head.next = idx.tail
	idx.tail.prev = idx.head
	return idx
}

// touch records a set/get for key with the given resident size,
// moving it to the most-recently-used position. Returns the new total
// resident size.
func (idx *sizeIndex) touch(key string, size int64) int64 {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if e, ok := idx.nodes[key]; ok {
		idx.total += size - e.size
		e.size = size
		idx.moveToFront(e)
		return idx.total
	}

	e := &lruEntry{key: key, size: size}
	idx.addToFront(e)
	idx.nodes[key] = e
	idx.total += size
	return idx.total
}

// remove drops key from the index, if present.
func (idx *sizeIndex) remove(key string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if e, ok := idx.nodes[key]; ok {
		idx.removeEntry(e)
	}
}

// clear empties the index.
func (idx *sizeIndex) clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.nodes = make(map[string]*lruEntry)
	idx.head.next = idx.tail
	idx.tail.prev = idx.head
	idx.total = 0
}

// evictUntil pops least-recently-used keys, invoking onEvict for each,
// until the resident total is at or below cap or the index is empty.
// onEvict performs the actual backend delete; the index subtracts the
// evicted key's tracked size from the total itself, before the
// callback runs.
func (idx *sizeIndex) evictUntil(cap int64, onEvict func(key string)) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for idx.total > cap {
		oldest := idx.tail.prev
		if oldest == idx.head {
			return
		}
		key := oldest.key
		size := oldest.size
		idx.removeEntry(oldest)
		idx.total -= size

		idx.mu.Unlock()
		onEvict(key)
		idx.mu.Lock()
	}
}

func (idx *sizeIndex) totalBytes() int64 {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.total
}

func (idx *sizeIndex) count() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.nodes)
}

func (idx *sizeIndex) addToFront(e *lruEntry) {
	e.prev = idx.head
	e.next = idx.head.next
	idx.head.next.prev = e
	idx.head.next = e
}

func (idx *sizeIndex) moveToFront(e *lruEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	idx.addToFront(e)
}

func (idx *sizeIndex) removeEntry(e *lruEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(idx.nodes, e.key)
}
