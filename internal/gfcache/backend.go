// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

// Package gfcache implements the persistent cache backend and the
// category-aware cache manager that sits in front of it.
package gfcache

import (
	"context"
	"errors"
	"path"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/daveblack/gurufocus-go/internal/gflog"
	"github.com/daveblack/gurufocus-go/internal/gfmetrics"
)

// Stats summarizes backend state for monitoring.
type Stats struct {
	Directory     string
	ResidentBytes int64
	ItemCount     int
	SizeCapBytes  int64
}

// Backend is a persistent, local key-to-value store with TTL, a
// resident-size cap enforced by LRU eviction, and glob-pattern
// deletion. Implementations must serialize their own internal state;
// callers may invoke operations from multiple concurrent goroutines.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string) bool
	DeletePattern(ctx context.Context, glob string) int
	Exists(ctx context.Context, key string) bool
	Clear(ctx context.Context)
	Close() error
	Stats() Stats
}

// storedEntry is the on-disk envelope for one cache value. Badger
// already expires keys past their TTL, but we keep ExpiresAt alongside
// the payload so Get and Exists can reject an expired entry that badger
// has not yet dropped.
type storedEntry struct {
	Value     []byte `json:"value"`
	ExpiresAt int64  `json:"expires_at"`
}

// BadgerBackend is the default Backend, built on an embedded
// dgraph-io/badger store. It persists across restarts by construction
// (badger is an on-disk LSM store), and layers a resident-size cap
// with LRU eviction on top of badger's own TTL support, following the
// transaction and iteration patterns used by
// internal/auth/session_badger.go in the teacher codebase.
type BadgerBackend struct {
	db  *badger.DB
	dir string

	index       *sizeIndex
	sizeCap     int64
	cleanupOnce sync.Once
	cancelClean context.CancelFunc
}

// OpenBadgerBackend opens (or creates) a badger store at dir and
// starts its periodic expired-key cleanup goroutine. sizeCapBytes
// bounds the resident size this backend will retain; once exceeded on
// insert, least-recently-used entries are evicted until the cap is
// respected again.
func OpenBadgerBackend(dir string, sizeCapBytes int64) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	b := &BadgerBackend{
		db:      db,
		dir:     dir,
		index:   newSizeIndex(),
		sizeCap: sizeCapBytes,
	}
	b.rebuildIndex()

	ctx, cancel := context.WithCancel(context.Background())
	b.cancelClean = cancel
	go b.cleanupLoop(ctx, 5*time.Minute)

	return b, nil
}

// rebuildIndex seeds the in-memory LRU index from whatever survives a
// restart. Per-key last-access ordering from before the restart is not
// recoverable without persisting it on every read (which would trade
// read latency for eviction precision), so all resurrected keys start
// tied at "just touched" — the first eviction after a restart falls
// back to iteration order until real access patterns re-establish
// recency. This is a deliberate precision/latency tradeoff.
func (b *BadgerBackend) rebuildIndex() {
	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.KeyCopy(nil))
			size := item.ValueSize()
			b.index.touch(key, size)
		}
		return nil
	})
}

func (b *BadgerBackend) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				gflog.Debug().Err(err).Msg("cache value log gc skipped")
			}
		}
	}
}

// Get retrieves a value, refreshing its LRU position on hit. Storage
// faults degrade to a miss and are logged, never returned to the
// caller.
func (b *BadgerBackend) Get(ctx context.Context, key string) ([]byte, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	default:
	}

	var entry storedEntry
	var storedSize int64
	found := false

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			if jerr := json.Unmarshal(val, &entry); jerr != nil {
				return jerr
			}
			storedSize = int64(len(val))
			found = true
			return nil
		})
	})
	if err != nil {
		gflog.Warn().Err(err).Str("key", key).Msg("cache read fault, treating as miss")
		return nil, false
	}
	if !found {
		return nil, false
	}

	if time.Now().Unix() >= entry.ExpiresAt {
		return nil, false
	}

	b.index.touch(key, storedSize)
	return entry.Value, true
}

// Set writes value under key with an absolute expiry of now+ttl, then
// evicts least-recently-used entries if the resident size cap would
// otherwise be exceeded.
func (b *BadgerBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	select {
	case <-ctx.Done():
		return
	default:
	}

	entry := storedEntry{Value: value, ExpiresAt: time.Now().Add(ttl).Unix()}
	encoded, err := json.Marshal(entry)
	if err != nil {
		gflog.Warn().Err(err).Str("key", key).Msg("cache encode fault, write skipped")
		return
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), encoded).WithTTL(ttl)
		return txn.SetEntry(e)
	})
	if err != nil {
		gflog.Warn().Err(err).Str("key", key).Msg("cache write fault")
		return
	}

	total := b.index.touch(key, int64(len(encoded)))
	if b.sizeCap > 0 && total > b.sizeCap {
		b.index.evictUntil(b.sizeCap, func(evictKey string) {
			_ = b.db.Update(func(txn *badger.Txn) error {
				return txn.Delete([]byte(evictKey))
			})
		})
	}
	gfmetrics.CacheResidentBytes.Set(float64(b.index.totalBytes()))
}

// Delete removes key, reporting whether it previously existed.
func (b *BadgerBackend) Delete(ctx context.Context, key string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	existed := false
	err := b.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err == nil {
			existed = true
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Delete([]byte(key))
	})
	if err != nil {
		gflog.Warn().Err(err).Str("key", key).Msg("cache delete fault")
		return false
	}
	b.index.remove(key)
	gfmetrics.CacheResidentBytes.Set(float64(b.index.totalBytes()))
	return existed
}

// DeletePattern deletes every key matching the shell-style glob
// (`*`, `?`, character classes), returning the count removed.
func (b *BadgerBackend) DeletePattern(ctx context.Context, glob string) int {
	var matched []string

	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			key := string(it.Item().KeyCopy(nil))
			if ok, _ := path.Match(glob, key); ok {
				matched = append(matched, key)
			}
		}
		return nil
	})

	count := 0
	for _, key := range matched {
		if b.Delete(ctx, key) {
			count++
		}
	}
	return count
}

// Exists reports whether key is present and unexpired, without
// touching LRU order: unlike Get, a hit here does not count as an
// access for eviction purposes.
func (b *BadgerBackend) Exists(ctx context.Context, key string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	var entry storedEntry
	found := false
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			if jerr := json.Unmarshal(val, &entry); jerr != nil {
				return jerr
			}
			found = true
			return nil
		})
	})
	if err != nil || !found {
		return false
	}
	return time.Now().Unix() < entry.ExpiresAt
}

// Clear removes every entry.
func (b *BadgerBackend) Clear(ctx context.Context) {
	if err := b.db.DropAll(); err != nil {
		gflog.Warn().Err(err).Msg("cache clear fault")
		return
	}
	b.index.clear()
	gfmetrics.CacheResidentBytes.Set(0)
}

// Close releases the badger store and stops the cleanup goroutine.
// Idempotent.
func (b *BadgerBackend) Close() error {
	var err error
	b.cleanupOnce.Do(func() {
		if b.cancelClean != nil {
			b.cancelClean()
		}
		err = b.db.Close()
	})
	return err
}

// Stats returns a snapshot of backend occupancy.
func (b *BadgerBackend) Stats() Stats {
	return Stats{
		Directory:     b.dir,
		ResidentBytes: b.index.totalBytes(),
		ItemCount:     b.index.count(),
		SizeCapBytes:  b.sizeCap,
	}
}

var _ Backend = (*BadgerBackend)(nil)
