// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package router

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheLimit is the maximum number of compiled patterns retained by a [Matcher].
const DefaultCacheLimit = 10000

// CacheStats reports the activity of the pattern cache of a [Matcher].
type CacheStats struct {
	// Entries is the number of compiled patterns currently stored.
	Entries int
	// Limit is the maximum number of stored entries.
	Limit int
	// Hits counts lookups served by a stored entry.
	Hits uint64
	// Misses counts lookups that required a compilation.
	Misses uint64
	// Overflows counts compilations that were not stored because the cache was full.
	Overflows uint64
}

// patternCache memoizes compiled patterns per flags and pattern. Once limit entries are stored,
// new patterns are compiled on every lookup and never stored, while stored entries stay valid.
type patternCache struct {
	compiler Compiler
	logger   *slog.Logger
	metrics  *cacheMetrics

	group   singleflight.Group
	mu      sync.RWMutex
	buckets map[string]map[string]Compiled
	count   int
	limit   int

	hits      atomic.Uint64
	misses    atomic.Uint64
	overflows atomic.Uint64
	full      sync.Once
}

func newPatternCache(compiler Compiler, limit int, logger *slog.Logger, metrics *cacheMetrics) *patternCache {
	return &patternCache{
		compiler: compiler,
		logger:   logger,
		metrics:  metrics,
		buckets:  make(map[string]map[string]Compiled, 4),
		limit:    limit,
	}
}

// get returns the compiled matcher for path and flags, compiling it on a miss. Concurrent misses
// for the same key share a single compilation and all return the stored instance. Compilation
// errors are returned unchanged.
func (c *patternCache) get(path string, flags Flags) (Compiled, error) {
	key := flags.key()

	c.mu.RLock()
	compiled, ok := c.buckets[key][path]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		c.metrics.hit()
		return compiled, nil
	}

	c.misses.Add(1)
	c.metrics.miss()

	v, err, _ := c.group.Do(key+"\x00"+path, func() (any, error) {
		return c.load(path, key, flags)
	})
	if err != nil {
		return nil, err
	}
	return v.(Compiled), nil
}

// load compiles path and stores it under key unless the cache is full. A caller that lost the race
// against a completed compilation gets the stored instance without compiling again.
func (c *patternCache) load(path, key string, flags Flags) (Compiled, error) {
	c.mu.RLock()
	existing, ok := c.buckets[key][path]
	c.mu.RUnlock()
	if ok {
		return existing, nil
	}

	compiled, err := c.compiler.Compile(path, flags)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("pattern compiled", slog.String("pattern", path), slog.Bool("end", flags.End), slog.Bool("strict", flags.Strict))

	c.mu.Lock()
	bucket, ok := c.buckets[key]
	if !ok {
		bucket = make(map[string]Compiled)
		c.buckets[key] = bucket
	}

	if existing, ok := bucket[path]; ok {
		c.mu.Unlock()
		return existing, nil
	}

	if c.count >= c.limit {
		c.mu.Unlock()
		c.overflows.Add(1)
		c.metrics.overflow()
		c.full.Do(func() {
			c.logger.Warn(
				"pattern cache limit reached, new patterns are no longer cached",
				slog.Int("limit", c.limit),
				slog.String("pattern", path),
			)
		})
		return compiled, nil
	}

	bucket[path] = compiled
	c.count++
	entries := c.count
	c.mu.Unlock()

	c.metrics.stored(entries)
	return compiled, nil
}

func (c *patternCache) stats() CacheStats {
	c.mu.RLock()
	entries := c.count
	c.mu.RUnlock()

	return CacheStats{
		Entries:   entries,
		Limit:     c.limit,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Overflows: c.overflows.Load(),
	}
}
