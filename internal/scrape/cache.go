// Package scrape - cache.go provides TTL caching of resolved documents.
package scrape

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a resolved page is reused before the
// pipeline runs again. Postings change rarely; walls and blocks should not
// be remembered at all, so only successes are cached.
const DefaultCacheTTL = 15 * time.Minute

// DocumentCache remembers successful resolutions by URL so repeated
// requests for the same page skip the render strategies entirely.
type DocumentCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result   PipelineResult
	storedAt time.Time
}

// NewDocumentCache creates a cache with the given TTL. A non-positive TTL
// falls back to the default.
func NewDocumentCache(ttl time.Duration) *DocumentCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &DocumentCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached result for a URL if it is still fresh.
func (c *DocumentCache) Get(url string) (PipelineResult, bool) {
	c.mu.RLock()
	entry, ok := c.entries[url]
	c.mu.RUnlock()

	if !ok {
		return PipelineResult{}, false
	}
	if time.Since(entry.storedAt) > c.ttl {
		c.Invalidate(url)
		return PipelineResult{}, false
	}
	return entry.result, true
}

// Put stores a successful result. Failures are never cached; the next
// request should get a fresh escalation.
func (c *DocumentCache) Put(url string, result PipelineResult) {
	if !result.Succeeded() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = cacheEntry{result: result, storedAt: time.Now()}
}

// Invalidate drops the cached entry for a URL, forcing re-resolution.
func (c *DocumentCache) Invalidate(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, url)
}
