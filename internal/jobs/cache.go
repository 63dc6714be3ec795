package jobs

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	fetchedAt time.Time
	postings  []Posting
}

// Cache is an in-memory TTL cache of normalized listings keyed by search
// keyword. Reads and writes use plain check-then-write under one mutex;
// concurrent refreshes for the same keyword may both hit upstream and the
// last writer wins.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry

	// now is swappable for expiry tests.
	now func() time.Time
}

// NewCache builds a cache with the given TTL. A non-positive TTL disables
// caching entirely.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func cacheKey(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// Get returns the cached listings for keyword when present and fresh.
func (c *Cache) Get(keyword string) ([]Posting, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[cacheKey(keyword)]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.postings, true
}

// Set overwrites the entry for keyword with fresh listings.
func (c *Cache) Set(keyword string, postings []Posting) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(keyword)] = cacheEntry{fetchedAt: c.now(), postings: postings}
}
