package suggest

import (
	"sync"
)

type cacheEntry struct {
	limit       int
	suggestions []string
}

// Cache memoizes suggestion lists per input word.
// Entries are never evicted; an entry is only replaced by a list computed
// for a larger limit.
type Cache struct {
	entries map[string]cacheEntry
	hits    int64
	mu      sync.RWMutex
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Lookup returns at most limit cached suggestions for word. It misses when
// the cached list was computed for a smaller limit and was full, since a
// larger limit could find more.
func (c *Cache) Lookup(word string, limit int) ([]string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[word]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if limit > entry.limit && len(entry.suggestions) >= entry.limit {
		return nil, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()

	n := min(limit, len(entry.suggestions))
	out := make([]string, n)
	copy(out, entry.suggestions[:n])
	return out, true
}

// Store records suggestions computed for word with limit.
func (c *Cache) Store(word string, limit int, suggestions []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[word]; ok && entry.limit >= limit {
		return
	}
	kept := make([]string, len(suggestions))
	copy(kept, suggestions)
	c.entries[word] = cacheEntry{limit: limit, suggestions: kept}
}

// Stats reports the number of cached words and cache hits.
func (c *Cache) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]int{
		"cachedWords": len(c.entries),
		"cacheHits":   int(c.hits),
	}
}
