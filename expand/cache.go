package expand

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"sync"
	"time"
)

// cacheEntry is one cached expansion result.
type cacheEntry struct {
	occurrences []time.Time
	expiresAt   time.Time
	accessedAt  time.Time
}

// Cache stores expansion results keyed by rule, start date and options.
// Entries expire after a TTL and the least recently accessed ones are
// evicted when the cache grows past its limit.
type Cache struct {
	entries         map[string]*cacheEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// CacheConfig holds configuration for the expansion cache.
type CacheConfig struct {
	TTL             time.Duration // how long entries stay valid
	MaxEntries      int           // maximum number of entries before eviction
	CleanupInterval time.Duration // how often expired entries are swept
}

// DefaultCacheConfig provides sensible defaults for expansion caching.
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      1000,
	CleanupInterval: 5 * time.Minute,
}

// NewCache creates an expansion cache and starts its sweep goroutine; call
// Close to stop it.
func NewCache(config CacheConfig) *Cache {
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = DefaultCacheConfig.CleanupInterval
	}
	c := &Cache{
		entries:         make(map[string]*cacheEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// cacheKey hashes everything that determines an expansion result.
func cacheKey(ruleText string, start time.Time, opts Options) string {
	hasher := sha256.New()
	hasher.Write([]byte(ruleText))
	hasher.Write([]byte(start.Format(time.RFC3339Nano)))
	if opts.Until != nil {
		hasher.Write([]byte(opts.Until.Format(time.RFC3339Nano)))
	}
	fmt.Fprintf(hasher, "%d", opts.Limit)
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// Get retrieves a cached result if it exists and has not expired.
func (c *Cache) Get(ruleText string, start time.Time, opts Options) ([]time.Time, bool) {
	key := cacheKey(ruleText, start, opts)

	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, false
	}

	now := time.Now()
	if now.After(entry.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return nil, false
	}

	c.mutex.Lock()
	entry.accessedAt = now
	c.mutex.Unlock()

	return entry.occurrences, true
}

// Set stores an expansion result.
func (c *Cache) Set(ruleText string, start time.Time, opts Options, occurrences []time.Time) {
	key := cacheKey(ruleText, start, opts)
	now := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = &cacheEntry{
		occurrences: occurrences,
		expiresAt:   now.Add(c.ttl),
		accessedAt:  now,
	}
	if len(c.entries) > c.maxEntries {
		c.evict()
	}
}

// evict removes expired entries, then the least recently accessed ones
// until the cache fits. Callers must hold the write lock.
func (c *Cache) evict() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) <= c.maxEntries {
		return
	}

	type keyAccess struct {
		key        string
		accessedAt time.Time
	}
	byAge := make([]keyAccess, 0, len(c.entries))
	for key, entry := range c.entries {
		byAge = append(byAge, keyAccess{key: key, accessedAt: entry.accessedAt})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].accessedAt.Before(byAge[j].accessedAt)
	})
	excess := len(c.entries) - c.maxEntries
	for i := 0; i < excess && i < len(byAge); i++ {
		delete(c.entries, byAge[i].key)
	}
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the sweep goroutine and clears the cache.
func (c *Cache) Close() {
	close(c.stopCleanup)
	c.mutex.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mutex.Unlock()
}

// CacheStats provides information about cache occupancy.
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}

// Stats returns current cache statistics.
func (c *Cache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	total := len(c.entries)
	expired := 0
	now := time.Now()
	for _, entry := range c.entries {
		if now.After(entry.expiresAt) {
			expired++
		}
	}
	return CacheStats{
		TotalEntries:   total,
		ExpiredEntries: expired,
		ActiveEntries:  total - expired,
	}
}
