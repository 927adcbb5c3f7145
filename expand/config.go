package expand

import (
	"log/slog"
	"time"
)

// Config holds configuration options for the expansion engine.
type Config struct {
	// Cache configuration
	CacheEnabled bool
	Cache        CacheConfig

	// Calendar overrides the calendar service; nil means System().
	Calendar Calendar

	// Logger receives debug and warning lines; nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig provides sensible defaults for production use.
var DefaultConfig = Config{
	CacheEnabled: true,
	Cache:        DefaultCacheConfig,
}

// NoCacheConfig turns off result caching entirely; every call expands the
// rule from scratch and no cleanup goroutine is started.
var NoCacheConfig = Config{
	CacheEnabled: false,
}

// LowMemoryConfig keeps the cache small for memory-constrained hosts.
var LowMemoryConfig = Config{
	CacheEnabled: true,
	Cache: CacheConfig{
		TTL:             5 * time.Minute,
		MaxEntries:      100,
		CleanupInterval: 2 * time.Minute,
	},
}
