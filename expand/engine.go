// Package expand turns a parsed recurrence rule and a start date into the
// concrete sequence of occurrence dates. The Engine is the caller-facing
// entry point; it wraps the per-frequency generators with a result ceiling,
// an optional end date and an optional expansion cache.
package expand

import (
	"log/slog"
	"time"

	"github.com/cyp0633/librrule/rrule"
)

// Engine provides recurrence expansion with caching and logging.
type Engine struct {
	cal    Calendar
	cache  *Cache
	logger *slog.Logger
}

// New creates an engine with DefaultConfig.
func New() *Engine {
	return NewWithConfig(DefaultConfig)
}

// NewWithConfig creates an engine with custom configuration. Call Close on
// the engine when caching is enabled to stop the cache's sweep goroutine.
func NewWithConfig(config Config) *Engine {
	cal := config.Calendar
	if cal == nil {
		cal = System()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var cache *Cache
	if config.CacheEnabled {
		cache = NewCache(config.Cache)
	}
	return &Engine{cal: cal, cache: cache, logger: logger}
}

// Occurrences produces the ordered occurrence dates of r starting at
// start, stopping at whichever comes first of the options' end date, the
// result ceiling, or the rule's own termination. A ceiling <= 0 yields an
// empty result without constructing a generator.
func (e *Engine) Occurrences(r rrule.Rule, start time.Time, opts Options) ([]time.Time, error) {
	if opts.Limit <= 0 {
		return []time.Time{}, nil
	}

	var ruleText string
	if e.cache != nil {
		ruleText = r.String()
		if cached, ok := e.cache.Get(ruleText, start, opts); ok {
			e.logger.Debug("expansion cache hit", "rule", ruleText)
			return cached, nil
		}
	}

	gen, err := NewGenerator(r, start, e.cal)
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, 0, min(opts.Limit, DefaultLimit))
	for len(out) < opts.Limit {
		occ, ok := gen.Next()
		if !ok {
			break
		}
		if opts.Until != nil && occ.After(*opts.Until) {
			break
		}
		out = append(out, occ)
	}
	if len(out) == opts.Limit {
		e.logger.Debug("occurrence ceiling reached", "rule", r.String(), "limit", opts.Limit)
	}

	if e.cache != nil {
		e.cache.Set(ruleText, start, opts, out)
	}
	return out, nil
}

// Between returns the occurrences of r that fall within [rangeStart,
// rangeEnd], expanding from start with the given ceiling. It is a
// convenience over Occurrences for callers that window a rule, such as a
// calendar view.
func (e *Engine) Between(r rrule.Rule, start, rangeStart, rangeEnd time.Time, limit int) ([]time.Time, error) {
	opts := Options{Until: &rangeEnd, Limit: limit}
	all, err := e.Occurrences(r, start, opts)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, 0, len(all))
	for _, occ := range all {
		if occ.Before(rangeStart) {
			continue
		}
		out = append(out, occ)
	}
	return out, nil
}

// CacheStats reports cache occupancy; ok is false when caching is off.
func (e *Engine) CacheStats() (CacheStats, bool) {
	if e.cache == nil {
		return CacheStats{}, false
	}
	return e.cache.Stats(), true
}

// Close releases the engine's cache resources. An engine without a cache
// needs no Close.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// defaultEngine backs the package-level helpers. It carries no cache, so
// it starts no goroutines.
var defaultEngine = NewWithConfig(NoCacheConfig)

// Occurrences expands r on a shared cacheless engine; see
// Engine.Occurrences.
func Occurrences(r rrule.Rule, start time.Time, opts Options) ([]time.Time, error) {
	return defaultEngine.Occurrences(r, start, opts)
}

// Between windows r on a shared cacheless engine; see Engine.Between.
func Between(r rrule.Rule, start, rangeStart, rangeEnd time.Time, limit int) ([]time.Time, error) {
	return defaultEngine.Between(r, start, rangeStart, rangeEnd, limit)
}
