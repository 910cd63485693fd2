package tradingecon

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/econlens/country-compare/internal/domain"
	"github.com/econlens/country-compare/internal/observability"
)

// CachedSource wraps an IndicatorSource with an in-memory TTL'd LRU cache
// keyed by country. Indicator values move slowly, so a generous TTL keeps
// repeated comparisons off the upstream quota.
type CachedSource struct {
	inner   domain.IndicatorSource
	cache   *lruCache
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewCachedSource creates a cache decorator around an indicator source.
// Pass nil for clock to use real time.
func NewCachedSource(inner domain.IndicatorSource, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedSource {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedSource{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}
}

func (c *CachedSource) FetchIndicators(ctx context.Context, country string) ([]domain.RawIndicatorRecord, error) {
	key := strings.ToLower(strings.TrimSpace(country))

	if records, expiresAt, ok := c.cache.get(key); ok {
		if c.clock.Now().Before(expiresAt) {
			c.metrics.CacheLookups.WithLabelValues("hit").Inc()
			return records, nil
		}
		c.cache.delete(key)
		c.metrics.CacheLookups.WithLabelValues("expired").Inc()
	} else {
		c.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	records, err := c.inner.FetchIndicators(ctx, country)
	if err != nil {
		return records, err
	}
	// Only cache non-empty results so transient empty responses can be retried.
	if len(records) > 0 {
		c.cache.put(key, records, c.clock.Now().Add(c.ttl))
	}
	return records, nil
}

// lruCache is a simple thread-safe LRU cache for record lists.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key       string
	records   []domain.RawIndicatorRecord
	expiresAt time.Time
	prev      *entry
	next      *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]domain.RawIndicatorRecord, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, time.Time{}, false
	}
	c.moveToFront(e)
	return e.records, e.expiresAt, true
}

func (c *lruCache) put(key string, records []domain.RawIndicatorRecord, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.records = records
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, records: records, expiresAt: expiresAt}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.remove(e)
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
