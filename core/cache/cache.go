// Package cache provides LRU caching of conversion results keyed by source
// digest.
package cache

import (
	"container/list"
	"sync"

	"github.com/FocuswithJustin/gabc2volpiano/core/volpiano"
)

// Cache is a generic LRU cache interface.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
	Remove(key K)
	Clear()
	Len() int
	Stats() Stats
}

// Stats contains cache statistics.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	MaxSize   int
}

// Config contains cache configuration options.
type Config struct {
	// MaxSize is the maximum number of entries (0 = unlimited).
	MaxSize int

	// OnEvict is called when an entry is evicted or removed.
	OnEvict func(key, value interface{})
}

// DefaultConfig returns a default cache configuration.
func DefaultConfig() Config {
	return Config{MaxSize: 256}
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// lruCache is a thread-safe LRU cache implementation.
type lruCache[K comparable, V any] struct {
	mu        sync.Mutex
	config    Config
	entries   map[K]*list.Element
	evictList *list.List
	stats     Stats
}

// NewLRUCache creates a new LRU cache with the given configuration.
func NewLRUCache[K comparable, V any](config Config) Cache[K, V] {
	if config.MaxSize < 0 {
		config.MaxSize = 0
	}
	return &lruCache[K, V]{
		config:    config,
		entries:   make(map[K]*list.Element),
		evictList: list.New(),
	}
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.evictList.MoveToFront(ent)
	c.stats.Hits++
	return ent.Value.(*entry[K, V]).value, true
}

func (c *lruCache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.entries[key]; ok {
		c.evictList.MoveToFront(ent)
		ent.Value.(*entry[K, V]).value = value
		return
	}

	c.entries[key] = c.evictList.PushFront(&entry[K, V]{key: key, value: value})
	if c.config.MaxSize > 0 && c.evictList.Len() > c.config.MaxSize {
		if oldest := c.evictList.Back(); oldest != nil {
			c.removeElement(oldest)
			c.stats.Evictions++
		}
	}
}

func (c *lruCache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.entries[key]; ok {
		c.removeElement(ent)
	}
}

func (c *lruCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*list.Element)
	c.evictList.Init()
}

func (c *lruCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

func (c *lruCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Size = c.evictList.Len()
	s.MaxSize = c.config.MaxSize
	return s
}

// removeElement must be called with mu held.
func (c *lruCache[K, V]) removeElement(ent *list.Element) {
	c.evictList.Remove(ent)
	e := ent.Value.(*entry[K, V])
	delete(c.entries, e.key)

	if c.config.OnEvict != nil {
		c.config.OnEvict(e.key, e.value)
	}
}

// Result is the outcome of converting one source: either a chant or the
// error that stopped it.
type Result struct {
	Chant *volpiano.Chant
	Err   error
}

// ChantCache caches conversion results by the BLAKE3 digest of the raw
// source bytes, so identical files are converted once.
type ChantCache struct {
	cache Cache[string, Result]
}

// NewChantCache creates a chant cache.
func NewChantCache(config Config) *ChantCache {
	return &ChantCache{cache: NewLRUCache[string, Result](config)}
}

// NewDefaultChantCache creates a chant cache with the default configuration.
func NewDefaultChantCache() *ChantCache {
	return NewChantCache(DefaultConfig())
}

// Get returns the cached result for a digest.
func (c *ChantCache) Get(digest string) (Result, bool) {
	return c.cache.Get(digest)
}

// Put stores the result for a digest.
func (c *ChantCache) Put(digest string, r Result) {
	c.cache.Put(digest, r)
}

// Len returns the number of cached results.
func (c *ChantCache) Len() int {
	return c.cache.Len()
}

// Stats returns cache statistics.
func (c *ChantCache) Stats() Stats {
	return c.cache.Stats()
}
