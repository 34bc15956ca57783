// Package foldcache provides an LRU cache of case-folded index keys.
//
// Folding a key with golang.org/x/text allocates and walks the whole string;
// owners typically index and query the same small set of key spellings over
// and over, so the folded form is cached per original spelling.
//
// Concurrency: 16-shard design with per-shard mutexes reduces contention
// when many goroutines fold keys concurrently.
package foldcache

import (
	"container/list"
	"hash/maphash"
	"sync"
)

// defaultCapacity is the default maximum number of entries in the cache.
const defaultCapacity = 8192

// numShards is the number of independent cache shards.
// Must be a power of two for fast modulo via bitmask.
const numShards = 16

// maxKeyLen is the longest key the cache stores; longer keys are folded every time.
const maxKeyLen = 256

type cacheEntry struct {
	key    string // original spelling
	folded string
}

// lruCache is an LRU cache mapping an original key to its folded form.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = most recently used
}

// newCache creates an LRU cache with the given capacity.
// A capacity of 0 disables caching.
func newCache(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *lruCache) lookup(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity == 0 {
		return "", false
	}
	elem, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).folded, true
}

// store records the folded form of key, evicting the least-recently-used
// entry if the cache is at capacity.
func (c *lruCache) store(key, folded string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity == 0 {
		return
	}

	// Another goroutine may have stored key between our miss and now
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).folded = folded
		return
	}

	if c.order.Len() >= c.capacity {
		if back := c.order.Back(); back != nil {
			evicted := c.order.Remove(back).(*cacheEntry)
			delete(c.items, evicted.key)
		}
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, folded: folded})
}

// setCapacity changes the cache capacity, evicting LRU entries if it shrinks.
// A capacity of 0 disables caching and clears all entries.
func (c *lruCache) setCapacity(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = n
	for c.order.Len() > n {
		evicted := c.order.Remove(c.order.Back()).(*cacheEntry)
		delete(c.items, evicted.key)
	}
}

func (c *lruCache) reset() {
	c.mu.Lock()
	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
	c.mu.Unlock()
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Cache distributes entries across lruCache shards.
// The zero value is not usable; create one with New.
type Cache struct {
	seed   maphash.Seed
	shards [numShards]*lruCache
}

// New creates a sharded cache holding up to capacity entries in total.
func New(capacity int) *Cache {
	c := &Cache{seed: maphash.MakeSeed()}
	perShard := perShardCapacity(capacity)
	for i := range c.shards {
		c.shards[i] = newCache(perShard)
	}
	return c
}

func perShardCapacity(capacity int) int {
	perShard := capacity / numShards
	if perShard < 1 && capacity > 0 {
		perShard = 1
	}
	return perShard
}

func (c *Cache) shardFor(key string) *lruCache {
	return c.shards[maphash.String(c.seed, key)&(numShards-1)]
}

// Fold returns fold(key), serving it from the cache when possible.
// fold must be a pure function of key.
func (c *Cache) Fold(key string, fold func(string) string) string {
	if len(key) > maxKeyLen {
		return fold(key)
	}

	shard := c.shardFor(key)
	if folded, ok := shard.lookup(key); ok {
		return folded
	}
	folded := fold(key)
	shard.store(key, folded)
	return folded
}

// SetCapacity changes the total cache capacity. Pass 0 to disable caching.
func (c *Cache) SetCapacity(n int) {
	perShard := perShardCapacity(n)
	for _, s := range c.shards {
		s.setCapacity(perShard)
	}
}

// Reset clears all cached entries without changing capacity.
func (c *Cache) Reset() {
	for _, s := range c.shards {
		s.reset()
	}
}

// Len returns the current number of cached entries.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.len()
	}
	return total
}

// Default is the process-wide cache used by index.FoldKey.
var Default = New(defaultCapacity)
