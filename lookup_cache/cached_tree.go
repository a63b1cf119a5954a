// Package lookupcache puts a ristretto point-lookup cache in front of a
// B+ tree. Only Search is served from the cache; every mutation goes to the
// tree and evicts the key, and ordered reads always go to the tree.
package lookupcache

import (
	bplus "BPlusIndex/bplustree"
	"cmp"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config sizes the cache. MaxCost counts entries: each cached value costs 1.
type Config struct {
	NumCounters int64 // keys tracked for admission, ~10x MaxCost
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func DefaultConfig() Config {
	return Config{
		NumCounters: 100_000,
		MaxCost:     10_000,
		BufferItems: 64,
		Metrics:     true,
	}
}

func (c Config) Validate() error {
	if c.MaxCost <= 0 {
		return errors.Errorf("lookupcache: max cost must be positive, got %d", c.MaxCost)
	}
	if c.NumCounters <= 0 {
		return errors.Errorf("lookupcache: num counters must be positive, got %d", c.NumCounters)
	}
	if c.BufferItems <= 0 {
		return errors.Errorf("lookupcache: buffer items must be positive, got %d", c.BufferItems)
	}
	return nil
}

// Key is a type ristretto can hash whose natural order is also its identity:
// two keys the tree treats as equal are the same cache key.
type Key interface {
	ristretto.Key
	cmp.Ordered
}

// CachedTree wraps a tree with a read-through cache. Like the tree itself it
// is not safe for concurrent mutation.
type CachedTree[K Key, V any] struct {
	tree  *bplus.BPlusTree[K, V]
	cache *ristretto.Cache[K, V]
	log   *zap.Logger
}

// New builds a natural-order tree from treeCfg and puts a cache in front of it.
// Trees with an injected comparator are not accepted: the comparator may treat
// distinct keys as equal, which the cache could not see.
func New[K Key, V any](treeCfg bplus.Config, cfg Config, log *zap.Logger) (*CachedTree[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	tree, err := bplus.NewFromConfig[K, V](treeCfg, bplus.WithLogger(log))
	if err != nil {
		return nil, err
	}

	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters:        cfg.NumCounters,
		MaxCost:            cfg.MaxCost,
		BufferItems:        cfg.BufferItems,
		Metrics:            cfg.Metrics,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "lookupcache: create ristretto cache")
	}

	return &CachedTree[K, V]{tree: tree, cache: cache, log: log}, nil
}

// Tree exposes the wrapped tree for ordered reads and validation.
func (c *CachedTree[K, V]) Tree() *bplus.BPlusTree[K, V] {
	return c.tree
}

func (c *CachedTree[K, V]) Search(key K) (V, bool) {
	if v, ok := c.cache.Get(key); ok {
		return v, true
	}
	v, ok := c.tree.Search(key)
	if ok {
		c.cache.Set(key, v, 1)
	}
	return v, ok
}

func (c *CachedTree[K, V]) Insert(key K, value V) bool {
	inserted := c.tree.Insert(key, value)
	c.evict(key)
	return inserted
}

func (c *CachedTree[K, V]) Delete(key K) bool {
	removed := c.tree.Delete(key)
	if removed {
		c.evict(key)
	}
	return removed
}

// evict drains pending sets first so a buffered stale value cannot land
// after the delete.
func (c *CachedTree[K, V]) evict(key K) {
	c.cache.Wait()
	c.cache.Del(key)
}

func (c *CachedTree[K, V]) Range(start, end K) []bplus.Entry[K, V] {
	return c.tree.Range(start, end)
}

// Wait blocks until buffered cache writes are applied.
func (c *CachedTree[K, V]) Wait() {
	c.cache.Wait()
}

// Clear drops every cached value; the tree is untouched.
func (c *CachedTree[K, V]) Clear() {
	c.cache.Clear()
}

// Hits and Misses report ristretto counters; both are 0 without Metrics.
func (c *CachedTree[K, V]) Hits() uint64 {
	return c.cache.Metrics.Hits()
}

func (c *CachedTree[K, V]) Misses() uint64 {
	return c.cache.Metrics.Misses()
}

func (c *CachedTree[K, V]) Close() {
	c.log.Debug("closing lookup cache",
		zap.Uint64("hits", c.Hits()),
		zap.Uint64("misses", c.Misses()))
	c.cache.Close()
}
