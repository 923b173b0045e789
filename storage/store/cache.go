package store

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/module/metrics"
	"github.com/onflow/relay-storage-roots/storage"
)

func withLimit(limit uint) func(*Cache) {
	return func(c *Cache) {
		c.limit = limit
	}
}

type retrieveFunc func(r storage.Reader, number relay.BlockNumber) (relay.StorageRoot, error)

func withRetrieve(retrieve retrieveFunc) func(*Cache) {
	return func(c *Cache) {
		c.retrieve = retrieve
	}
}

func noRetrieve(storage.Reader, relay.BlockNumber) (relay.StorageRoot, error) {
	return relay.ZeroStorageRoot, fmt.Errorf("no retrieve function for cache get available")
}

// Cache holds committed storage roots by relay block number. It must only be
// filled with values that are already committed, never with values read
// through an uncommitted batch.
type Cache struct {
	metrics  module.CacheMetrics
	limit    uint
	retrieve retrieveFunc
	resource string
	cache    *lru.Cache[relay.BlockNumber, relay.StorageRoot]
}

func newCache(collector module.CacheMetrics, options ...func(*Cache)) *Cache {
	c := Cache{
		metrics:  collector,
		limit:    1000,
		retrieve: noRetrieve,
		resource: metrics.ResourceRelayStorageRoot,
	}
	for _, option := range options {
		option(&c)
	}
	if c.limit == 0 {
		c.limit = 1
	}
	c.cache, _ = lru.New[relay.BlockNumber, relay.StorageRoot](int(c.limit))
	c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	return &c
}

// Get will try to retrieve the resource from cache first, and then from the
// injected retrieve function. The reader must see committed state only.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the key is unknown
func (c *Cache) Get(r storage.Reader, number relay.BlockNumber) (relay.StorageRoot, error) {

	// check if we have it in the cache
	root, cached := c.cache.Get(number)
	if cached {
		c.metrics.CacheHit(c.resource)
		return root, nil
	}

	// get it from the database
	root, err := c.retrieve(r, number)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.metrics.CacheNotFound(c.resource)
		}
		return relay.ZeroStorageRoot, fmt.Errorf("could not retrieve resource: %w", err)
	}

	c.metrics.CacheMiss(c.resource)

	// cache the resource and eject least recently used one if we reached limit
	evicted := c.cache.Add(number, root)
	if !evicted {
		c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	}

	return root, nil
}

// Insert adds a committed root to the cache.
func (c *Cache) Insert(number relay.BlockNumber, root relay.StorageRoot) {
	evicted := c.cache.Add(number, root)
	if !evicted {
		c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	}
}

// Remove drops a root from the cache after it was removed from the database.
func (c *Cache) Remove(number relay.BlockNumber) {
	c.cache.Remove(number)
	c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
}
