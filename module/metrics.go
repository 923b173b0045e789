package module

import (
	"time"

	"github.com/onflow/relay-storage-roots/model/relay"
)

type CacheMetrics interface {
	// CacheEntries report the total number of cached items
	CacheEntries(resource string, entries uint)
	// CacheHit report the number of times the queried item is found in the cache
	CacheHit(resource string)
	// CacheNotFound records the number of times the queried item was not found in either cache or database.
	CacheNotFound(resource string)
	// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
	CacheMiss(resource string)
}

// RelayStorageRootsMetrics tracks the bounded ledger of relay storage roots.
type RelayStorageRootsMetrics interface {
	// StorageRootRecorded is called when a new relay block number was added to the ledger.
	StorageRootRecorded(number relay.BlockNumber)

	// StorageRootDuplicate is called when the validation data named a relay block
	// number that is already present, and the ledger was left unchanged.
	StorageRootDuplicate(number relay.BlockNumber)

	// StorageRootEvicted is called when the oldest entry was dropped to respect the capacity.
	StorageRootEvicted(number relay.BlockNumber)

	// LedgerSize reports the number of entries in the ledger.
	LedgerSize(size uint)
}

// ExecutiveMetrics tracks block execution.
type ExecutiveMetrics interface {
	// BlockExecuted reports a committed block.
	BlockExecuted(number uint64, duration time.Duration, extrinsics int)

	// BlockRejected reports a block whose changes were discarded.
	BlockRejected(number uint64)
}
