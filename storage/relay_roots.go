package storage

import (
	"github.com/onflow/relay-storage-roots/model/relay"
)

// RelayStorageRoots is the bounded ledger of relay chain storage roots, keyed
// by relay block number. It keeps at most a fixed number of entries and evicts
// the entry that arrived first when a new one would exceed the capacity.
type RelayStorageRoots interface {
	// Capacity returns the maximum number of entries kept.
	Capacity() uint32

	// BatchRecord records the root for the relay block number as part of the batch.
	// An existing entry is never overwritten: if the number is already present the
	// batch is left unchanged and recorded is false.
	// When the ledger is full, the oldest entry (by arrival) is removed in the same
	// batch and returned as evicted.
	// No errors are expected during normal operation.
	BatchRecord(rw ReaderBatchWriter, number relay.BlockNumber, root relay.StorageRoot) (recorded bool, evicted *relay.BlockNumber, err error)

	// ByNumber returns the committed root for the relay block number.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the number was never recorded or has been evicted
	ByNumber(number relay.BlockNumber) (relay.StorageRoot, error)

	// Keys returns the committed relay block numbers in arrival order.
	// No errors are expected during normal operation.
	Keys() ([]relay.BlockNumber, error)
}

// InherentIncluded is the per-block flag recording that the mandatory relay
// storage root inherent has executed in the current block.
type InherentIncluded interface {
	// BatchSet marks the inherent as included.
	// No errors are expected during normal operation.
	BatchSet(rw ReaderBatchWriter) error

	// BatchClear clears the flag without reading it. No-op if absent.
	// No errors are expected during normal operation.
	BatchClear(rw ReaderBatchWriter) error

	// BatchTake reads and clears the flag, returning whether it was set.
	// No errors are expected during normal operation.
	BatchTake(rw ReaderBatchWriter) (bool, error)

	// IsSet returns whether the flag is set in the state visible to the reader.
	// No errors are expected during normal operation.
	IsSet(r Reader) (bool, error)
}
