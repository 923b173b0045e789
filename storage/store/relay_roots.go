package store

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/ef-ds/deque"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/module/irrecoverable"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
)

// RelayStorageRoots implements the bounded ledger of relay storage roots.
//
// The ledger is two persisted items: the root per relay block number, and the
// list of present numbers in arrival order. The list is the source of truth for
// which entry is evicted next, so eviction does not depend on the numeric order
// of the relay block numbers. The committed arrival order is also held in
// memory, loaded when the ledger is opened and updated once a batch commits.
type RelayStorageRoots struct {
	db       storage.DB
	capacity uint32
	metrics  module.RelayStorageRootsMetrics
	cache    *Cache

	mu    sync.Mutex
	order deque.Deque // committed relay block numbers, oldest at the front
}

var _ storage.RelayStorageRoots = (*RelayStorageRoots)(nil)

// NewRelayStorageRoots opens a ledger keeping at most capacity entries and
// loads its committed arrival order.
// No errors are expected during normal operation.
func NewRelayStorageRoots(
	cacheMetrics module.CacheMetrics,
	ledgerMetrics module.RelayStorageRootsMetrics,
	db storage.DB,
	capacity uint32,
) (*RelayStorageRoots, error) {
	retrieve := func(r storage.Reader, number relay.BlockNumber) (relay.StorageRoot, error) {
		var root relay.StorageRoot
		err := operation.RetrieveRelayStorageRoot(r, number, &root)
		return root, err
	}

	s := &RelayStorageRoots{
		db:       db,
		capacity: capacity,
		metrics:  ledgerMetrics,
		cache: newCache(cacheMetrics,
			withLimit(uint(capacity)),
			withRetrieve(retrieve),
		),
	}

	var keys []relay.BlockNumber
	err := operation.RetrieveRelayStorageRootKeys(db.Reader(), &keys)
	if err != nil {
		return nil, fmt.Errorf("could not load relay storage root keys: %w", err)
	}
	size, err := ledgerSize(len(keys))
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		s.order.PushBack(key)
	}
	s.metrics.LedgerSize(uint(size))

	return s, nil
}

// ledgerSize converts the number of entries into the ledger's 32 bit count.
// An exception is returned if the count does not fit.
func ledgerSize(n int) (uint32, error) {
	if uint64(n) > math.MaxUint32 {
		return 0, irrecoverable.NewExceptionf("relay storage root count %d does not fit into 32 bits", n)
	}
	return uint32(n), nil
}

// Capacity returns the maximum number of entries kept.
func (s *RelayStorageRoots) Capacity() uint32 {
	return s.capacity
}

// BatchRecord records the root for the relay block number as part of the batch.
// If the number is already present nothing is written and recorded is false.
// Otherwise the number is appended to the arrival order, and if the ledger then
// holds more than its capacity, the entry at the front of the arrival order is
// removed and returned as evicted.
// The arrival order is read through the batch, so several records in one batch
// see each other. The in-memory order, cache and metrics are updated once the
// batch is committed.
// No errors are expected during normal operation.
func (s *RelayStorageRoots) BatchRecord(rw storage.ReaderBatchWriter, number relay.BlockNumber, root relay.StorageRoot) (bool, *relay.BlockNumber, error) {
	err := operation.InsertRelayStorageRoot(rw, number, root)
	if errors.Is(err, storage.ErrAlreadyExists) {
		rw.AddCallback(func(err error) {
			if err == nil {
				s.metrics.StorageRootDuplicate(number)
			}
		})
		return false, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("could not insert relay storage root for %d: %w", number, err)
	}

	var keys []relay.BlockNumber
	err = operation.RetrieveRelayStorageRootKeys(rw.Reader(), &keys)
	if err != nil {
		return false, nil, fmt.Errorf("could not retrieve relay storage root keys: %w", err)
	}
	keys = append(keys, number)

	size, err := ledgerSize(len(keys))
	if err != nil {
		return false, nil, err
	}

	var evicted *relay.BlockNumber
	if size > s.capacity {
		oldest := keys[0]
		err = operation.RemoveRelayStorageRoot(rw.Writer(), oldest)
		if err != nil {
			return false, nil, fmt.Errorf("could not remove relay storage root for %d: %w", oldest, err)
		}
		evicted = &oldest
		keys = keys[1:]
		size--
	}

	err = operation.UpsertRelayStorageRootKeys(rw.Writer(), keys)
	if err != nil {
		return false, nil, fmt.Errorf("could not update relay storage root keys: %w", err)
	}

	rw.AddCallback(func(err error) {
		if err != nil {
			return
		}
		s.mu.Lock()
		s.order.PushBack(number)
		if evicted != nil {
			s.order.PopFront()
		}
		s.mu.Unlock()

		if evicted != nil {
			s.cache.Remove(*evicted)
			s.metrics.StorageRootEvicted(*evicted)
		}
		s.cache.Insert(number, root)
		s.metrics.StorageRootRecorded(number)
		s.metrics.LedgerSize(uint(size))
	})

	return true, evicted, nil
}

// ByNumber returns the committed root for the relay block number.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the number was never recorded or has been evicted
func (s *RelayStorageRoots) ByNumber(number relay.BlockNumber) (relay.StorageRoot, error) {
	return s.cache.Get(s.db.Reader(), number)
}

// Keys returns the committed relay block numbers in arrival order.
// No errors are expected during normal operation.
func (s *RelayStorageRoots) Keys() ([]relay.BlockNumber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// rotate the queue once to copy it out in order
	n := s.order.Len()
	keys := make([]relay.BlockNumber, 0, n)
	for i := 0; i < n; i++ {
		front, _ := s.order.PopFront()
		s.order.PushBack(front)
		keys = append(keys, front.(relay.BlockNumber))
	}
	return keys, nil
}
