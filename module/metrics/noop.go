package metrics

import (
	"time"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
)

type NoopCollector struct{}

var _ module.CacheMetrics = (*NoopCollector)(nil)
var _ module.RelayStorageRootsMetrics = (*NoopCollector)(nil)
var _ module.ExecutiveMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) CacheEntries(resource string, entries uint)                          {}
func (nc *NoopCollector) CacheHit(resource string)                                            {}
func (nc *NoopCollector) CacheNotFound(resource string)                                       {}
func (nc *NoopCollector) CacheMiss(resource string)                                           {}
func (nc *NoopCollector) StorageRootRecorded(number relay.BlockNumber)                        {}
func (nc *NoopCollector) StorageRootDuplicate(number relay.BlockNumber)                       {}
func (nc *NoopCollector) StorageRootEvicted(number relay.BlockNumber)                         {}
func (nc *NoopCollector) LedgerSize(size uint)                                                {}
func (nc *NoopCollector) BlockExecuted(number uint64, duration time.Duration, extrinsics int) {}
func (nc *NoopCollector) BlockRejected(number uint64)                                         {}
