package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
)

var _ module.RelayStorageRootsMetrics = (*RelayStorageRootsCollector)(nil)

type RelayStorageRootsCollector struct {
	updates       *prometheus.CounterVec
	evictions     prometheus.Counter
	size          prometheus.Gauge
	highestNumber prometheus.Gauge

	// highest relay block number recorded so far, the gauge never moves backwards
	highest *atomic.Uint32
}

func NewRelayStorageRootsCollector(registerer prometheus.Registerer) *RelayStorageRootsCollector {
	factory := promauto.With(registerer)

	updates := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: subsystemLedger,
		Name:      "updates_total",
		Help:      "number of relay storage root updates, by outcome",
	}, []string{LabelOutcome})

	evictions := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: subsystemLedger,
		Name:      "evictions_total",
		Help:      "number of relay storage roots dropped to stay within capacity",
	})

	size := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: subsystemLedger,
		Name:      "entries",
		Help:      "number of relay storage roots currently kept",
	})

	highestNumber := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: subsystemLedger,
		Name:      "highest_relay_block_number",
		Help:      "highest relay block number whose storage root was recorded",
	})

	return &RelayStorageRootsCollector{
		updates:       updates,
		evictions:     evictions,
		size:          size,
		highestNumber: highestNumber,
		highest:       atomic.NewUint32(0),
	}
}

func (c *RelayStorageRootsCollector) StorageRootRecorded(number relay.BlockNumber) {
	c.updates.WithLabelValues(OutcomeRecorded).Inc()

	for {
		current := c.highest.Load()
		if uint32(number) <= current {
			return
		}
		if c.highest.CompareAndSwap(current, uint32(number)) {
			c.highestNumber.Set(float64(number))
			return
		}
	}
}

func (c *RelayStorageRootsCollector) StorageRootDuplicate(relay.BlockNumber) {
	c.updates.WithLabelValues(OutcomeDuplicate).Inc()
}

func (c *RelayStorageRootsCollector) StorageRootEvicted(relay.BlockNumber) {
	c.evictions.Inc()
}

func (c *RelayStorageRootsCollector) LedgerSize(size uint) {
	c.size.Set(float64(size))
}
