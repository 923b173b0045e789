package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/relay-storage-roots/module"
)

var _ module.ExecutiveMetrics = (*ExecutiveCollector)(nil)

type ExecutiveCollector struct {
	blocks          *prometheus.CounterVec
	executeDuration prometheus.Histogram
	extrinsics      prometheus.Counter
	lastExecuted    prometheus.Gauge
}

func NewExecutiveCollector(registerer prometheus.Registerer) *ExecutiveCollector {
	r := NewRegisterer(registerer, subsystemExecutive)

	return &ExecutiveCollector{
		blocks: r.RegisterNewCounterVec("blocks_total",
			"number of executed blocks, by outcome", LabelOutcome),
		executeDuration: r.RegisterNewHistogram("block_execution_duration_ms",
			"the duration of executing and committing a block", []float64{1, 5, 10, 50, 100, 500}),
		extrinsics: r.RegisterNewCounter("extrinsics_total",
			"number of extrinsics applied in committed blocks"),
		lastExecuted: r.RegisterNewGauge("last_executed_block",
			"number of the last committed block"),
	}
}

func (c *ExecutiveCollector) BlockExecuted(number uint64, duration time.Duration, extrinsics int) {
	c.blocks.WithLabelValues(OutcomeCommitted).Inc()
	c.executeDuration.Observe(float64(duration.Milliseconds()))
	c.extrinsics.Add(float64(extrinsics))
	c.lastExecuted.Set(float64(number))
}

func (c *ExecutiveCollector) BlockRejected(uint64) {
	c.blocks.WithLabelValues(OutcomeRejected).Inc()
}
