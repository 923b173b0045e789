package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registerer creates and registers the metrics of one subsystem of the relay
// roots namespace. Registration panics on conflicts, collectors are created
// once per registry.
type Registerer struct {
	prometheus.Registerer
	subsystem string
}

func NewRegisterer(registerer prometheus.Registerer, subsystem string) *Registerer {
	return &Registerer{Registerer: registerer, subsystem: subsystem}
}

func (r *Registerer) RegisterNewCounterVec(name, help string, labelNames ...string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: r.subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
	r.MustRegister(counter)
	return counter
}

func (r *Registerer) RegisterNewCounter(name, help string) prometheus.Counter {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: r.subsystem,
		Name:      name,
		Help:      help,
	})
	r.MustRegister(counter)
	return counter
}

func (r *Registerer) RegisterNewGaugeVec(name, help string, labelNames ...string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: r.subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
	r.MustRegister(gauge)
	return gauge
}

func (r *Registerer) RegisterNewGauge(name, help string) prometheus.Gauge {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: r.subsystem,
		Name:      name,
		Help:      help,
	})
	r.MustRegister(gauge)
	return gauge
}

func (r *Registerer) RegisterNewHistogram(name, help string, buckets []float64) prometheus.Histogram {
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: r.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	})
	r.MustRegister(histogram)
	return histogram
}

func (r *Registerer) RegisterNewHistogramVec(name, help string, buckets []float64, labelNames ...string) *prometheus.HistogramVec {
	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespaceRelayRoots,
		Subsystem: r.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labelNames)
	r.MustRegister(histogram)
	return histogram
}
