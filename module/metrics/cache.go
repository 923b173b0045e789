package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/relay-storage-roots/module"
)

var _ module.CacheMetrics = (*CacheCollector)(nil)

// CacheCollector reports the read caches in front of the database.
type CacheCollector struct {
	entries   *prometheus.GaugeVec
	hits      *prometheus.CounterVec
	notFounds *prometheus.CounterVec
	misses    *prometheus.CounterVec
}

func NewCacheCollector(registerer prometheus.Registerer) *CacheCollector {
	r := NewRegisterer(registerer, subsystemCache)

	return &CacheCollector{
		entries: r.RegisterNewGaugeVec("entries_total",
			"the number of entries in the cache", LabelResource),
		hits: r.RegisterNewCounterVec("hits_total",
			"the number of hits for the cache", LabelResource),
		notFounds: r.RegisterNewCounterVec("notfounds_total",
			"the number of times the queried item was not found in either cache or database", LabelResource),
		misses: r.RegisterNewCounterVec("misses_total",
			"the number of times the queried item was found in the database but not in the cache", LabelResource),
	}
}

// CacheEntries records the size of the resource cache.
func (cc *CacheCollector) CacheEntries(resource string, entries uint) {
	cc.entries.With(prometheus.Labels{LabelResource: resource}).Set(float64(entries))
}

// CacheHit records the number of hits in the resource cache.
func (cc *CacheCollector) CacheHit(resource string) {
	cc.hits.With(prometheus.Labels{LabelResource: resource}).Inc()
}

// CacheNotFound records the number of times the queried item was not found in either cache
// or database.
func (cc *CacheCollector) CacheNotFound(resource string) {
	cc.notFounds.With(prometheus.Labels{LabelResource: resource}).Inc()
}

// CacheMiss records the number of misses in the resource cache.
func (cc *CacheCollector) CacheMiss(resource string) {
	cc.misses.With(prometheus.Labels{LabelResource: resource}).Inc()
}
