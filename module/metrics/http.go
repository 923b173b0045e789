package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	httpmetrics "github.com/slok/go-http-metrics/metrics"
)

// HTTPCollector records the requests served by the metrics endpoint.
type HTTPCollector struct {
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec
	inflight        *prometheus.GaugeVec
}

var _ httpmetrics.Recorder = (*HTTPCollector)(nil)

func NewHTTPCollector(registerer prometheus.Registerer) *HTTPCollector {
	r := NewRegisterer(registerer, subsystemHTTP)

	return &HTTPCollector{
		requestDuration: r.RegisterNewHistogramVec("request_duration_seconds",
			"the latency of the HTTP requests", prometheus.DefBuckets,
			LabelService, LabelHandler, LabelMethod, LabelCode),
		responseSize: r.RegisterNewHistogramVec("response_size_bytes",
			"the size of the HTTP responses", prometheus.ExponentialBuckets(100, 10, 8),
			LabelService, LabelHandler, LabelMethod, LabelCode),
		inflight: r.RegisterNewGaugeVec("requests_inflight",
			"the number of inflight requests being handled at the same time",
			LabelService, LabelHandler),
	}
}

func (c *HTTPCollector) ObserveHTTPRequestDuration(_ context.Context, p httpmetrics.HTTPReqProperties, duration time.Duration) {
	c.requestDuration.WithLabelValues(p.Service, p.ID, p.Method, p.Code).Observe(duration.Seconds())
}

func (c *HTTPCollector) ObserveHTTPResponseSize(_ context.Context, p httpmetrics.HTTPReqProperties, sizeBytes int64) {
	c.responseSize.WithLabelValues(p.Service, p.ID, p.Method, p.Code).Observe(float64(sizeBytes))
}

func (c *HTTPCollector) AddInflightRequests(_ context.Context, p httpmetrics.HTTPProperties, quantity int) {
	c.inflight.WithLabelValues(p.Service, p.ID).Add(float64(quantity))
}
