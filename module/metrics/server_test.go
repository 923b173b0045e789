package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scrapes of the metrics endpoint are recorded by the HTTP collector of the
// same registry.
func TestServerRecordsScrapes(t *testing.T) {
	reg := prometheus.NewRegistry()
	ledger := NewRelayStorageRootsCollector(reg)
	collector := NewHTTPCollector(reg)
	server := NewServer(zerolog.Nop(), 0, reg, collector)

	ledger.LedgerSize(4)

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		server.server.Handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "relay_roots_ledger_entries 4")
	}

	require.Equal(t, 1, testutil.CollectAndCount(collector.requestDuration))
	require.Equal(t, 1, testutil.CollectAndCount(collector.responseSize))
	require.Equal(t, float64(0), testutil.ToFloat64(collector.inflight.WithLabelValues(serviceMetricsServer, "/metrics")))

	// the second scrape sees the request metrics of the first one
	resp := httptest.NewRecorder()
	server.server.Handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, resp.Body.String(), "relay_roots_http_request_duration_seconds")
}
