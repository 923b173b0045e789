package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpmetrics "github.com/slok/go-http-metrics/metrics"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
)

const serviceMetricsServer = "metrics_server"

// Server serves the /metrics endpoint of a prometheus registry.
type Server struct {
	server *http.Server
	log    zerolog.Logger
}

// NewServer creates a server listening on the given port. It exposes only the
// metrics collected by gatherer, and records its own requests with recorder.
func NewServer(log zerolog.Logger, port uint, gatherer prometheus.Gatherer, recorder httpmetrics.Recorder) *Server {
	addr := ":" + strconv.Itoa(int(port))

	instrument := middleware.New(middleware.Config{
		Recorder: recorder,
		Service:  serviceMetricsServer,
	})

	mux := http.NewServeMux()
	endpoint := "/metrics"
	mux.Handle(endpoint, std.Handler(endpoint, instrument, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return &Server{
		server: &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		log:    log.With().Str("component", "metrics_server").Str("address", addr).Str("endpoint", endpoint).Logger(),
	}
}

// Ready starts serving and returns a channel that is closed once the server
// goroutine is running.
func (m *Server) Ready() <-chan struct{} {
	ready := make(chan struct{})
	go func() {
		close(ready)
		err := m.server.ListenAndServe()
		if err != nil {
			// http.ErrServerClosed is returned after Shutdown and is not a failure
			if errors.Is(err, http.ErrServerClosed) {
				m.log.Debug().Err(err).Msg("metrics server shutdown")
			} else {
				m.log.Err(err).Msg("error running metrics server")
			}
		}
	}()
	m.log.Info().Msg("metrics server started")
	return ready
}

// Done shuts the server down and returns a channel that is closed once the
// shutdown completed.
func (m *Server) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = m.server.Shutdown(ctx)
		cancel()
		close(done)
	}()
	return done
}
