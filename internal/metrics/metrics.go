// Package metrics holds the Prometheus instruments for roster fetches.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for FetchesTotal.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport"
	OutcomeStatus    = "status"
	OutcomeDecode    = "decode"
	OutcomeCanceled  = "canceled"
)

// Metrics holds the fetch instruments and the registry they belong to.
type Metrics struct {
	Registry      *prometheus.Registry
	FetchesTotal  *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	DutiesLoaded  prometheus.Gauge
}

// New registers the instruments on a fresh registry. A private registry
// keeps repeated construction in tests from colliding.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		FetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Roster fetches by outcome",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time taken to fetch and decode the roster",
			Buckets:   prometheus.DefBuckets,
		}),
		DutiesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "duties_loaded",
			Help:      "Duty records in the most recent successful fetch",
		}),
	}
	reg.MustRegister(m.FetchesTotal, m.FetchDuration, m.DutiesLoaded)
	return m
}

// ObserveFetch records one completed fetch. A nil receiver is a no-op.
func (m *Metrics) ObserveFetch(outcome string, elapsed time.Duration, duties int) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(outcome).Inc()
	m.FetchDuration.Observe(elapsed.Seconds())
	if outcome == OutcomeOK {
		m.DutiesLoaded.Set(float64(duties))
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Server exposes /metrics on addr until Shutdown.
type Server struct {
	server *http.Server
}

// NewServer creates a metrics server for m on addr.
func NewServer(m *Metrics, addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return &Server{server: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Start listens in a background goroutine. Listen errors are sent to errc.
func (s *Server) Start(errc chan<- error) {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
