// Package observability exposes the Prometheus surface: HTTP request
// counters plus the engine-level counters the console dashboards watch.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the application's Prometheus metrics.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	completionsApplied prometheus.Counter
	salesCommitted     prometheus.Counter
	salesRejected      prometheus.Counter
}

// NewMetrics initialises the registry and all counters.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cozmo_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cozmo_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	completions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cozmo_production_completions_applied_total",
		Help: "Production completions that moved stock into the finished warehouse.",
	})
	committed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cozmo_sales_committed_total",
		Help: "Sales invoices committed.",
	})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cozmo_sales_rejected_total",
		Help: "Sales submissions rejected by validation or stock checks.",
	})
	registry.MustRegister(requests, duration, completions, committed, rejected)
	return &Metrics{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:      requests,
		requestDuration:    duration,
		completionsApplied: completions,
		salesCommitted:     committed,
		salesRejected:      rejected,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records request metrics for every HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ProductionCompletionApplied counts one effectful completion.
func (m *Metrics) ProductionCompletionApplied() {
	if m != nil {
		m.completionsApplied.Inc()
	}
}

// SaleCommitted counts one committed invoice.
func (m *Metrics) SaleCommitted() {
	if m != nil {
		m.salesCommitted.Inc()
	}
}

// SaleRejected counts one rejected sale submission.
func (m *Metrics) SaleRejected() {
	if m != nil {
		m.salesRejected.Inc()
	}
}

// Registerer exposes the registry for custom metric registration.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
