// Package metrics exposes Prometheus instrumentation for the glossary service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

const namespace = "glossary"

// Registry owns a private Prometheus registry and the service's collectors.
type Registry struct {
	reg *prometheus.Registry

	creations        *prometheus.CounterVec
	creationDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	inFlight         prometheus.Gauge
}

// NewRegistry creates a Registry with the service collectors plus Go runtime
// and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		creations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "term",
				Name:      "creations_total",
				Help:      "Glossary term creations by outcome status",
			},
			[]string{"status"},
		),
		creationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "term",
				Name:      "creation_duration_seconds",
				Help:      "Time spent running the term creation workflow",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served",
		}),
	}

	r.reg.MustRegister(
		r.creations,
		r.creationDuration,
		r.httpRequests,
		r.httpDuration,
		r.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveCreation records one finished creation.
func (r *Registry) ObserveCreation(status domain.CreationStatus, elapsed time.Duration) {
	r.creations.WithLabelValues(string(status)).Inc()
	r.creationDuration.WithLabelValues(string(status)).Observe(elapsed.Seconds())
}

// Instrument wraps h with request counting and latency tracking under route.
func (r *Registry) Instrument(route string, h http.Handler) http.Handler {
	labels := prometheus.Labels{"route": route}
	counter := r.httpRequests.MustCurryWith(labels)
	duration := r.httpDuration.MustCurryWith(labels)

	return promhttp.InstrumentHandlerInFlight(r.inFlight,
		promhttp.InstrumentHandlerDuration(duration,
			promhttp.InstrumentHandlerCounter(counter, h),
		),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry for tests and custom exporters.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
