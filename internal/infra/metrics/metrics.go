// Package metrics exposes Prometheus collectors on a private registry.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodbridge"

// Metrics owns the registry and every collector the service reports.
type Metrics struct {
	registry *prometheus.Registry
	path     string

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	transitions  *prometheus.CounterVec
	pushes       *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New(cfg *config.Config) *Metrics {
	path := "/metrics"
	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Path != "" {
		path = cfg.Metrics.Path
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		path:     path,
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "donations",
			Name:      "transitions_total",
			Help:      "Donation lifecycle attempts by event and outcome.",
		}, []string{"event", "outcome"}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "pushes_total",
			Help:      "Push fan-outs by donation event type and outcome.",
		}, []string{"event_type", "outcome"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.transitions,
		m.pushes,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// NewRecorder exposes Metrics through the domain interface.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// RegisterDB exports the connection pool statistics of db.
func (m *Metrics) RegisterDB(db *sql.DB) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, namespace))
}

// Path is the route the metrics handler is mounted on.
func (m *Metrics) Path() string {
	return m.path
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordTransition implements service.MetricsRecorder.
func (m *Metrics) RecordTransition(event, outcome string) {
	m.transitions.WithLabelValues(event, outcome).Inc()
}

// RecordPush implements service.MetricsRecorder.
func (m *Metrics) RecordPush(eventType, outcome string) {
	m.pushes.WithLabelValues(eventType, outcome).Inc()
}

// Middleware records request count and latency per route template, so /donations/:id is one series.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == m.path {
				return next(c)
			}

			m.httpInFlight.Inc()
			defer m.httpInFlight.Dec()

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the response so the recorded status is final.
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := strings.ToUpper(c.Request().Method)
			status := strconv.Itoa(c.Response().Status)

			m.httpRequests.WithLabelValues(method, route, status).Inc()
			m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
