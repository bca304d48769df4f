package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultInFlight = "in_flight"
	ResultFailed   = "failed"
	ResultCanceled = "canceled"
)

// Metrics groups the site's collectors. A nil *Metrics is a valid no-op.
type Metrics struct {
	gatherer prometheus.Gatherer

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	ContactSubmissions *prometheus.CounterVec
	GallerySelections  *prometheus.CounterVec
	LiveConnections    prometheus.Gauge
	ActiveSessions     prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "betagym_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "betagym_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ContactSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "betagym_contact_submissions_total",
				Help: "Contact form submissions by result",
			},
			[]string{"result"},
		),
		GallerySelections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "betagym_gallery_selections_total",
				Help: "Gallery filter selections by category",
			},
			[]string{"category"},
		),
		LiveConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "betagym_live_connections",
			Help: "Open live websocket connections",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "betagym_active_sessions",
			Help: "Visitor sessions currently held in memory",
		}),
	}
	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.ContactSubmissions,
		m.GallerySelections,
		m.LiveConnections,
		m.ActiveSessions,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.ContactSubmissions.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSelection(category string) {
	if m == nil {
		return
	}
	m.GallerySelections.WithLabelValues(category).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) LiveConnected(delta float64) {
	if m == nil {
		return
	}
	m.LiveConnections.Add(delta)
}

func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}
