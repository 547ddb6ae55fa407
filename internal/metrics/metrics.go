package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "persona_http_requests_total",
			Help: "Total number of HTTP requests by path and status code",
		}, []string{"path", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "persona_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by path",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}
}

func (m *Metrics) ObserveRequest(path string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(path, statusLabel(status)).Inc()
	m.RequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
