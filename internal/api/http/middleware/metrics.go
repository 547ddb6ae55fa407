package middleware

import (
	"net/http"
	"time"

	"github.com/acamargo/persona-server/internal/metrics"
)

// Metrics records a counter and duration observation per request.
type Metrics struct {
	metrics *metrics.Metrics
}

func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

func (m *Metrics) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		m.metrics.ObserveRequest(r.URL.Path, recorder.status, time.Since(start))
	})
}
