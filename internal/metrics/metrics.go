package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors exported on /metrics.
type Metrics struct {
	Requests  *prometheus.CounterVec
	Latency   *prometheus.HistogramVec
	Documents *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Documents: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "exercise_documents",
				Help: "Documents per collection at the last statistics scan.",
			},
			[]string{"collection"},
		),
	}

	for _, c := range []prometheus.Collector{m.Requests, m.Latency, m.Documents} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
