package middleware

import (
	"net/http"
	"strconv"

	"github.com/Dias221467/Mongo_Exercises/internal/metrics"
	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

// MetricsMiddleware records request counts and latency labelled by route template
// (/api/expenses/{id} rather than the concrete path). /metrics itself is skipped.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			snoop := httpsnoop.CaptureMetrics(next, w, r)

			m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(snoop.Code)).Inc()
			m.Latency.WithLabelValues(r.Method, route).Observe(snoop.Duration.Seconds())
		})
	}
}
