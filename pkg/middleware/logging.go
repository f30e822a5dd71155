package middleware

import (
	"net/http"

	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/felixge/httpsnoop"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware logs one structured line per request after it completes.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		entry := logger.Log.WithFields(logrus.Fields{
			"request_id":  GetRequestID(r.Context()),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      m.Code,
			"duration_ms": m.Duration.Milliseconds(),
			"bytes":       m.Written,
		})
		if m.Code >= http.StatusInternalServerError {
			entry.Error("Request failed")
			return
		}
		entry.Info("Request handled")
	})
}
