package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the backing store answers.
type HealthHandler struct {
	check func(ctx context.Context) error
}

func NewHealthHandler(check func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{check: check}
}

// HealthCheckHandler handles GET /health.
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.check(ctx); err != nil {
		logger.Log.WithError(err).Warn("Health check failed")
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
