package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/services"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
)

type ConfessionHandler struct {
	Service *services.ConfessionService
}

func NewConfessionHandler(service *services.ConfessionService) *ConfessionHandler {
	return &ConfessionHandler{Service: service}
}

// POST /api/confessions
func (h *ConfessionHandler) CreateConfessionHandler(w http.ResponseWriter, r *http.Request) {
	var confession models.Confession
	if err := json.NewDecoder(r.Body).Decode(&confession); err != nil {
		logger.Log.WithError(err).Warn("Invalid request payload during confession creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateConfession(r.Context(), &confession)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create confession")
		http.Error(w, "Failed to create confession", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}
