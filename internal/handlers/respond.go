package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response")
	}
}
