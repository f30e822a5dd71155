package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/Dias221467/Mongo_Exercises/internal/services"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
)

// ItemNotFoundMessage is sent with 200 OK when no bucket-list item has the title.
const ItemNotFoundMessage = "Item not found."

// BucketListHandler handles HTTP requests related to bucket-list items.
type BucketListHandler struct {
	Service *services.BucketListService
}

// NewBucketListHandler creates a new instance of BucketListHandler.
func NewBucketListHandler(service *services.BucketListService) *BucketListHandler {
	return &BucketListHandler{Service: service}
}

// AddItemHandler handles POST /api/bucket-list-items.
func (h *BucketListHandler) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	var item models.BucketListItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		logger.Log.WithError(err).Warn("Invalid request payload during bucket list creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.AddItem(r.Context(), &item)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to add bucket list item")
		http.Error(w, "Failed to add bucket list item", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GetItemHandler handles GET /api/bucket-list-items?title=...
// A missing item, or a request without a title, is answered with 200 and a
// plain-text sentinel, not 404.
func (h *BucketListHandler) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("title") {
		writeItemNotFound(w)
		return
	}
	title := query.Get("title")

	item, err := h.Service.GetItemByTitle(r.Context(), title)
	if errors.Is(err, repository.ErrNotFound) {
		writeItemNotFound(w)
		return
	}
	if err != nil {
		logger.Log.WithError(err).WithField("title", title).Error("Failed to fetch bucket list item")
		http.Error(w, "Failed to fetch bucket list item", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func writeItemNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(ItemNotFoundMessage))
}
