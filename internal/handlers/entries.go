package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bujo-app/bujo-backend/internal/models"
	"github.com/bujo-app/bujo-backend/internal/services"
)

// CreateEntryRequest represents the request to create an entry
type CreateEntryRequest struct {
	Content      string `json:"content"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Date         string `json:"date"`
	CollectionID string `json:"collectionId"`
}

// GetEntries handles GET /api/entries?collectionId=&date=
func GetEntries(w http.ResponseWriter, r *http.Request) {
	collectionID := r.URL.Query().Get("collectionId")
	date := r.URL.Query().Get("date")

	entries, err := services.ListEntries(r.Context(), collectionID, date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		log.Printf("list entries: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to fetch entries"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// CreateEntry handles POST /api/entries
func CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Content) == "" || req.CollectionID == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "content and collectionId are required"})
		return
	}

	entry, err := services.CreateEntry(r.Context(), services.CreateEntryParams{
		Content:      req.Content,
		Type:         req.Type,
		Status:       req.Status,
		Date:         req.Date,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid date"})
			return
		}
		log.Printf("create entry: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to create entry"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

// UpdateEntry handles PUT /api/entries/{id}. Only fields present in the body
// are applied; absent fields are left untouched.
func UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.EntryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
		return
	}

	entry, err := services.UpdateEntry(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "entry not found"})
		case errors.Is(err, services.ErrInvalidInput):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid date"})
		default:
			log.Printf("update entry: %v", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "failed to update entry"})
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

// DeleteEntry handles DELETE /api/entries/{id}
func DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := services.DeleteEntry(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "entry not found"})
			return
		}
		log.Printf("delete entry: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to delete entry"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
