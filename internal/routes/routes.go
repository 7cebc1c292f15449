package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/bujo-app/bujo-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Collection routes
	r.Get("/api/collections", handlers.GetCollections)
	r.Post("/api/collections", handlers.CreateCollection)

	// Entry routes
	r.Get("/api/entries", handlers.GetEntries)
	r.Post("/api/entries", handlers.CreateEntry)
	r.Put("/api/entries/{id}", handlers.UpdateEntry)
	r.Delete("/api/entries/{id}", handlers.DeleteEntry)
}
