package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/bujo-app/bujo-backend/internal/config"
	"github.com/bujo-app/bujo-backend/internal/database"
	"github.com/bujo-app/bujo-backend/internal/handlers"
	"github.com/bujo-app/bujo-backend/internal/middleware"
	"github.com/bujo-app/bujo-backend/internal/routes"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()
	handlers.Init(cfg)

	// Connect to PostgreSQL; first boot creates the schema, no manual setup
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Redis is optional: without it the server runs cache-less and unthrottled
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v", err)
			log.Println("Running without cache and rate limiting")
		}
	}
	defer database.DisconnectRedis()

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimitMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	log.Println("📋 Registered routes:")
	log.Println("  GET    /health")
	log.Println("  GET    /api/collections")
	log.Println("  POST   /api/collections")
	log.Println("  GET    /api/entries")
	log.Println("  POST   /api/entries")
	log.Println("  PUT    /api/entries/{id}")
	log.Println("  DELETE /api/entries/{id}")

	log.Printf("🚀 Bujo backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
