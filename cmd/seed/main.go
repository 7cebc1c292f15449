// Command seed creates the default collections on an empty database.
// Safe to re-run: a database that already has collections is left alone.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/bujo-app/bujo-backend/internal/config"
	"github.com/bujo-app/bujo-backend/internal/database"
	"github.com/bujo-app/bujo-backend/internal/services"
)

var defaultCollections = []services.CreateCollectionParams{
	{Name: "日记", Icon: "📖", Color: "#8B7355", Description: ptr("每日记录")},
	{Name: "正念", Icon: "🧘", Color: "#6B8E7A", Description: ptr("冥想与正念笔记")},
	{Name: "工作", Icon: "💼", Color: "#5B6B8C", Description: ptr("工作相关事项")},
	{Name: "学习", Icon: "📚", Color: "#8C6B5B", Description: ptr("学习笔记")},
	{Name: "灵感", Icon: "✨", Color: "#9B7B8C", Description: ptr("灵感与创意")},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	ctx := context.Background()

	collections, err := services.ListCollections(ctx)
	if err != nil {
		log.Fatal("Failed to list collections:", err)
	}
	if len(collections) > 0 {
		log.Printf("Database already has %d collections, nothing to seed", len(collections))
		return
	}

	for _, p := range defaultCollections {
		c, err := services.CreateCollection(ctx, p)
		if err != nil {
			log.Fatalf("Failed to seed collection %q: %v", p.Name, err)
		}
		log.Printf("Created collection %s %s (order %d)", c.Icon, c.Name, c.Order)
	}

	log.Printf("✅ Seeded %d default collections", len(defaultCollections))
}

func ptr(s string) *string { return &s }
