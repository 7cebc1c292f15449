package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bujo-app/bujo-backend/internal/database"
	"github.com/bujo-app/bujo-backend/internal/models"
)

// Defaults assigned when the client omits display metadata.
const (
	DefaultIcon  = "📝"
	DefaultColor = "#6B7280"
)

const listCollectionsQuery = `
	SELECT c.id, c.name, c.icon, c.color, c.description, c.sort_order, c.created_at, c.updated_at,
	       COUNT(e.id) AS entry_count
	FROM collections c
	LEFT JOIN bullet_entries e ON e.collection_id = c.id
	GROUP BY c.id, c.name, c.icon, c.color, c.description, c.sort_order, c.created_at, c.updated_at
	ORDER BY c.sort_order ASC`

// ListCollections returns all collections ordered by sort_order ascending,
// each annotated with its live entry count.
func ListCollections(ctx context.Context) ([]models.Collection, error) {
	cached := make([]models.Collection, 0)
	if cacheGet(ctx, CollectionsCacheKey, &cached) {
		return cached, nil
	}

	rows, err := database.PostgresDB.QueryContext(ctx, listCollectionsQuery)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	collections := make([]models.Collection, 0)
	for rows.Next() {
		var c models.Collection
		var description sql.NullString
		var count int
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &description,
			&c.Order, &c.CreatedAt, &c.UpdatedAt, &count); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		if description.Valid {
			c.Description = &description.String
		}
		c.Count = &models.EntryCount{Entries: count}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	cacheSet(ctx, CollectionsCacheKey, collections)
	return collections, nil
}

// CreateCollectionParams represents the fields accepted when creating a collection.
type CreateCollectionParams struct {
	Name        string
	Icon        string
	Color       string
	Description *string
}

// CreateCollection persists a new collection at the end of the display order.
func CreateCollection(ctx context.Context, p CreateCollectionParams) (*models.Collection, error) {
	if p.Icon == "" {
		p.Icon = DefaultIcon
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}

	// Max+1 can race with a concurrent create; sort_order is a display hint,
	// not a uniqueness invariant.
	var order int
	if err := database.PostgresDB.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order), 0) + 1 FROM collections`).Scan(&order); err != nil {
		return nil, fmt.Errorf("next sort_order: %w", err)
	}

	now := time.Now()
	c := &models.Collection{
		ID:          uuid.NewString(),
		Name:        p.Name,
		Icon:        p.Icon,
		Color:       p.Color,
		Description: p.Description,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := database.PostgresDB.ExecContext(ctx, `
		INSERT INTO collections (id, name, icon, color, description, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Icon, c.Color, nullString(c.Description), c.Order, c.CreatedAt, c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	cacheInvalidate(ctx, CollectionsCacheKey)
	return c, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
