package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bujo-app/bujo-backend/internal/database"
	"github.com/bujo-app/bujo-backend/internal/models"
)

const entrySelect = `
	SELECT e.id, e.content, e.type, e.status, e.date, e.collection_id, e.created_at, e.updated_at,
	       c.id, c.name, c.icon, c.color, c.description, c.sort_order, c.created_at, c.updated_at
	FROM bullet_entries e
	JOIN collections c ON c.id = e.collection_id`

// scanEntry reads one joined entry row into an Entry with its collection embedded.
func scanEntry(s interface{ Scan(...interface{}) error }) (models.Entry, error) {
	var e models.Entry
	var c models.Collection
	var description sql.NullString

	err := s.Scan(&e.ID, &e.Content, &e.Type, &e.Status, &e.Date, &e.CollectionID, &e.CreatedAt, &e.UpdatedAt,
		&c.ID, &c.Name, &c.Icon, &c.Color, &description, &c.Order, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return e, err
	}

	if description.Valid {
		c.Description = &description.String
	}
	e.Collection = &c
	return e, nil
}

// ListEntries returns entries ordered by createdAt descending, each joined
// with its owning collection. collectionID filters by exact match; date
// (YYYY-MM-DD) filters by the half-open local day window [D, D+1). Both
// filters are optional and independent.
func ListEntries(ctx context.Context, collectionID, date string) ([]models.Entry, error) {
	query := entrySelect
	var conds []string
	var args []interface{}

	if collectionID != "" {
		args = append(args, collectionID)
		conds = append(conds, fmt.Sprintf("e.collection_id = $%d", len(args)))
	}
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, ErrInvalidInput)
		}
		args = append(args, day)
		conds = append(conds, fmt.Sprintf("e.date >= $%d", len(args)))
		args = append(args, day.AddDate(0, 0, 1))
		conds = append(conds, fmt.Sprintf("e.date < $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.created_at DESC"

	rows, err := database.PostgresDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// GetEntry returns one entry joined with its collection.
func GetEntry(ctx context.Context, id string) (*models.Entry, error) {
	row := database.PostgresDB.QueryRowContext(ctx, entrySelect+" WHERE e.id = $1", id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &e, nil
}

// CreateEntryParams represents the fields accepted when creating an entry.
// Date is the textual journal date; empty means now.
type CreateEntryParams struct {
	Content      string
	Type         string
	Status       string
	Date         string
	CollectionID string
}

// CreateEntry persists a new entry and returns it joined with its collection.
func CreateEntry(ctx context.Context, p CreateEntryParams) (*models.Entry, error) {
	if p.Type == "" {
		p.Type = models.TypeNote
	}
	if p.Status == "" {
		p.Status = models.StatusPending
	}

	date := time.Now()
	if p.Date != "" {
		var err error
		if date, err = ParseEntryDate(p.Date); err != nil {
			return nil, err
		}
	}

	id := uuid.NewString()
	now := time.Now()
	if _, err := database.PostgresDB.ExecContext(ctx, `
		INSERT INTO bullet_entries (id, content, type, status, date, collection_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, p.Content, p.Type, p.Status, date, p.CollectionID, now, now); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	cacheInvalidate(ctx, CollectionsCacheKey)
	return GetEntry(ctx, id)
}

// UpdateEntry applies only the fields present in the patch, then returns the
// updated entry joined with its collection. Returns ErrNotFound when no entry
// has the given id.
func UpdateEntry(ctx context.Context, id string, patch models.EntryPatch) (*models.Entry, error) {
	var sets []string
	var args []interface{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Content != nil {
		set("content", *patch.Content)
	}
	if patch.Type != nil {
		set("type", *patch.Type)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.Date != nil {
		date, err := ParseEntryDate(*patch.Date)
		if err != nil {
			return nil, err
		}
		set("date", date)
	}
	if patch.CollectionID != nil {
		set("collection_id", *patch.CollectionID)
	}
	set("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE bullet_entries SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := database.PostgresDB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}

	cacheInvalidate(ctx, CollectionsCacheKey)
	return GetEntry(ctx, id)
}

// DeleteEntry removes an entry by id. Returns ErrNotFound when it does not exist.
func DeleteEntry(ctx context.Context, id string) error {
	result, err := database.PostgresDB.ExecContext(ctx,
		`DELETE FROM bullet_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	cacheInvalidate(ctx, CollectionsCacheKey)
	return nil
}

// ParseEntryDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date,
// the latter interpreted as local midnight.
func ParseEntryDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse entry date %q: %w", s, ErrInvalidInput)
	}
	return t, nil
}
