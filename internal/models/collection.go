package models

import "time"

// EntryCount carries the live number of entries in a collection.
// Recomputed on every read, never stored.
type EntryCount struct {
	Entries int `json:"entries"`
}

// Collection is a named bucket of journal entries with display metadata
// and a stable display order.
type Collection struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Color       string      `json:"color"`
	Description *string     `json:"description"`
	Order       int         `json:"order"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Count       *EntryCount `json:"_count,omitempty"`
}
