package models

import "time"

// Entry types.
const (
	TypeTask  = "task"
	TypeEvent = "event"
	TypeNote  = "note"
)

// Entry statuses. Semantically meaningful for tasks only, but stored
// uniformly for all types.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusMigrated  = "migrated"
	StatusCancelled = "cancelled"
)

// Entry is a single journal item belonging to one collection and one
// calendar date. Date is the journal date, distinct from CreatedAt.
type Entry struct {
	ID           string      `json:"id"`
	Content      string      `json:"content"`
	Type         string      `json:"type"`
	Status       string      `json:"status"`
	Date         time.Time   `json:"date"`
	CollectionID string      `json:"collectionId"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	Collection   *Collection `json:"collection,omitempty"`
}

// EntryPatch is a partial update of an entry. Nil fields were not provided
// by the client and are left untouched.
type EntryPatch struct {
	Content      *string `json:"content"`
	Type         *string `json:"type"`
	Status       *string `json:"status"`
	Date         *string `json:"date"`
	CollectionID *string `json:"collectionId"`
}
