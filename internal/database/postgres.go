package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lib/pq"
)

var PostgresDB *sql.DB

var schemaOnce sync.Once

// undefinedTable is the PostgreSQL error code for "relation does not exist".
const undefinedTable = "42P01"

// ConnectPostgres connects to PostgreSQL and ensures the schema exists.
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Set connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	if err = EnsureSchema(PostgresDB); err != nil {
		return err
	}

	return nil
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS collections (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT NOT NULL,
		color TEXT NOT NULL,
		description TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS bullet_entries (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		collection_id TEXT NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bullet_entries_collection_id ON bullet_entries(collection_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bullet_entries_date ON bullet_entries(date)`,
}

// EnsureSchema guarantees the journal tables and their indexes exist.
// Runs at most once per process; safe to call from multiple goroutines.
func EnsureSchema(db *sql.DB) error {
	var err error
	schemaOnce.Do(func() {
		err = ensureSchema(db)
	})
	return err
}

// ensureSchema probes the collections table and creates the schema when the
// probe reports a missing relation. Any other failure aborts startup.
func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`SELECT id FROM collections LIMIT 1`)
	if err == nil {
		log.Println("✅ Database schema present")
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != undefinedTable {
		return fmt.Errorf("schema probe: %w", err)
	}

	log.Println("Creating database tables...")
	for _, query := range schemaDDL {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	log.Println("✅ Database schema created")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
