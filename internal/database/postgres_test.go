package database

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

const probeQuery = `SELECT id FROM collections LIMIT 1`

func TestEnsureSchemaProbeSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, ensureSchema(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaCreatesMissingTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnError(&pq.Error{Code: "42P01"})
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS collections`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS bullet_entries`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_bullet_entries_collection_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_bullet_entries_date`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, ensureSchema(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaOtherProbeErrorFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnError(errors.New("connection refused"))

	err = ensureSchema(db)
	require.Error(t, err)
	require.Contains(t, err.Error(), "schema probe")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaDDLFailureFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(probeQuery)).
		WillReturnError(&pq.Error{Code: "42P01"})
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS collections`).
		WillReturnError(errors.New("permission denied"))

	err = ensureSchema(db)
	require.Error(t, err)
	require.Contains(t, err.Error(), "create schema")
}
