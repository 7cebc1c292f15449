package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bujo-app/bujo-backend/internal/models"
)

var entryColumns = []string{
	"id", "content", "type", "status", "date", "collection_id", "created_at", "updated_at",
	"c_id", "c_name", "c_icon", "c_color", "c_description", "c_sort_order", "c_created_at", "c_updated_at",
}

func entryRow(rows *sqlmock.Rows, id, content, typ, status string, date time.Time, collectionID string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, content, typ, status, date, collectionID, now, now,
		collectionID, "日记", "📖", "#8B7355", "每日记录", 1, now, now)
}

func TestListEntriesNoFilters(t *testing.T) {
	mock := newMockDB(t)

	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "e1", "buy milk", "task", "pending", time.Now(), "c1")
	entryRow(rows, "e2", "standup", "event", "pending", time.Now(), "c1")
	mock.ExpectQuery(`FROM bullet_entries e`).WillReturnRows(rows)

	entries, err := ListEntries(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "buy milk", entries[0].Content)
	require.NotNil(t, entries[0].Collection)
	assert.Equal(t, "日记", entries[0].Collection.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesCollectionFilter(t *testing.T) {
	mock := newMockDB(t)

	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "e1", "buy milk", "task", "pending", time.Now(), "c1")
	mock.ExpectQuery(regexp.QuoteMeta(`e.collection_id = $1`)).
		WithArgs("c1").
		WillReturnRows(rows)

	entries, err := ListEntries(context.Background(), "c1", "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "c1", entries[0].CollectionID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesDateWindowIsHalfOpenLocalDay(t *testing.T) {
	mock := newMockDB(t)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	next := day.AddDate(0, 0, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`e.date >= $1 AND e.date < $2`)).
		WithArgs(day, next).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	entries, err := ListEntries(context.Background(), "", "2024-03-10")
	require.NoError(t, err)
	assert.Empty(t, entries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesBothFilters(t *testing.T) {
	mock := newMockDB(t)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery(regexp.QuoteMeta(`e.collection_id = $1 AND e.date >= $2 AND e.date < $3`)).
		WithArgs("c1", day, day.AddDate(0, 0, 1)).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	_, err := ListEntries(context.Background(), "c1", "2024-03-10")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesBadDate(t *testing.T) {
	newMockDB(t)

	_, err := ListEntries(context.Background(), "", "10/03/2024")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateEntryDefaults(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO bullet_entries`).
		WithArgs(sqlmock.AnyArg(), "buy milk", models.TypeNote, models.StatusPending,
			sqlmock.AnyArg(), "c1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "e1", "buy milk", "note", "pending", time.Now(), "c1")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	entry, err := CreateEntry(context.Background(), CreateEntryParams{
		Content:      "buy milk",
		CollectionID: "c1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.TypeNote, entry.Type)
	assert.Equal(t, models.StatusPending, entry.Status)
	require.NotNil(t, entry.Collection)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntryExplicitDate(t *testing.T) {
	mock := newMockDB(t)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	mock.ExpectExec(`INSERT INTO bullet_entries`).
		WithArgs(sqlmock.AnyArg(), "review notes", models.TypeTask, models.StatusPending,
			day, "c1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "e1", "review notes", "task", "pending", day, "c1")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	_, err := CreateEntry(context.Background(), CreateEntryParams{
		Content:      "review notes",
		Type:         models.TypeTask,
		Date:         "2024-03-10",
		CollectionID: "c1",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEntryAppliesOnlyProvidedFields(t *testing.T) {
	mock := newMockDB(t)

	// Only status is in the patch, so only status and updated_at may change.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bullet_entries SET status = $1, updated_at = $2 WHERE id = $3`)).
		WithArgs(models.StatusCompleted, sqlmock.AnyArg(), "e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "e1", "buy milk", "task", "completed", time.Now(), "c1")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.id = $1`)).
		WithArgs("e1").
		WillReturnRows(rows)

	status := models.StatusCompleted
	entry, err := UpdateEntry(context.Background(), "e1", models.EntryPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, entry.Status)
	assert.Equal(t, "buy milk", entry.Content)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEntryNotFound(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(`UPDATE bullet_entries`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	content := "gone"
	_, err := UpdateEntry(context.Background(), "missing", models.EntryPatch{Content: &content})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEntry(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bullet_entries WHERE id = $1`)).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, DeleteEntry(context.Background(), "e1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEntryNotFound(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bullet_entries WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, DeleteEntry(context.Background(), "missing"), ErrNotFound)
}

func TestParseEntryDate(t *testing.T) {
	got, err := ParseEntryDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), got)

	got, err = ParseEntryDate("2024-03-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 15, got.UTC().Hour())

	_, err = ParseEntryDate("next tuesday")
	require.ErrorIs(t, err, ErrInvalidInput)
}
