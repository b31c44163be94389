package repositories

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockPostgres returns a gorm handle on a sqlmock connection and a pointer
// to the last SQL statement the driver saw.
func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *string) {
	t.Helper()
	var last string
	matcher := sqlmock.QueryMatcherFunc(func(expected, actual string) error {
		last = actual
		return sqlmock.QueryMatcherRegexp.Match(expected, actual)
	})

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock, &last
}

func TestPostgresUpsertUpdatesOnUserConflict(t *testing.T) {
	db, mock, last := newMockPostgres(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "user_preferences" .* ON CONFLICT \("user_id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pref := parisPreference("u-1")
	err := NewPreferenceRepository(db).Upsert(context.Background(), pref)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	_, updates, found := strings.Cut(*last, "DO UPDATE SET")
	require.True(t, found, *last)
	for _, col := range []string{"city", "start_time", "end_time", "budget", "interests", "starting_point", "updated_at"} {
		assert.Contains(t, updates, `"`+col+`"="excluded"."`+col+`"`)
	}
	assert.NotContains(t, updates, `"created_at"`)
	assert.NotContains(t, updates, `"id"`)
}

func TestPostgresUpsertFailureRollsBack(t *testing.T) {
	db, mock, _ := newMockPostgres(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "user_preferences"`).WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	err := NewPreferenceRepository(db).Upsert(context.Background(), parisPreference("u-1"))

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByUserID(t *testing.T) {
	db, mock, _ := newMockPostgres(t)
	rows := sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "user_id", "city", "start_time", "end_time", "budget", "interests", "starting_point",
	}).AddRow(
		"5f0c7a52-3b7e-4b4a-9d8e-1c2b3a4d5e6f", int64(1700000000), int64(1700000500), "u-1", "Paris",
		"9:00 AM", "6:00 PM", 120, "{Culture,Food}", nil,
	)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_preferences" WHERE user_id = $1`)).WillReturnRows(rows)

	got, err := NewPreferenceRepository(db).GetByUserID(context.Background(), "u-1")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Paris", got.City)
	assert.Equal(t, pq.StringArray{"Culture", "Food"}, got.Interests)
	assert.Nil(t, got.StartingPoint)
	assert.Equal(t, int64(1700000500), got.UpdatedAt)
}

func TestPostgresGetMissingReturnsNil(t *testing.T) {
	db, mock, _ := newMockPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_preferences"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	got, err := NewPreferenceRepository(db).GetByUserID(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostgresGetQueryErrorIsReturned(t *testing.T) {
	db, mock, _ := newMockPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_preferences"`)).WillReturnError(errors.New("connection reset"))

	got, err := NewPreferenceRepository(db).GetByUserID(context.Background(), "u-1")

	require.Error(t, err)
	assert.Nil(t, got)
}
