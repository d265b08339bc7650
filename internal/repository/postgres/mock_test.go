package postgres

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// setupMockDB создает sqlmock-соединение, которое закрывается по окончании теста
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

var teamColumnNames = []string{
	"id", "team_id", "name", "is_active", "course_id", "topic_id",
	"date_created", "description", "country", "language",
}
