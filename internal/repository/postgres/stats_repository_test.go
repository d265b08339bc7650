package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_GetCourseTeamStats(t *testing.T) {
	t.Run("статистика по командам курса", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)
		ctx := context.Background()

		last := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"team_id", "name", "member_count", "last_activity"}).
			AddRow("busy", "Busy", 3, last).
			AddRow("quiet", "Quiet", 0, last.Add(-48*time.Hour))
		mock.ExpectQuery("SELECT t.team_id, t.name, COUNT").
			WithArgs("edX/DemoX/Demo").
			WillReturnRows(rows)

		stats, err := repo.GetCourseTeamStats(ctx, "edX/DemoX/Demo")

		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, "busy", stats[0].TeamID)
		assert.Equal(t, 3, stats[0].MemberCount)
		assert.Equal(t, last, stats[0].LastActivity)
		assert.Equal(t, 0, stats[1].MemberCount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка запроса", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		expectedError := errors.New("database error")
		mock.ExpectQuery("SELECT t.team_id, t.name, COUNT").WillReturnError(expectedError)

		stats, err := repo.GetCourseTeamStats(context.Background(), "edX/DemoX/Demo")

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.Equal(t, expectedError, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
