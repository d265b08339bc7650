package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserRepo создает мок БД и репозиторий для User
func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("успешное создание пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)
		ctx := context.Background()

		now := time.Now()
		user := &domain.User{Username: "john_doe"}

		rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("john_doe", sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
		assert.Equal(t, now, user.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: имя пользователя занято", func(t *testing.T) {
		repo, mock := setupUserRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("john_doe", sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := repo.Create(ctx, &domain.User{Username: "john_doe"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserExists))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("успешное получение пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)
		ctx := context.Background()

		createdAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "username", "created_at"}).
			AddRow(int64(1), "alice", createdAt)
		mock.ExpectQuery("SELECT id, username, created_at").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		user, err := repo.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, createdAt, user.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("SELECT id, username, created_at").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(ctx, 404)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "user with id 404 not found", err.Error())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
