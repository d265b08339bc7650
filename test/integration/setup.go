//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/course-teams/internal/db"
	"github.com/bagdasarian/course-teams/internal/repository/postgres"
	"github.com/bagdasarian/course-teams/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const testCourse = "course-v1:edX+DemoX+Demo_Course"

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	// те же миграции, что накатывает приложение при старте
	require.NoError(t, db.Migrate(ctx, database), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

type services struct {
	teams service.TeamService
	users service.UserService
	stats service.StatsService
}

func newServices(database *sql.DB) services {
	log := zap.NewNop().Sugar()
	userRepo := postgres.NewUserRepository(database)
	return services{
		teams: service.NewTeamService(
			log,
			postgres.NewTeamRepository(database),
			postgres.NewMembershipRepository(database),
			userRepo,
			3,
		),
		users: service.NewUserService(userRepo),
		stats: service.NewStatsService(postgres.NewStatsRepository(database)),
	}
}
