package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/course-teams/internal/config"
	"github.com/bagdasarian/course-teams/internal/db"
	"github.com/bagdasarian/course-teams/internal/handler"
	"github.com/bagdasarian/course-teams/internal/handler/server"
	"github.com/bagdasarian/course-teams/internal/logger"
	"github.com/bagdasarian/course-teams/internal/repository/postgres"
	"github.com/bagdasarian/course-teams/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	sugar, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database := db.MustLoad(ctx, cfg)
	sugar.Info("successfully connected to database")
	defer database.Close()

	teamRepo := postgres.NewTeamRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	userRepo := postgres.NewUserRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	teamService := service.NewTeamService(sugar, teamRepo, membershipRepo, userRepo, cfg.Teams.MaxCreateAttempts)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(statsRepo)

	h := handler.NewHandler(sugar, teamService, userService, statsService)
	srv := server.NewServer(sugar, h, cfg.ServerAddr(), cfg.HTTP.RequestTimeout)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			sugar.Errorw("server failed", "error", err)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("server forced to shutdown", "error", err)
	}
}
