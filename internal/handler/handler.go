package handler

import (
	"github.com/bagdasarian/course-teams/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	log          *zap.SugaredLogger
	teamService  service.TeamService
	userService  service.UserService
	statsService service.StatsService
}

func NewHandler(
	log *zap.SugaredLogger,
	teamService service.TeamService,
	userService service.UserService,
	statsService service.StatsService,
) *Handler {
	return &Handler{
		log:          log.Named("handler"),
		teamService:  teamService,
		userService:  userService,
		statsService: statsService,
	}
}
