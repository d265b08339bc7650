package service

import (
	"context"

	"github.com/bagdasarian/course-teams/internal/domain"
)

type StatsService interface {
	GetCourseTeamStats(ctx context.Context, courseID string) ([]*domain.TeamStat, error)
}
