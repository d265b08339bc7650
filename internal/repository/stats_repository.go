package repository

import (
	"context"

	"github.com/bagdasarian/course-teams/internal/domain"
)

type StatsRepository interface {
	GetCourseTeamStats(ctx context.Context, courseID domain.CourseKey) ([]*domain.TeamStat, error)
}
