package service

import (
	"context"

	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/bagdasarian/course-teams/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetCourseTeamStats(ctx context.Context, courseID string) ([]*domain.TeamStat, error) {
	key, err := domain.ParseCourseKey(courseID)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.GetCourseTeamStats(ctx, key)
}
