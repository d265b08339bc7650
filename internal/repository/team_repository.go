package repository

import (
	"context"
	"errors"

	"github.com/bagdasarian/course-teams/internal/domain"
)

// ErrTeamIDTaken возвращается, когда вставка упала на уникальном индексе team_id.
var ErrTeamIDTaken = errors.New("team_id already taken")

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByTeamID(ctx context.Context, teamID string) (*domain.Team, error)
	ListTeamIDsWithPrefix(ctx context.Context, prefix string) ([]string, error)
	List(ctx context.Context, filter domain.TeamFilter) ([]*domain.Team, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Team, error)
}
