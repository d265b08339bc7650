package service

import (
	"context"

	"github.com/bagdasarian/course-teams/internal/domain"
)

// CreateTeamParams - данные для создания команды. TopicID, Country и Language необязательны.
type CreateTeamParams struct {
	Name        string `validate:"required,max=255"`
	CourseID    string `validate:"required,max=255"`
	Description string `validate:"required,max=300"`
	TopicID     string `validate:"max=255"`
	Country     string `validate:"omitempty,iso3166_1_alpha2"`
	Language    string `validate:"omitempty,iso639_1"`
}

type ListTeamsParams struct {
	CourseID string
	TopicID  string `validate:"max=255"`
}

type TeamService interface {
	CreateTeam(ctx context.Context, params CreateTeamParams) (*domain.Team, error)
	GetTeam(ctx context.Context, teamID string) (*domain.Team, error)
	ListTeams(ctx context.Context, params ListTeamsParams) ([]*domain.Team, error)
	AddUser(ctx context.Context, teamID string, userID int64) (membership *domain.Membership, created bool, err error)
	ListMembers(ctx context.Context, teamID string) ([]*domain.Membership, error)
	ListUserTeams(ctx context.Context, userID int64) ([]*domain.Team, error)
}
