package handler_test

import (
	"context"

	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/bagdasarian/course-teams/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockTeamService struct{ mock.Mock }

var _ service.TeamService = (*mockTeamService)(nil)

func (m *mockTeamService) CreateTeam(ctx context.Context, params service.CreateTeamParams) (*domain.Team, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *mockTeamService) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *mockTeamService) ListTeams(ctx context.Context, params service.ListTeamsParams) ([]*domain.Team, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *mockTeamService) AddUser(ctx context.Context, teamID string, userID int64) (*domain.Membership, bool, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Membership), args.Bool(1), args.Error(2)
}

func (m *mockTeamService) ListMembers(ctx context.Context, teamID string) ([]*domain.Membership, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Membership), args.Error(1)
}

func (m *mockTeamService) ListUserTeams(ctx context.Context, userID int64) ([]*domain.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type mockUserService struct{ mock.Mock }

var _ service.UserService = (*mockUserService)(nil)

func (m *mockUserService) CreateUser(ctx context.Context, params service.CreateUserParams) (*domain.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockStatsService struct{ mock.Mock }

var _ service.StatsService = (*mockStatsService)(nil)

func (m *mockStatsService) GetCourseTeamStats(ctx context.Context, courseID string) ([]*domain.TeamStat, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamStat), args.Error(1)
}
