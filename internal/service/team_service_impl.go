package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/bagdasarian/course-teams/internal/repository"
	"go.uber.org/zap"
)

const maxTeamIDLength = 255

type teamService struct {
	log               *zap.SugaredLogger
	teamRepo          repository.TeamRepository
	membershipRepo    repository.MembershipRepository
	userRepo          repository.UserRepository
	maxCreateAttempts int
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	log *zap.SugaredLogger,
	teamRepo repository.TeamRepository,
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	maxCreateAttempts int,
) TeamService {
	if maxCreateAttempts < 1 {
		maxCreateAttempts = 1
	}
	return &teamService{
		log:               log.Named("service.teams"),
		teamRepo:          teamRepo,
		membershipRepo:    membershipRepo,
		userRepo:          userRepo,
		maxCreateAttempts: maxCreateAttempts,
	}
}

// CreateTeam создает команду с уникальным team_id, выведенным из имени.
// Уникальный индекс в БД - окончательный арбитр: если параллельная вставка
// успела занять тот же team_id, список конфликтов перечитывается заново.
func (s *teamService) CreateTeam(ctx context.Context, params CreateTeamParams) (*domain.Team, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Country = strings.ToUpper(strings.TrimSpace(params.Country))
	params.Language = strings.ToLower(strings.TrimSpace(params.Language))

	if err := validateStruct(params); err != nil {
		return nil, err
	}

	courseID, err := domain.ParseCourseKey(params.CourseID)
	if err != nil {
		return nil, err
	}

	candidate := Slugify(params.Name)
	if candidate == "" {
		return nil, domain.NewInvalidArgumentError("name must contain at least one letter or digit")
	}

	for attempt := 1; attempt <= s.maxCreateAttempts; attempt++ {
		conflicts, err := s.teamRepo.ListTeamIDsWithPrefix(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("list team ids: %w", err)
		}

		teamID := UniqueTeamID(candidate, conflicts)
		if utf8.RuneCountInString(teamID) > maxTeamIDLength {
			return nil, domain.NewInvalidArgumentError("name is too long to derive a unique team id")
		}

		team := &domain.Team{
			TeamID:      teamID,
			Name:        params.Name,
			CourseID:    courseID,
			TopicID:     params.TopicID,
			Description: params.Description,
			Country:     params.Country,
			Language:    params.Language,
		}

		err = s.teamRepo.Create(ctx, team)
		if errors.Is(err, repository.ErrTeamIDTaken) {
			s.log.Warnw("team_id taken concurrently, retrying", "team_id", teamID, "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create team: %w", err)
		}

		team.Members = []domain.TeamMember{}
		s.log.Infow("team created", "team_id", team.TeamID, "course_id", team.CourseID.String())
		return team, nil
	}

	s.log.Errorw("failed to allocate team_id", "candidate", candidate, "attempts", s.maxCreateAttempts)
	return nil, domain.ErrTeamExists
}

// GetTeam получает команду с участниками по team_id
func (s *teamService) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	if teamID == "" {
		return nil, domain.NewInvalidArgumentError("team_id is required")
	}
	return s.teamRepo.GetByTeamID(ctx, teamID)
}

func (s *teamService) ListTeams(ctx context.Context, params ListTeamsParams) ([]*domain.Team, error) {
	if err := validateStruct(params); err != nil {
		return nil, err
	}

	filter := domain.TeamFilter{TopicID: params.TopicID}
	if params.CourseID != "" {
		courseID, err := domain.ParseCourseKey(params.CourseID)
		if err != nil {
			return nil, err
		}
		filter.CourseID = courseID
	}

	return s.teamRepo.List(ctx, filter)
}

// AddUser добавляет пользователя в команду, если его там еще нет.
func (s *teamService) AddUser(ctx context.Context, teamID string, userID int64) (*domain.Membership, bool, error) {
	if teamID == "" {
		return nil, false, domain.NewInvalidArgumentError("team_id is required")
	}
	if userID <= 0 {
		return nil, false, domain.NewInvalidArgumentError("user_id must be positive")
	}

	membership, created, err := s.membershipRepo.GetOrCreate(ctx, userID, teamID)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.log.Infow("user joined team", "team_id", teamID, "user_id", userID)
	}
	return membership, created, nil
}

// ListMembers возвращает членства команды в порядке вступления.
func (s *teamService) ListMembers(ctx context.Context, teamID string) ([]*domain.Membership, error) {
	if teamID == "" {
		return nil, domain.NewInvalidArgumentError("team_id is required")
	}

	memberships, err := s.membershipRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	// пустой список неотличим от несуществующей команды
	if len(memberships) == 0 {
		if _, err := s.teamRepo.GetByTeamID(ctx, teamID); err != nil {
			return nil, err
		}
	}
	return memberships, nil
}

// ListUserTeams возвращает команды, в которых состоит пользователь.
func (s *teamService) ListUserTeams(ctx context.Context, userID int64) ([]*domain.Team, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.teamRepo.ListByUserID(ctx, userID)
}
