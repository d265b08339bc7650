package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/bagdasarian/course-teams/internal/repository"
)

const teamColumns = `id, team_id, name, is_active, course_id, topic_id, date_created, description, country, language`

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO course_teams (team_id, name, is_active, course_id, topic_id, date_created, description, country, language)
		VALUES ($1, $2, TRUE, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_active, date_created
	`

	now := time.Now()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		team.TeamID,
		team.Name,
		team.CourseID.String(),
		team.TopicID,
		now,
		team.Description,
		team.Country,
		team.Language,
	).Scan(&team.ID, &team.IsActive, &team.DateCreated)
	if err != nil {
		if isUniqueViolation(err, teamIDUniqueConstraint) {
			return repository.ErrTeamIDTaken
		}
		return err
	}

	return nil
}

func (r *teamRepository) GetByTeamID(ctx context.Context, teamID string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM course_teams WHERE team_id = $1`

	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, teamID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("team with id " + teamID)
		}
		return nil, err
	}

	members, err := r.getMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}

func (r *teamRepository) getMembers(ctx context.Context, teamDBID int) ([]domain.TeamMember, error) {
	query := `
		SELECT u.id, u.username, m.date_joined
		FROM course_team_memberships m
		JOIN users u ON m.user_id = u.id
		WHERE m.team_id = $1
		ORDER BY m.date_joined, m.id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamDBID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.UserID, &m.Username, &m.DateJoined); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// ListTeamIDsWithPrefix возвращает все team_id, начинающиеся с prefix.
func (r *teamRepository) ListTeamIDsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	query := `SELECT team_id FROM course_teams WHERE team_id LIKE $1 ESCAPE '\'`

	rows, err := r.executor.QueryContext(ctx, query, likePrefix(prefix))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *teamRepository) List(ctx context.Context, filter domain.TeamFilter) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + `
		FROM course_teams
		WHERE ($1 = '' OR course_id = $1) AND ($2 = '' OR topic_id = $2)
		ORDER BY date_created, id
	`

	rows, err := r.executor.QueryContext(ctx, query, filter.CourseID.String(), filter.TopicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTeams(rows)
}

func (r *teamRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Team, error) {
	query := `
		SELECT t.id, t.team_id, t.name, t.is_active, t.course_id, t.topic_id, t.date_created, t.description, t.country, t.language
		FROM course_teams t
		JOIN course_team_memberships m ON m.team_id = t.id
		WHERE m.user_id = $1
		ORDER BY m.date_joined, t.id
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTeams(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var courseID string
	err := row.Scan(
		&team.ID,
		&team.TeamID,
		&team.Name,
		&team.IsActive,
		&courseID,
		&team.TopicID,
		&team.DateCreated,
		&team.Description,
		&team.Country,
		&team.Language,
	)
	if err != nil {
		return nil, err
	}
	team.CourseID = domain.CourseKey(courseID)
	return team, nil
}

func scanTeams(rows *sql.Rows) ([]*domain.Team, error) {
	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}
