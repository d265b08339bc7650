package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/course-teams/internal/domain"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) GetOrCreate(ctx context.Context, userID int64, teamID string) (*domain.Membership, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	var teamDBID int
	err = tx.QueryRowContext(ctx, "SELECT id FROM course_teams WHERE team_id = $1", teamID).Scan(&teamDBID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, domain.NewNotFoundError("team with id " + teamID)
		}
		return nil, false, err
	}

	insertQuery := `
		INSERT INTO course_team_memberships (user_id, team_id, date_joined)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, team_id) DO NOTHING
		RETURNING id, date_joined
	`

	membership := &domain.Membership{UserID: userID, TeamID: teamID}
	created := true

	err = tx.QueryRowContext(ctx, insertQuery, userID, teamDBID, time.Now()).
		Scan(&membership.ID, &membership.DateJoined)
	if err != nil {
		if isForeignKeyViolation(err, membershipUserForeignKey) {
			return nil, false, domain.NewNotFoundError("user")
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, err
		}

		// ON CONFLICT DO NOTHING ничего не вернул - членство уже есть
		created = false
		selectQuery := `
			SELECT id, date_joined
			FROM course_team_memberships
			WHERE user_id = $1 AND team_id = $2
		`
		err = tx.QueryRowContext(ctx, selectQuery, userID, teamDBID).
			Scan(&membership.ID, &membership.DateJoined)
		if err != nil {
			return nil, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}

	return membership, created, nil
}

func (r *membershipRepository) ListByTeamID(ctx context.Context, teamID string) ([]*domain.Membership, error) {
	query := `
		SELECT m.id, m.user_id, t.team_id, m.date_joined
		FROM course_team_memberships m
		JOIN course_teams t ON m.team_id = t.id
		WHERE t.team_id = $1
		ORDER BY m.date_joined, m.id
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		m := &domain.Membership{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.TeamID, &m.DateJoined); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}
