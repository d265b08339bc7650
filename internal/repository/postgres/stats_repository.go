package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/course-teams/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

// GetCourseTeamStats считает размер команд курса и время последней активности.
// Активность - последнее вступление в команду, либо дата создания, если участников нет.
func (r *statsRepository) GetCourseTeamStats(ctx context.Context, courseID domain.CourseKey) ([]*domain.TeamStat, error) {
	query := `
		SELECT t.team_id, t.name, COUNT(m.id) AS member_count,
		       COALESCE(MAX(m.date_joined), t.date_created) AS last_activity
		FROM course_teams t
		LEFT JOIN course_team_memberships m ON m.team_id = t.id
		WHERE t.course_id = $1
		GROUP BY t.id, t.team_id, t.name, t.date_created
		ORDER BY last_activity DESC, t.team_id
	`

	rows, err := r.executor.QueryContext(ctx, query, courseID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.TeamStat, 0)
	for rows.Next() {
		stat := &domain.TeamStat{}
		err := rows.Scan(&stat.TeamID, &stat.Name, &stat.MemberCount, &stat.LastActivity)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
