package repository

import (
	"context"

	"github.com/bagdasarian/course-teams/internal/domain"
)

type MembershipRepository interface {
	// GetOrCreate возвращает членство пользователя в команде, создавая его при отсутствии.
	// created == true, если строка была вставлена этим вызовом.
	GetOrCreate(ctx context.Context, userID int64, teamID string) (membership *domain.Membership, created bool, err error)
	ListByTeamID(ctx context.Context, teamID string) ([]*domain.Membership, error)
}
