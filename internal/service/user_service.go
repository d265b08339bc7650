package service

import (
	"context"

	"github.com/bagdasarian/course-teams/internal/domain"
)

type CreateUserParams struct {
	Username string `validate:"required,max=150"`
}

type UserService interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}
