package service

import (
	"context"
	"strings"

	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/bagdasarian/course-teams/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, error) {
	params.Username = strings.TrimSpace(params.Username)
	if err := validateStruct(params); err != nil {
		return nil, err
	}

	user := &domain.User{Username: params.Username}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.NewInvalidArgumentError("user_id must be positive")
	}
	return s.userRepo.GetByID(ctx, id)
}
