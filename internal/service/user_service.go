package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/apperr"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
)

type userService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newUserService(repos *repository.Repositories, log zerolog.Logger) *userService {
	return &userService{
		repos: repos,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// ListUsers returns every user
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repos.User.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user or ErrUserNotFound
func (s *userService) GetUser(ctx context.Context, username string) (*models.User, error) {
	if err := requireUser(ctx, s.repos, username); err != nil {
		return nil, err
	}

	user, err := s.repos.User.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}
	return user, nil
}
