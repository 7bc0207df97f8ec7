package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/repositories"
)

// UserService resolves signed-in identities to jury accounts
type UserService interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetByUsername looks up an account; the error wraps repositories.ErrNotFound for unknown users
func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("empty username: %w", repositories.ErrNotFound)
	}
	return s.userRepo.GetByUsername(ctx, username)
}
