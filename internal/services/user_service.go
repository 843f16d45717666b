package services

import (
	"fmt"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

// UserService provides read access to the user directory.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListActive returns all active users, for assignee pickers.
func (s *UserService) ListActive() ([]models.User, error) {
	users, err := s.userRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListManagers returns all active users holding the Manager role.
func (s *UserService) ListManagers() ([]models.User, error) {
	users, err := s.userRepo.ListActiveByRole(models.RoleManager)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	return users, nil
}
