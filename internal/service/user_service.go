package service

import (
	"context"
	"errors"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUsernameTaken = errors.New("username already exists")
)

// UserService handles account creation and listing.
type UserService interface {
	CreateUser(ctx context.Context, username, fullName, city string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int64) ([]domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// CreateUser registers a new account after checking the username is free.
// The existence check is advisory; the unique index on username is what
// actually decides a race between two concurrent registrations, and the
// losing insert surfaces as the same ErrUsernameTaken.
func (s *userService) CreateUser(ctx context.Context, username, fullName, city string) (*domain.User, error) {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		Username: username,
		FullName: fullName,
		City:     city,
		Level:    domain.LevelBeginner,
		Goals:    []string{},
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	user.ID = userID
	return user, nil
}

// ListUsers returns up to limit users in storage order.
func (s *userService) ListUsers(ctx context.Context, limit int64) ([]domain.User, error) {
	return s.userRepo.List(ctx, limit)
}
