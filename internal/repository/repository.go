package repository

import (
	"context"

	"fittrack/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("conflict")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, limit int64) ([]domain.User, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	// Feed returns workouts sorted by date descending, optionally filtered by
	// exact user_id match (empty string means no filter).
	Feed(ctx context.Context, userID string, limit int64) ([]domain.Workout, error)
	// IncrementLikes atomically increments the likes counter by one and
	// returns the updated workout. Returns ErrNotFound when no workout has
	// the given id.
	IncrementLikes(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
}

// ChallengeRepository defines the interface for interacting with challenge data.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *domain.Challenge) (primitive.ObjectID, error)
	List(ctx context.Context, limit int64) ([]domain.Challenge, error)
}
