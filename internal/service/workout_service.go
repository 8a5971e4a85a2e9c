package service

import (
	"context"
	"errors"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

// WorkoutService handles logging workouts, the feed, and likes.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	GetFeed(ctx context.Context, userID string, limit int64) ([]domain.Workout, error)
	LikeWorkout(ctx context.Context, workoutID string) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// CreateWorkout recomputes the derived metrics from the nested exercises,
// defaults the session date, and persists the workout.
func (s *workoutService) CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	workout.ComputeMetrics(s.now())

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// GetFeed returns up to limit workouts, newest first, optionally filtered by
// user. userID is a soft reference; no existence check is made.
func (s *workoutService) GetFeed(ctx context.Context, userID string, limit int64) ([]domain.Workout, error) {
	return s.workoutRepo.Feed(ctx, userID, limit)
}

// LikeWorkout increments the likes counter on the workout with the given hex
// id and returns the updated workout. A malformed id is treated the same as
// an unknown one.
func (s *workoutService) LikeWorkout(ctx context.Context, workoutID string) (*domain.Workout, error) {
	objectID, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return nil, ErrWorkoutNotFound
	}

	workout, err := s.workoutRepo.IncrementLikes(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}
