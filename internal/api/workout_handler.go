package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request/Response Structs ---

// ExerciseSetRequest carries one set. Optional fields are pointers so that an
// absent value can be told apart from an explicit zero.
type ExerciseSetRequest struct {
	Reps    int      `json:"reps" binding:"required,min=1"`
	Weight  float64  `json:"weight" binding:"gte=0"`
	RestSec *int     `json:"rest_sec" binding:"omitempty,gte=0"`
	RPE     *float64 `json:"rpe" binding:"omitempty,gte=1,lte=10"`
}

// WorkoutExerciseRequest carries one exercise with its sets.
type WorkoutExerciseRequest struct {
	Name string               `json:"name" binding:"required"`
	Sets []ExerciseSetRequest `json:"sets" binding:"omitempty,dive"`
}

// CreateWorkoutRequest defines the expected JSON for logging a workout.
// Derived metric fields are not accepted; the server recomputes them.
type CreateWorkoutRequest struct {
	UserID      string                   `json:"user_id" binding:"required"`
	Notes       string                   `json:"notes"`
	DurationMin *int                     `json:"duration_min" binding:"omitempty,gte=0"`
	Fatigue     *int                     `json:"fatigue" binding:"omitempty,gte=1,lte=10"`
	Exercises   []WorkoutExerciseRequest `json:"exercises" binding:"omitempty,dive"`
	Date        *time.Time               `json:"date"`
	Likes       *int64                   `json:"likes" binding:"omitempty,gte=0"`
	MediaURL    string                   `json:"media_url"`
}

// CreateWorkoutResponse returns the assigned id and the computed volume.
type CreateWorkoutResponse struct {
	ID          string  `json:"id"`
	TotalVolume float64 `json:"total_volume"`
}

// WorkoutResponse is the full workout record with its id rendered as a hex string.
type WorkoutResponse struct {
	ID          string                   `json:"id"`
	UserID      string                   `json:"user_id"`
	Notes       string                   `json:"notes,omitempty"`
	DurationMin *int                     `json:"duration_min,omitempty"`
	Fatigue     *int                     `json:"fatigue,omitempty"`
	Exercises   []domain.WorkoutExercise `json:"exercises"`
	TotalVolume float64                  `json:"total_volume"`
	TotalSets   int                      `json:"total_sets"`
	TotalReps   int                      `json:"total_reps"`
	Date        *time.Time               `json:"date"`
	Likes       int64                    `json:"likes"`
	MediaURL    string                   `json:"media_url,omitempty"`
}

const defaultRestSec = 90

// mapRequestToWorkout converts the request DTO into a domain workout,
// applying field defaults (rest 90s, weight 0).
func mapRequestToWorkout(req *CreateWorkoutRequest) *domain.Workout {
	exercises := make([]domain.WorkoutExercise, len(req.Exercises))
	for i, ex := range req.Exercises {
		sets := make([]domain.ExerciseSet, len(ex.Sets))
		for j, s := range ex.Sets {
			restSec := defaultRestSec
			if s.RestSec != nil {
				restSec = *s.RestSec
			}
			sets[j] = domain.ExerciseSet{
				Reps:    s.Reps,
				Weight:  s.Weight,
				RestSec: restSec,
				RPE:     s.RPE,
			}
		}
		exercises[i] = domain.WorkoutExercise{Name: ex.Name, Sets: sets}
	}

	workout := &domain.Workout{
		UserID:      req.UserID,
		Notes:       req.Notes,
		DurationMin: req.DurationMin,
		Fatigue:     req.Fatigue,
		Exercises:   exercises,
		Date:        req.Date,
		MediaURL:    req.MediaURL,
	}
	if req.Likes != nil {
		workout.Likes = *req.Likes
	}
	return workout
}

// MapWorkoutToResponse converts a domain Workout to a WorkoutResponse DTO.
func MapWorkoutToResponse(workout *domain.Workout) WorkoutResponse {
	if workout == nil {
		return WorkoutResponse{}
	}
	exercises := workout.Exercises
	if exercises == nil {
		exercises = []domain.WorkoutExercise{}
	}
	return WorkoutResponse{
		ID:          workout.ID.Hex(),
		UserID:      workout.UserID,
		Notes:       workout.Notes,
		DurationMin: workout.DurationMin,
		Fatigue:     workout.Fatigue,
		Exercises:   exercises,
		TotalVolume: workout.TotalVolume,
		TotalSets:   workout.TotalSets,
		TotalReps:   workout.TotalReps,
		Date:        workout.Date,
		Likes:       workout.Likes,
		MediaURL:    workout.MediaURL,
	}
}

// --- Handler Methods ---

// CreateWorkout handles POST /api/workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), mapRequestToWorkout(&req))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create workout")
		return
	}

	c.JSON(http.StatusOK, CreateWorkoutResponse{
		ID:          workout.ID.Hex(),
		TotalVolume: workout.TotalVolume,
	})
}

// GetFeed handles GET /api/workouts.
func (h *WorkoutHandler) GetFeed(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	if limit == 0 {
		c.JSON(http.StatusOK, []WorkoutResponse{})
		return
	}

	workouts, err := h.workoutService.GetFeed(c.Request.Context(), c.Query("user"), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout feed")
		return
	}

	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	c.JSON(http.StatusOK, responses)
}

// LikeWorkout handles POST /api/workouts/:id/like.
func (h *WorkoutHandler) LikeWorkout(c *gin.Context) {
	workout, err := h.workoutService.LikeWorkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to like workout")
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}
