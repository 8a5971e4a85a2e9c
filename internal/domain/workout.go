package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseSet is a single set performed within an exercise.
type ExerciseSet struct {
	Reps    int      `bson:"reps" json:"reps"`
	Weight  float64  `bson:"weight" json:"weight"`
	RestSec int      `bson:"rest_sec" json:"rest_sec"`
	RPE     *float64 `bson:"rpe,omitempty" json:"rpe,omitempty"`
}

// WorkoutExercise is one exercise inside a workout session, e.g. "Bench Press"
// with its sets. Exercises are embedded in the workout document, not a
// collection of their own.
type WorkoutExercise struct {
	Name string        `bson:"name" json:"name"`
	Sets []ExerciseSet `bson:"sets" json:"sets"`
}

// Workout is a logged training session. UserID is a soft reference to the
// athlete (username or id); existence is not enforced. TotalVolume, TotalSets
// and TotalReps are derived server-side and never trusted from the client.
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	DurationMin *int               `bson:"duration_min,omitempty" json:"duration_min,omitempty"`
	Fatigue     *int               `bson:"fatigue,omitempty" json:"fatigue,omitempty"`
	Exercises   []WorkoutExercise  `bson:"exercises" json:"exercises"`
	TotalVolume float64            `bson:"total_volume" json:"total_volume"`
	TotalSets   int                `bson:"total_sets" json:"total_sets"`
	TotalReps   int                `bson:"total_reps" json:"total_reps"`
	Date        *time.Time         `bson:"date" json:"date"`
	Likes       int64              `bson:"likes" json:"likes"`
	MediaURL    string             `bson:"media_url,omitempty" json:"media_url,omitempty"`
}

// ComputeMetrics recomputes the derived fields from the nested exercises and
// sets, and defaults Date to now (UTC) when it is unset. Volume accumulates
// as float64 and is rounded to two decimals once at the end, with exact
// halves rounding to even.
func (w *Workout) ComputeMetrics(now time.Time) {
	var volume float64
	sets := 0
	reps := 0
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			sets++
			reps += s.Reps
			volume += float64(s.Reps) * s.Weight
		}
	}
	w.TotalVolume = math.RoundToEven(volume*100) / 100
	w.TotalSets = sets
	w.TotalReps = reps
	if w.Date == nil {
		utc := now.UTC()
		w.Date = &utc
	}
	if w.Likes < 0 {
		w.Likes = 0
	}
}
