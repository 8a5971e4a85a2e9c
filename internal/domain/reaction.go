package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reaction is a lightweight reaction to a workout. The schema is declared for
// the reactions collection but no endpoint exposes it yet; workout likes are
// currently tracked as a counter on the workout itself.
type Reaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID string             `bson:"workout_id" json:"workout_id"`
	Type      string             `bson:"type" json:"type"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
}
