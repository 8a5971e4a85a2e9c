package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenge period values.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Challenge is a weekly/monthly community goal. Metric names the unit being
// counted (reps, volume, distance, ...) and Target the value to reach.
type Challenge struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Metric      string             `bson:"metric" json:"metric"`
	Target      float64            `bson:"target" json:"target"`
	Period      string             `bson:"period" json:"period"`
	StartsAt    *time.Time         `bson:"starts_at,omitempty" json:"starts_at,omitempty"`
	EndsAt      *time.Time         `bson:"ends_at,omitempty" json:"ends_at,omitempty"`
}
