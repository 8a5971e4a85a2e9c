package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Training level values stored in User.Level.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// User represents an account on the platform. The username is the public
// handle and must be unique; no credentials are attached to it.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	FullName  string             `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	City      string             `bson:"city,omitempty" json:"city,omitempty"`
	Level     string             `bson:"level" json:"level"`
	Goals     []string           `bson:"goals" json:"goals"`
}
