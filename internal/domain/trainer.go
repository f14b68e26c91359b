package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerType distinguishes fitness trainers from dietitians.
type TrainerType string

const (
	TrainerTypeFitness TrainerType = "fitness"
	TrainerTypeDiet    TrainerType = "diet"
)

// Trainer represents a trainer account and its public profile.
type Trainer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"`

	Specialty    string      `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Experience   int         `bson:"experience,omitempty" json:"experience,omitempty"` // years
	Description  string      `bson:"description,omitempty" json:"description,omitempty"`
	TrainerType  TrainerType `bson:"trainerType" json:"trainerType"`
	ProfileImage string      `bson:"profileImage,omitempty" json:"profileImage,omitempty"`

	// Rating is a running average maintained together with RatingCount.
	Rating      float64 `bson:"rating" json:"rating"`
	RatingCount int     `bson:"ratingCount" json:"ratingCount"`

	// Clients is permanent membership: a user stays in it after their plan
	// lapses. CurrentClients holds only active assignments.
	Clients        []primitive.ObjectID `bson:"clients,omitempty" json:"clients,omitempty"`
	CurrentClients []primitive.ObjectID `bson:"currentClients,omitempty" json:"currentClients,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
