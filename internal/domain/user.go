package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// SelectedPlan is the snapshot of a paid plan embedded in the user document
// at booking time. It is a copy: later plan edits don't affect it.
type SelectedPlan struct {
	PlanID   primitive.ObjectID `bson:"planId" json:"planId"`
	Duration int                `bson:"duration" json:"duration"` // weeks
	Price    float64            `bson:"price" json:"price"`
}

// User represents a client account with its profile fields.
// Users are never hard-deleted.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON

	// Profile fields, filled in by the post-signup data form.
	Height        int    `bson:"height,omitempty" json:"height,omitempty"` // cm
	Weight        int    `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	Age           int    `bson:"age,omitempty" json:"age,omitempty"`
	Gender        string `bson:"gender,omitempty" json:"gender,omitempty"`
	ActivityLevel string `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"` // low|moderate|high
	FitnessGoal   string `bson:"fitnessGoal,omitempty" json:"fitnessGoal,omitempty"`
	HeardAboutApp string `bson:"heardAboutApp,omitempty" json:"heardAboutApp,omitempty"`
	ProfileImage  string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`

	// Booking state. A user has at most one assigned trainer at a time.
	AssignedTrainer *primitive.ObjectID `bson:"assignedTrainer,omitempty" json:"assignedTrainer,omitempty"`
	HasPaidPlan     bool                `bson:"hasPaidPlan" json:"hasPaidPlan"`
	SelectedPlan    *SelectedPlan       `bson:"selectedPlan,omitempty" json:"selectedPlan,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
