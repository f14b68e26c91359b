package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanDateLayout is the canonical date key format for diet plans.
const PlanDateLayout = "2006-01-02"

// MealEntry is the snapshot of a catalog meal embedded in a diet plan,
// tagged with its time of day.
type MealEntry struct {
	Name        string    `bson:"name" json:"name"`
	Calories    int       `bson:"calories" json:"calories"`
	Protein     int       `bson:"protein" json:"protein"`
	Carbs       int       `bson:"carbs" json:"carbs"`
	Fat         int       `bson:"fat" json:"fat"`
	MacroUnit   MacroUnit `bson:"macroUnit" json:"macroUnit"`
	Ingredients []string  `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Recipe      string    `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Time        string    `bson:"time" json:"time"`
}

// DietPlan is one client's meal plan for a single date. The (userId, date)
// pair is the identity; writing a plan for an existing date replaces the
// whole document (last writer wins, no merge).
type DietPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	TrainerID     primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Date          string             `bson:"date" json:"date"` // PlanDateLayout
	Meals         []MealEntry        `bson:"meals" json:"meals"`
	TotalCalories int                `bson:"totalCalories" json:"totalCalories"`
	Followed      bool               `bson:"followed" json:"followed"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MealsByTime groups the plan's entries by their time tag, preserving the
// order entries appear within each slot.
func (p *DietPlan) MealsByTime() map[string][]MealEntry {
	if len(p.Meals) == 0 {
		return map[string][]MealEntry{}
	}
	byTime := make(map[string][]MealEntry)
	for _, entry := range p.Meals {
		byTime[entry.Time] = append(byTime[entry.Time], entry)
	}
	return byTime
}
