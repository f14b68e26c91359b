package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MacroUnit tags how a meal's macro values are expressed. The source data
// mixed percentages and grams between entry forms, so the unit is carried
// per meal instead of being converted.
type MacroUnit string

const (
	MacroUnitGrams   MacroUnit = "grams"
	MacroUnitPercent MacroUnit = "percent"
)

// Meal is a reusable catalog entry owned by one trainer. The (trainerId,
// name) pair is its identity: saving a meal under an existing name
// overwrites the previous entry.
type Meal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Name      string             `bson:"name" json:"name"`

	Calories    int       `bson:"calories" json:"calories"`
	Protein     int       `bson:"protein" json:"protein"`
	Carbs       int       `bson:"carbs" json:"carbs"`
	Fat         int       `bson:"fat" json:"fat"`
	MacroUnit   MacroUnit `bson:"macroUnit" json:"macroUnit"`
	Ingredients []string  `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Recipe      string    `bson:"recipe,omitempty" json:"recipe,omitempty"` // bullet-prefixed per line
	Time        string    `bson:"time,omitempty" json:"time,omitempty"`     // meal time of day, e.g. "08:00"

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Snapshot copies the catalog fields of the meal into a plan entry.
// Plans hold copies, so later catalog edits never propagate to them.
func (m Meal) Snapshot() MealEntry {
	return MealEntry{
		Name:        m.Name,
		Calories:    m.Calories,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fat:         m.Fat,
		MacroUnit:   m.MacroUnit,
		Ingredients: append([]string(nil), m.Ingredients...),
		Recipe:      m.Recipe,
		Time:        m.Time,
	}
}
