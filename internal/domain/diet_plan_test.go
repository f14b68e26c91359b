package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealSnapshot_IsACopy(t *testing.T) {
	meal := Meal{
		Name:        "Oatmeal",
		Calories:    300,
		Protein:     12,
		MacroUnit:   MacroUnitGrams,
		Ingredients: []string{"oats", "milk"},
		Recipe:      "• Boil\n• Stir",
		Time:        "08:00",
	}

	entry := meal.Snapshot()
	require.Equal(t, "Oatmeal", entry.Name)
	require.Equal(t, 300, entry.Calories)

	// Mutating the catalog entry afterwards must not leak into the snapshot.
	meal.Ingredients[0] = "quinoa"
	meal.Calories = 999
	assert.Equal(t, "oats", entry.Ingredients[0])
	assert.Equal(t, 300, entry.Calories)
}

func TestMealsByTime_GroupsAndPreservesOrder(t *testing.T) {
	plan := DietPlan{
		Meals: []MealEntry{
			{Name: "Oatmeal", Time: "08:00"},
			{Name: "Banana", Time: "08:00"},
			{Name: "Chicken", Time: "13:00"},
		},
	}

	byTime := plan.MealsByTime()
	require.Len(t, byTime, 2)
	require.Len(t, byTime["08:00"], 2)
	assert.Equal(t, "Oatmeal", byTime["08:00"][0].Name)
	assert.Equal(t, "Banana", byTime["08:00"][1].Name)
	assert.Equal(t, "Chicken", byTime["13:00"][0].Name)
}

func TestMealsByTime_EmptyPlan(t *testing.T) {
	plan := DietPlan{}
	assert.Empty(t, plan.MealsByTime())
}
