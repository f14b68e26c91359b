package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeals_ArrayWrappedInProse(t *testing.T) {
	reply := `Sure! Here are two meals that fit your goals:

[
  {"name": "Paneer Wrap", "recipe": "Roll it up.", "calories": 420, "macronutrients": "P22 C40 F18", "ingredients": ["paneer", "tortilla"]},
  {"name": "Lentil Soup", "recipe": "Simmer for 20 minutes.", "calories": 280, "macronutrients": "P18 C45 F4", "ingredients": ["lentils", "onion"]}
]

Let me know if you'd like alternatives.`

	meals, err := ParseMeals(reply)
	require.NoError(t, err)

	require.Len(t, meals, 2)
	assert.Equal(t, "Paneer Wrap", meals[0].Name)
	assert.Equal(t, float64(280), meals[1].Calories)
	assert.Equal(t, []string{"lentils", "onion"}, meals[1].Ingredients)
}

func TestParseMeals_BareArray(t *testing.T) {
	meals, err := ParseMeals(`[{"name": "Toast", "calories": 150}]`)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Toast", meals[0].Name)
}

func TestParseMeals_NoArray(t *testing.T) {
	_, err := ParseMeals("I cannot produce a meal plan right now.")
	assert.ErrorIs(t, err, ErrNoMealArray)
}

func TestParseMeals_MalformedArray(t *testing.T) {
	_, err := ParseMeals(`[{"name": "Broken"`)
	assert.ErrorIs(t, err, ErrNoMealArray)
}
