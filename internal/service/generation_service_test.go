package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply  string
	err    error
	system string
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, system, prompt string) (string, error) {
	f.system = system
	f.prompt = prompt
	return f.reply, f.err
}

func TestGenerateMeals_ExtractsArrayFromProse(t *testing.T) {
	completer := &fakeCompleter{reply: `Here is your plan for the day:
[
  {"name": "Oatmeal", "recipe": "Boil and stir.", "calories": 300, "macronutrients": "P12 C50 F6", "ingredients": ["oats", "milk"]},
  {"name": "Grilled Chicken", "recipe": "Grill it.", "calories": 450, "macronutrients": "P40 C5 F20", "ingredients": ["chicken"]}
]
Enjoy!`}
	svc := NewGenerationService(completer)

	meals, err := svc.GenerateMeals(context.Background(), GenerationRequest{
		FitnessGoal:    "muscle gain",
		DietPreference: "vegetarian",
		Allergies:      []string{"peanuts"},
		TargetCalories: 2200,
		MealsPerDay:    2,
	})
	require.NoError(t, err)

	require.Len(t, meals, 2)
	assert.Equal(t, "Oatmeal", meals[0].Name)
	assert.Equal(t, float64(450), meals[1].Calories)

	// The prompt carries every constraint the caller supplied, and the
	// model is primed with the dietitian role.
	assert.True(t, strings.Contains(completer.prompt, "muscle gain"))
	assert.True(t, strings.Contains(completer.prompt, "vegetarian"))
	assert.True(t, strings.Contains(completer.prompt, "peanuts"))
	assert.True(t, strings.Contains(completer.prompt, "2200"))
	assert.True(t, strings.Contains(completer.system, "dietitian"))
}

func TestGenerateMeals_NoArrayInReply(t *testing.T) {
	svc := NewGenerationService(&fakeCompleter{reply: "Sorry, I can't help with that."})

	_, err := svc.GenerateMeals(context.Background(), GenerationRequest{})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerateMeals_CompleterFailure(t *testing.T) {
	svc := NewGenerationService(&fakeCompleter{err: errors.New("timeout")})

	_, err := svc.GenerateMeals(context.Background(), GenerationRequest{})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerateMeals_DefaultsMealsPerDay(t *testing.T) {
	completer := &fakeCompleter{reply: `[]`}
	svc := NewGenerationService(completer)

	_, err := svc.GenerateMeals(context.Background(), GenerationRequest{})
	require.NoError(t, err)
	assert.True(t, strings.Contains(completer.prompt, "3 meals"))
}
