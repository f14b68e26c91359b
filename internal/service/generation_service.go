package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aman-1313/fitealthy/internal/ai"
)

var ErrGenerationFailed = errors.New("diet generation failed")

// MealCompleter produces a model reply for a system/user prompt pair.
// Satisfied by ai.Client.
type MealCompleter interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

const dietitianSystemPrompt = "You are a dietitian. Create a personalized diet plan based on a balanced diet."

// GenerationRequest describes the client the diet is generated for.
type GenerationRequest struct {
	FitnessGoal    string
	DietPreference string // e.g. "vegetarian"
	Allergies      []string
	TargetCalories int
	MealsPerDay    int
}

// GenerationService asks the model for a day of meal suggestions.
type GenerationService interface {
	GenerateMeals(ctx context.Context, req GenerationRequest) ([]ai.GeneratedMeal, error)
}

type generationService struct {
	completer MealCompleter
}

// NewGenerationService creates a new instance of generationService.
func NewGenerationService(completer MealCompleter) GenerationService {
	return &generationService{completer: completer}
}

// GenerateMeals builds the prompt, calls the model, and extracts the meal
// array from the reply.
func (s *generationService) GenerateMeals(ctx context.Context, req GenerationRequest) ([]ai.GeneratedMeal, error) {
	if req.MealsPerDay <= 0 {
		req.MealsPerDay = 3
	}

	reply, err := s.completer.Complete(ctx, dietitianSystemPrompt, buildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	meals, err := ai.ParseMeals(reply)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return meals, nil
}

func buildPrompt(req GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest %d meals for one day", req.MealsPerDay)
	if req.FitnessGoal != "" {
		fmt.Fprintf(&b, " for someone whose fitness goal is %s", req.FitnessGoal)
	}
	if req.DietPreference != "" {
		fmt.Fprintf(&b, ", following a %s diet", req.DietPreference)
	}
	if req.TargetCalories > 0 {
		fmt.Fprintf(&b, ", totalling about %d calories", req.TargetCalories)
	}
	if len(req.Allergies) > 0 {
		fmt.Fprintf(&b, ", avoiding %s", strings.Join(req.Allergies, ", "))
	}
	b.WriteString(". Respond with only a JSON array where each element has the keys ")
	b.WriteString(`"name", "recipe", "calories", "macronutrients" and "ingredients" (an array of strings).`)
	return b.String()
}
