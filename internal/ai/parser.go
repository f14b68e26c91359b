package ai

import (
	"encoding/json"
	"errors"
	"regexp"
)

var ErrNoMealArray = errors.New("ai: no meal array found in response")

// GeneratedMeal is one suggestion extracted from a model reply.
type GeneratedMeal struct {
	Name           string   `json:"name"`
	Recipe         string   `json:"recipe"`
	Calories       float64  `json:"calories"`
	Macronutrients string   `json:"macronutrients"`
	Ingredients    []string `json:"ingredients"`
}

// Models tend to wrap the requested JSON in prose, so the array is located
// by pattern rather than decoding the reply as a whole.
var mealArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ParseMeals extracts the first JSON array from a model reply and decodes it
// into meal suggestions.
func ParseMeals(reply string) ([]GeneratedMeal, error) {
	raw := mealArrayPattern.FindString(reply)
	if raw == "" {
		return nil, ErrNoMealArray
	}

	var meals []GeneratedMeal
	if err := json.Unmarshal([]byte(raw), &meals); err != nil {
		return nil, ErrNoMealArray
	}
	return meals, nil
}
