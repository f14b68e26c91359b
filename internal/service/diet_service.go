package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMealNotFound    = errors.New("meal not found")
	ErrPlanNotFound    = errors.New("no diet plan for this date")
	ErrInvalidPlanDate = errors.New("plan date must be in YYYY-MM-DD format")
	ErrEmptyPlan       = errors.New("a plan needs at least one meal")
)

// AssignmentResult reports the per-date outcome of a multi-date plan
// assignment. Dates are independent writes, so one failing date doesn't
// roll back the others.
type AssignmentResult struct {
	Assigned []string          `json:"assigned"`
	Failed   map[string]string `json:"failed,omitempty"`
}

// PlanMealInput names one catalog meal and the time of day it is eaten.
// Times may repeat, so a plan can hold several meals in the same slot.
type PlanMealInput struct {
	Time string
	Name string
}

// MealInput carries the trainer entry form for a catalog meal.
type MealInput struct {
	Name        string
	Calories    int
	Protein     int
	Carbs       int
	Fat         int
	MacroUnit   domain.MacroUnit
	Ingredients string // comma separated
	Recipe      string // free text, one step per line
	Time        string
}

// DietService manages the trainer meal catalog and client diet plans.
type DietService interface {
	SaveMeal(ctx context.Context, trainerID primitive.ObjectID, input MealInput) (*domain.Meal, error)
	MealsForTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Meal, error)
	FindMealsByName(ctx context.Context, trainerID primitive.ObjectID, query string) ([]domain.Meal, error)
	AssignPlan(ctx context.Context, trainerID, userID primitive.ObjectID, dates []string, meals []PlanMealInput) (*AssignmentResult, error)
	PlanForDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DietPlan, error)
	MarkFollowed(ctx context.Context, userID primitive.ObjectID, date string) error
	PlanDatesInRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error)
}

type dietService struct {
	mealRepo repository.MealRepository
	planRepo repository.DietPlanRepository
}

// NewDietService creates a new instance of dietService.
func NewDietService(mealRepo repository.MealRepository, planRepo repository.DietPlanRepository) DietService {
	return &dietService{mealRepo: mealRepo, planRepo: planRepo}
}

// SaveMeal normalizes the entry form and writes the meal into the trainer's
// catalog. Saving an existing name overwrites the previous entry.
func (s *dietService) SaveMeal(ctx context.Context, trainerID primitive.ObjectID, input MealInput) (*domain.Meal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("meal name cannot be empty")
	}
	if input.Calories < 0 {
		return nil, errors.New("calories cannot be negative")
	}
	unit := input.MacroUnit
	if unit == "" {
		unit = domain.MacroUnitGrams
	}

	meal := &domain.Meal{
		TrainerID:   trainerID,
		Name:        name,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		MacroUnit:   unit,
		Ingredients: splitIngredients(input.Ingredients),
		Recipe:      bulletRecipe(input.Recipe),
		Time:        input.Time,
	}

	if err := s.mealRepo.Upsert(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// MealsForTrainer lists the trainer's whole catalog.
func (s *dietService) MealsForTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Meal, error) {
	return s.mealRepo.GetByTrainerID(ctx, trainerID)
}

// FindMealsByName filters the trainer's catalog by case-insensitive
// substring match on the meal name. An empty query returns everything.
func (s *dietService) FindMealsByName(ctx context.Context, trainerID primitive.ObjectID, query string) ([]domain.Meal, error) {
	meals, err := s.mealRepo.GetByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return meals, nil
	}
	matched := make([]domain.Meal, 0, len(meals))
	for _, meal := range meals {
		if strings.Contains(strings.ToLower(meal.Name), query) {
			matched = append(matched, meal)
		}
	}
	return matched, nil
}

// AssignPlan builds one diet plan per date from catalog meals and writes
// them. Each input entry names a catalog meal and its time slot (e.g.
// "08:00"); the same meal list is assigned to every date, in input order.
// Each plan holds snapshots of the catalog entries, a recomputed calorie
// total, and followed reset to false. Existing plans on those dates are
// replaced.
func (s *dietService) AssignPlan(ctx context.Context, trainerID, userID primitive.ObjectID, dates []string, meals []PlanMealInput) (*AssignmentResult, error) {
	if len(dates) == 0 {
		return nil, errors.New("at least one date is required")
	}
	if len(meals) == 0 {
		return nil, ErrEmptyPlan
	}

	// 1. Resolve every meal once up front. A missing meal fails the whole
	// request; nothing has been written yet.
	entries := make([]domain.MealEntry, 0, len(meals))
	for _, input := range meals {
		meal, err := s.mealRepo.GetByName(ctx, trainerID, input.Name)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %q", ErrMealNotFound, input.Name)
			}
			return nil, err
		}
		entry := meal.Snapshot()
		entry.Time = input.Time
		entries = append(entries, entry)
	}

	total := 0
	for _, entry := range entries {
		total += entry.Calories
	}

	// 2. Write one plan per date. Duplicate dates collapse to one write;
	// per-date failures are collected rather than aborting the rest.
	result := &AssignmentResult{}
	seen := make(map[string]bool, len(dates))
	for _, date := range dates {
		if seen[date] {
			continue
		}
		seen[date] = true
		if _, err := time.Parse(domain.PlanDateLayout, date); err != nil {
			s.recordFailure(result, date, ErrInvalidPlanDate.Error())
			continue
		}
		plan := &domain.DietPlan{
			UserID:        userID,
			TrainerID:     trainerID,
			Date:          date,
			Meals:         entries,
			TotalCalories: total,
			Followed:      false,
		}
		if err := s.planRepo.Upsert(ctx, plan); err != nil {
			s.recordFailure(result, date, err.Error())
			continue
		}
		result.Assigned = append(result.Assigned, date)
	}
	return result, nil
}

func (s *dietService) recordFailure(result *AssignmentResult, date, reason string) {
	if result.Failed == nil {
		result.Failed = make(map[string]string)
	}
	result.Failed[date] = reason
}

// PlanForDate fetches the client's plan for one date.
func (s *dietService) PlanForDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DietPlan, error) {
	if _, err := time.Parse(domain.PlanDateLayout, date); err != nil {
		return nil, ErrInvalidPlanDate
	}
	plan, err := s.planRepo.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// MarkFollowed flags the plan for a date as followed. Marking an already
// followed plan is a no-op, not an error.
func (s *dietService) MarkFollowed(ctx context.Context, userID primitive.ObjectID, date string) error {
	if _, err := time.Parse(domain.PlanDateLayout, date); err != nil {
		return ErrInvalidPlanDate
	}
	err := s.planRepo.MarkFollowed(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPlanNotFound
	}
	return err
}

// PlanDatesInRange returns the dates in [from, to] that have a plan, for
// calendar marking.
func (s *dietService) PlanDatesInRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error) {
	if _, err := time.Parse(domain.PlanDateLayout, from); err != nil {
		return nil, ErrInvalidPlanDate
	}
	if _, err := time.Parse(domain.PlanDateLayout, to); err != nil {
		return nil, ErrInvalidPlanDate
	}
	return s.planRepo.DatesInRange(ctx, userID, from, to)
}

// splitIngredients turns the comma separated entry form field into a clean
// list, dropping empty segments.
func splitIngredients(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ingredients := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return ingredients
}

// bulletRecipe prefixes each non-empty recipe line with a bullet, skipping
// lines that already carry one.
func bulletRecipe(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "• ") {
			trimmed = "• " + trimmed
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
