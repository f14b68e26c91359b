package service

import (
	"context"
	"testing"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSaveMeal_NormalizesRecipeAndIngredients(t *testing.T) {
	mealRepo := new(MealRepoMock)
	planRepo := new(DietPlanRepoMock)
	svc := NewDietService(mealRepo, planRepo)

	trainerID := primitive.NewObjectID()
	mealRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Meal")).Return(nil)

	meal, err := svc.SaveMeal(context.Background(), trainerID, MealInput{
		Name:        "  Oatmeal Bowl ",
		Calories:    300,
		Protein:     12,
		Carbs:       50,
		Fat:         6,
		Ingredients: "oats, milk, , honey ",
		Recipe:      "Boil the milk\n\nAdd oats\n• Stir in honey",
	})
	require.NoError(t, err)

	assert.Equal(t, "Oatmeal Bowl", meal.Name)
	assert.Equal(t, []string{"oats", "milk", "honey"}, meal.Ingredients)
	assert.Equal(t, "• Boil the milk\n• Add oats\n• Stir in honey", meal.Recipe)
	assert.Equal(t, domain.MacroUnitGrams, meal.MacroUnit)
	mealRepo.AssertExpectations(t)
}

func TestSaveMeal_RejectsEmptyName(t *testing.T) {
	svc := NewDietService(new(MealRepoMock), new(DietPlanRepoMock))

	_, err := svc.SaveMeal(context.Background(), primitive.NewObjectID(), MealInput{Name: "   "})
	assert.Error(t, err)
}

func TestFindMealsByName_CaseInsensitiveSubstring(t *testing.T) {
	mealRepo := new(MealRepoMock)
	svc := NewDietService(mealRepo, new(DietPlanRepoMock))

	trainerID := primitive.NewObjectID()
	catalog := []domain.Meal{
		{Name: "Scrambled Eggs", TrainerID: trainerID},
		{Name: "Veggie Omelette", TrainerID: trainerID},
		{Name: "EGG Salad", TrainerID: trainerID},
	}
	mealRepo.On("GetByTrainerID", mock.Anything, trainerID).Return(catalog, nil)

	meals, err := svc.FindMealsByName(context.Background(), trainerID, "egg")
	require.NoError(t, err)

	require.Len(t, meals, 2)
	assert.Equal(t, "Scrambled Eggs", meals[0].Name)
	assert.Equal(t, "EGG Salad", meals[1].Name)
}

func TestFindMealsByName_EmptyQueryReturnsAll(t *testing.T) {
	mealRepo := new(MealRepoMock)
	svc := NewDietService(mealRepo, new(DietPlanRepoMock))

	trainerID := primitive.NewObjectID()
	catalog := []domain.Meal{{Name: "A"}, {Name: "B"}}
	mealRepo.On("GetByTrainerID", mock.Anything, trainerID).Return(catalog, nil)

	meals, err := svc.FindMealsByName(context.Background(), trainerID, "  ")
	require.NoError(t, err)
	assert.Len(t, meals, 2)
}

func TestAssignPlan_WritesOnePlanPerDate(t *testing.T) {
	mealRepo := new(MealRepoMock)
	planRepo := new(DietPlanRepoMock)
	svc := NewDietService(mealRepo, planRepo)

	trainerID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	oatmeal := &domain.Meal{TrainerID: trainerID, Name: "Oatmeal", Calories: 300}
	chicken := &domain.Meal{TrainerID: trainerID, Name: "Grilled Chicken", Calories: 450}
	mealRepo.On("GetByName", mock.Anything, trainerID, "Oatmeal").Return(oatmeal, nil)
	mealRepo.On("GetByName", mock.Anything, trainerID, "Grilled Chicken").Return(chicken, nil)

	var written []*domain.DietPlan
	planRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.DietPlan")).
		Run(func(args mock.Arguments) {
			written = append(written, args.Get(1).(*domain.DietPlan))
		}).Return(nil)

	result, err := svc.AssignPlan(context.Background(), trainerID, userID,
		[]string{"2024-06-01", "2024-06-03"},
		[]PlanMealInput{{Time: "08:00", Name: "Oatmeal"}, {Time: "13:00", Name: "Grilled Chicken"}})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"2024-06-01", "2024-06-03"}, result.Assigned)
	assert.Empty(t, result.Failed)

	require.Len(t, written, 2)
	for _, plan := range written {
		assert.Equal(t, userID, plan.UserID)
		assert.Equal(t, trainerID, plan.TrainerID)
		assert.Equal(t, 750, plan.TotalCalories)
		assert.False(t, plan.Followed)
		assert.Len(t, plan.Meals, 2)
	}
}

func TestAssignPlan_AllowsRepeatedTimeSlots(t *testing.T) {
	mealRepo := new(MealRepoMock)
	planRepo := new(DietPlanRepoMock)
	svc := NewDietService(mealRepo, planRepo)

	trainerID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	toast := &domain.Meal{TrainerID: trainerID, Name: "Toast", Calories: 150}
	eggs := &domain.Meal{TrainerID: trainerID, Name: "Scrambled Eggs", Calories: 200}
	mealRepo.On("GetByName", mock.Anything, trainerID, "Toast").Return(toast, nil)
	mealRepo.On("GetByName", mock.Anything, trainerID, "Scrambled Eggs").Return(eggs, nil)

	var written *domain.DietPlan
	planRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.DietPlan")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(*domain.DietPlan)
		}).Return(nil)

	result, err := svc.AssignPlan(context.Background(), trainerID, userID,
		[]string{"2024-06-01"},
		[]PlanMealInput{{Time: "08:00", Name: "Toast"}, {Time: "08:00", Name: "Scrambled Eggs"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-01"}, result.Assigned)
	require.NotNil(t, written)
	require.Len(t, written.Meals, 2)
	assert.Equal(t, "Toast", written.Meals[0].Name)
	assert.Equal(t, "Scrambled Eggs", written.Meals[1].Name)
	assert.Equal(t, "08:00", written.Meals[0].Time)
	assert.Equal(t, "08:00", written.Meals[1].Time)
	assert.Equal(t, 350, written.TotalCalories)
}

func TestAssignPlan_MissingMealFailsBeforeAnyWrite(t *testing.T) {
	mealRepo := new(MealRepoMock)
	planRepo := new(DietPlanRepoMock)
	svc := NewDietService(mealRepo, planRepo)

	trainerID := primitive.NewObjectID()
	mealRepo.On("GetByName", mock.Anything, trainerID, "Ghost Meal").Return(nil, repository.ErrNotFound)

	_, err := svc.AssignPlan(context.Background(), trainerID, primitive.NewObjectID(),
		[]string{"2024-06-01"}, []PlanMealInput{{Time: "08:00", Name: "Ghost Meal"}})

	assert.ErrorIs(t, err, ErrMealNotFound)
	planRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAssignPlan_BadDateIsReportedNotFatal(t *testing.T) {
	mealRepo := new(MealRepoMock)
	planRepo := new(DietPlanRepoMock)
	svc := NewDietService(mealRepo, planRepo)

	trainerID := primitive.NewObjectID()
	oatmeal := &domain.Meal{TrainerID: trainerID, Name: "Oatmeal", Calories: 300}
	mealRepo.On("GetByName", mock.Anything, trainerID, "Oatmeal").Return(oatmeal, nil)
	planRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.DietPlan")).Return(nil)

	result, err := svc.AssignPlan(context.Background(), trainerID, primitive.NewObjectID(),
		[]string{"2024-06-01", "June 2nd"}, []PlanMealInput{{Time: "08:00", Name: "Oatmeal"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-01"}, result.Assigned)
	assert.Contains(t, result.Failed, "June 2nd")
}

func TestPlanForDate_NotFound(t *testing.T) {
	planRepo := new(DietPlanRepoMock)
	svc := NewDietService(new(MealRepoMock), planRepo)

	userID := primitive.NewObjectID()
	planRepo.On("GetByDate", mock.Anything, userID, "2024-06-05").Return(nil, repository.ErrNotFound)

	_, err := svc.PlanForDate(context.Background(), userID, "2024-06-05")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPlanForDate_RejectsBadDate(t *testing.T) {
	svc := NewDietService(new(MealRepoMock), new(DietPlanRepoMock))

	_, err := svc.PlanForDate(context.Background(), primitive.NewObjectID(), "05/06/2024")
	assert.ErrorIs(t, err, ErrInvalidPlanDate)
}

func TestMarkFollowed_RepeatIsHarmless(t *testing.T) {
	planRepo := new(DietPlanRepoMock)
	svc := NewDietService(new(MealRepoMock), planRepo)

	userID := primitive.NewObjectID()
	planRepo.On("MarkFollowed", mock.Anything, userID, "2024-06-01").Return(nil).Twice()

	require.NoError(t, svc.MarkFollowed(context.Background(), userID, "2024-06-01"))
	require.NoError(t, svc.MarkFollowed(context.Background(), userID, "2024-06-01"))
	planRepo.AssertExpectations(t)
}

func TestPlanDatesInRange(t *testing.T) {
	planRepo := new(DietPlanRepoMock)
	svc := NewDietService(new(MealRepoMock), planRepo)

	userID := primitive.NewObjectID()
	planRepo.On("DatesInRange", mock.Anything, userID, "2024-06-01", "2024-06-30").
		Return([]string{"2024-06-01", "2024-06-03"}, nil)

	dates, err := svc.PlanDatesInRange(context.Background(), userID, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "2024-06-03"}, dates)
}
