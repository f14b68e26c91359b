package service

import (
	"context"
	"testing"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/health"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateProfile_FiltersProtectedFields(t *testing.T) {
	userRepo := new(UserRepoMock)
	svc := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("UpdateProfile", mock.Anything, userID, map[string]interface{}{
		"weight": 72,
	}).Return(nil)

	err := svc.UpdateProfile(context.Background(), userID, map[string]interface{}{
		"weight":       72,
		"hasPaidPlan":  true,
		"passwordHash": "owned",
	})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUpdateProfile_NothingToUpdate(t *testing.T) {
	svc := NewUserService(new(UserRepoMock))

	err := svc.UpdateProfile(context.Background(), primitive.NewObjectID(), map[string]interface{}{
		"hasPaidPlan": true,
	})
	assert.Error(t, err)
}

func TestHealthStatsFor_CompleteProfile(t *testing.T) {
	userRepo := new(UserRepoMock)
	svc := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:            userID,
		Height:        175,
		Weight:        70,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "moderate",
	}, nil)

	stats, err := svc.HealthStatsFor(context.Background(), userID)
	require.NoError(t, err)

	assert.InDelta(t, 22.86, stats.BMI, 0.01)
	assert.Equal(t, health.NormalWeight, stats.BMICategory)
	assert.Greater(t, stats.DailyCalories, 2000.0)
}

func TestBodyFatFor_UsesProfileGenderAndHeight(t *testing.T) {
	userRepo := new(UserRepoMock)
	svc := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:     userID,
		Height: 175,
		Gender: "male",
	}, nil)

	percent, err := svc.BodyFatFor(context.Background(), userID, 85)
	require.NoError(t, err)
	assert.InDelta(t, 45.6, percent, 0.5)
}

func TestBodyFatFor_MissingProfile(t *testing.T) {
	userRepo := new(UserRepoMock)
	svc := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)

	_, err := svc.BodyFatFor(context.Background(), userID, 85)
	assert.Error(t, err)
}

func TestHealthStatsFor_IncompleteProfile(t *testing.T) {
	userRepo := new(UserRepoMock)
	svc := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)

	_, err := svc.HealthStatsFor(context.Background(), userID)
	assert.Error(t, err)
}
