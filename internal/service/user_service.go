package service

import (
	"context"
	"errors"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/health"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUserNotFound = errors.New("user not found")

// HealthStats bundles the derived health numbers for a user profile.
type HealthStats struct {
	BMI           float64            `json:"bmi"`
	BMICategory   health.BMICategory `json:"bmiCategory"`
	DailyCalories float64            `json:"dailyCalories"`
}

// UserService manages client profiles and profile-derived health stats.
type UserService interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	HealthStatsFor(ctx context.Context, id primitive.ObjectID) (*HealthStats, error)
	// BodyFatFor estimates body fat from the stored profile plus a waist
	// measurement, which isn't part of the profile.
	BodyFatFor(ctx context.Context, id primitive.ObjectID, waistCm float64) (float64, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// allowed profile fields for partial updates
var profileFields = map[string]bool{
	"height":        true,
	"weight":        true,
	"age":           true,
	"gender":        true,
	"activityLevel": true,
	"fitnessGoal":   true,
	"heardAboutApp": true,
	"profileImage":  true,
	"username":      true,
}

// UpdateProfile applies a partial update limited to profile fields, so a
// crafted payload can't touch booking state or credentials.
func (s *userService) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	filtered := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if profileFields[key] {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return errors.New("no updatable fields in request")
	}
	err := s.userRepo.UpdateProfile(ctx, id, filtered)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// HealthStatsFor derives BMI and daily calorie needs from the stored
// profile. The profile form must be complete first.
func (s *userService) HealthStatsFor(ctx context.Context, id primitive.ObjectID) (*HealthStats, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	bmi, err := health.BMI(float64(user.Weight), float64(user.Height))
	if err != nil {
		return nil, errors.New("profile is missing height or weight")
	}

	calories, err := health.DailyCalories(user.Gender, float64(user.Weight), float64(user.Height), user.Age, user.ActivityLevel)
	if err != nil {
		return nil, errors.New("profile is missing gender, age or activity level")
	}

	return &HealthStats{
		BMI:           bmi,
		BMICategory:   health.ClassifyBMI(bmi),
		DailyCalories: calories,
	}, nil
}

func (s *userService) BodyFatFor(ctx context.Context, id primitive.ObjectID, waistCm float64) (float64, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	percent, err := health.BodyFatPercent(user.Gender, float64(user.Height), waistCm)
	if err != nil {
		return 0, errors.New("profile is missing gender or height, or waist is invalid")
	}
	return percent, nil
}
