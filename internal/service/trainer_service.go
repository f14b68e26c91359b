package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrTrainerNotFound  = errors.New("trainer not found")
	ErrPlanOptionMissed = errors.New("paid plan has no such duration")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrPaidPlanNotFound = errors.New("paid plan not found")
	ErrNoCheckoutURL    = errors.New("no checkout page configured for this duration")
)

// TrainerService covers trainer discovery, ratings, and plan booking.
type TrainerService interface {
	GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
	ListTrainersByType(ctx context.Context, trainerType domain.TrainerType) ([]domain.Trainer, error)
	SearchTrainers(ctx context.Context, query string) ([]domain.Trainer, error)
	RateTrainer(ctx context.Context, trainerID primitive.ObjectID, rating float64) (*domain.Trainer, error)
	UpdateTrainerProfile(ctx context.Context, trainerID primitive.ObjectID, fields map[string]interface{}) error
	ListClients(ctx context.Context, trainerID primitive.ObjectID, currentOnly bool) ([]domain.User, error)

	ListPaidPlans(ctx context.Context) ([]domain.PaidPlan, error)
	// CheckoutURL returns the hosted checkout page for one plan duration.
	// Booking is finalized separately once the checkout callback reports
	// completion.
	CheckoutURL(ctx context.Context, planID primitive.ObjectID, weeks int) (string, error)
	BookPlan(ctx context.Context, userID, trainerID, planID primitive.ObjectID, weeks int) error
}

type trainerService struct {
	trainerRepo  repository.TrainerRepository
	userRepo     repository.UserRepository
	paidPlanRepo repository.PaidPlanRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainerRepo repository.TrainerRepository, userRepo repository.UserRepository, paidPlanRepo repository.PaidPlanRepository) TrainerService {
	return &trainerService{
		trainerRepo:  trainerRepo,
		userRepo:     userRepo,
		paidPlanRepo: paidPlanRepo,
	}
}

func (s *trainerService) GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	trainer.PasswordHash = ""
	return trainer, nil
}

func (s *trainerService) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	trainers, err := s.trainerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stripTrainerHashes(trainers)
	return trainers, nil
}

func (s *trainerService) ListTrainersByType(ctx context.Context, trainerType domain.TrainerType) ([]domain.Trainer, error) {
	trainers, err := s.trainerRepo.ListByType(ctx, trainerType)
	if err != nil {
		return nil, err
	}
	stripTrainerHashes(trainers)
	return trainers, nil
}

// SearchTrainers filters by case-insensitive substring match on the
// trainer name.
func (s *trainerService) SearchTrainers(ctx context.Context, query string) ([]domain.Trainer, error) {
	trainers, err := s.trainerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		stripTrainerHashes(trainers)
		return trainers, nil
	}
	matched := make([]domain.Trainer, 0, len(trainers))
	for _, trainer := range trainers {
		if strings.Contains(strings.ToLower(trainer.Name), query) {
			trainer.PasswordHash = ""
			matched = append(matched, trainer)
		}
	}
	return matched, nil
}

// RateTrainer folds one new rating into the trainer's running average.
func (s *trainerService) RateTrainer(ctx context.Context, trainerID primitive.ObjectID, rating float64) (*domain.Trainer, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	newCount := trainer.RatingCount + 1
	newRating := (trainer.Rating*float64(trainer.RatingCount) + rating) / float64(newCount)
	if err := s.trainerRepo.AddRating(ctx, trainerID, newRating, newCount); err != nil {
		return nil, err
	}

	trainer.Rating = newRating
	trainer.RatingCount = newCount
	trainer.PasswordHash = ""
	return trainer, nil
}

func (s *trainerService) UpdateTrainerProfile(ctx context.Context, trainerID primitive.ObjectID, fields map[string]interface{}) error {
	err := s.trainerRepo.UpdateProfile(ctx, trainerID, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTrainerNotFound
	}
	return err
}

// ListClients resolves the trainer's client roster. With currentOnly set,
// only active assignments are returned.
func (s *trainerService) ListClients(ctx context.Context, trainerID primitive.ObjectID, currentOnly bool) ([]domain.User, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	ids := trainer.Clients
	if currentOnly {
		ids = trainer.CurrentClients
	}
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *trainerService) ListPaidPlans(ctx context.Context) ([]domain.PaidPlan, error) {
	return s.paidPlanRepo.List(ctx)
}

func (s *trainerService) CheckoutURL(ctx context.Context, planID primitive.ObjectID, weeks int) (string, error) {
	plan, err := s.paidPlanRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrPaidPlanNotFound
		}
		return "", err
	}
	duration, ok := plan.DurationFor(weeks)
	if !ok {
		return "", ErrPlanOptionMissed
	}
	if duration.CheckoutURL == "" {
		return "", ErrNoCheckoutURL
	}
	return duration.CheckoutURL, nil
}

// BookPlan attaches a user to a trainer under a paid plan. The user's
// previous trainer, if different, loses the user from its active roster;
// the new trainer gains the user on both rosters.
func (s *trainerService) BookPlan(ctx context.Context, userID, trainerID, planID primitive.ObjectID, weeks int) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}

	plan, err := s.paidPlanRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaidPlanNotFound
		}
		return err
	}
	duration, ok := plan.DurationFor(weeks)
	if !ok {
		return ErrPlanOptionMissed
	}

	// 1. Detach from the previous trainer's active roster. Permanent
	// membership in clients is kept.
	if prev := user.AssignedTrainer; prev != nil && *prev != trainerID {
		if err := s.trainerRepo.RemoveCurrentClient(ctx, *prev, userID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}

	// 2. Attach to the new trainer.
	if err := s.trainerRepo.AddClient(ctx, trainerID, userID); err != nil {
		return err
	}

	// 3. Record the booking on the user.
	selected := domain.SelectedPlan{
		PlanID:   planID,
		Duration: duration.Weeks,
		Price:    duration.Price,
	}
	return s.userRepo.SetBooking(ctx, userID, trainerID, selected)
}

func stripTrainerHashes(trainers []domain.Trainer) {
	for i := range trainers {
		trainers[i].PasswordHash = ""
	}
}
