package service

import (
	"context"
	"time"

	"github.com/Aman-1313/fitealthy/internal/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Repository Mocks ---

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *UserRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepoMock) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepoMock) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *UserRepoMock) SetBooking(ctx context.Context, id, trainerID primitive.ObjectID, plan domain.SelectedPlan) error {
	args := m.Called(ctx, id, trainerID, plan)
	return args.Error(0)
}

type TrainerRepoMock struct {
	mock.Mock
}

func (m *TrainerRepoMock) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	args := m.Called(ctx, trainer)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *TrainerRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trainer), args.Error(1)
}

func (m *TrainerRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trainer), args.Error(1)
}

func (m *TrainerRepoMock) List(ctx context.Context) ([]domain.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trainer), args.Error(1)
}

func (m *TrainerRepoMock) ListByType(ctx context.Context, trainerType domain.TrainerType) ([]domain.Trainer, error) {
	args := m.Called(ctx, trainerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trainer), args.Error(1)
}

func (m *TrainerRepoMock) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *TrainerRepoMock) AddClient(ctx context.Context, trainerID, clientID primitive.ObjectID) error {
	args := m.Called(ctx, trainerID, clientID)
	return args.Error(0)
}

func (m *TrainerRepoMock) RemoveCurrentClient(ctx context.Context, trainerID, clientID primitive.ObjectID) error {
	args := m.Called(ctx, trainerID, clientID)
	return args.Error(0)
}

func (m *TrainerRepoMock) AddRating(ctx context.Context, trainerID primitive.ObjectID, rating float64, count int) error {
	args := m.Called(ctx, trainerID, rating, count)
	return args.Error(0)
}

type MealRepoMock struct {
	mock.Mock
}

func (m *MealRepoMock) Upsert(ctx context.Context, meal *domain.Meal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

func (m *MealRepoMock) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Meal, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Meal), args.Error(1)
}

func (m *MealRepoMock) GetByName(ctx context.Context, trainerID primitive.ObjectID, name string) (*domain.Meal, error) {
	args := m.Called(ctx, trainerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Meal), args.Error(1)
}

type DietPlanRepoMock struct {
	mock.Mock
}

func (m *DietPlanRepoMock) Upsert(ctx context.Context, plan *domain.DietPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *DietPlanRepoMock) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DietPlan, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DietPlan), args.Error(1)
}

func (m *DietPlanRepoMock) DatesInRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *DietPlanRepoMock) MarkFollowed(ctx context.Context, userID primitive.ObjectID, date string) error {
	args := m.Called(ctx, userID, date)
	return args.Error(0)
}

type PostRepoMock struct {
	mock.Mock
}

func (m *PostRepoMock) Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *PostRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *PostRepoMock) List(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostRepoMock) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostRepoMock) ListByCategory(ctx context.Context, category domain.PostCategory) ([]domain.Post, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostRepoMock) Update(ctx context.Context, id primitive.ObjectID, description, imageURL string, category domain.PostCategory) error {
	args := m.Called(ctx, id, description, imageURL, category)
	return args.Error(0)
}

func (m *PostRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PostRepoMock) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

type CommentRepoMock struct {
	mock.Mock
}

func (m *CommentRepoMock) Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *CommentRepoMock) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepoMock) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type FollowRepoMock struct {
	mock.Mock
}

func (m *FollowRepoMock) Create(ctx context.Context, follow *domain.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *FollowRepoMock) Delete(ctx context.Context, followerID, followeeID primitive.ObjectID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *FollowRepoMock) Exists(ctx context.Context, followerID, followeeID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *FollowRepoMock) CountFollowers(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FollowRepoMock) CountFollowing(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FollowRepoMock) ListFollowing(ctx context.Context, followerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

type ChatRepoMock struct {
	mock.Mock
}

func (m *ChatRepoMock) EnsureChat(ctx context.Context, userID, trainerID primitive.ObjectID) (string, error) {
	args := m.Called(ctx, userID, trainerID)
	return args.String(0), args.Error(1)
}

func (m *ChatRepoMock) GetChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *ChatRepoMock) CreateMessage(ctx context.Context, message *domain.Message) (primitive.ObjectID, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *ChatRepoMock) ListMessages(ctx context.Context, chatID string, since time.Time, limit int64) ([]domain.Message, error) {
	args := m.Called(ctx, chatID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

type PaidPlanRepoMock struct {
	mock.Mock
}

func (m *PaidPlanRepoMock) List(ctx context.Context) ([]domain.PaidPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaidPlan), args.Error(1)
}

func (m *PaidPlanRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PaidPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaidPlan), args.Error(1)
}

type FileStorageMock struct {
	mock.Mock
}

func (m *FileStorageMock) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expires)
	return args.String(0), args.Error(1)
}

func (m *FileStorageMock) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expires)
	return args.String(0), args.Error(1)
}

func (m *FileStorageMock) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}
