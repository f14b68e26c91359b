package repository

import (
	"context"
	"time"

	"github.com/Aman-1313/fitealthy/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with client accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	SetBooking(ctx context.Context, id, trainerID primitive.ObjectID, plan domain.SelectedPlan) error
}

// TrainerRepository defines the interface for interacting with trainer accounts.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	List(ctx context.Context) ([]domain.Trainer, error)
	ListByType(ctx context.Context, trainerType domain.TrainerType) ([]domain.Trainer, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	AddClient(ctx context.Context, trainerID, clientID primitive.ObjectID) error
	RemoveCurrentClient(ctx context.Context, trainerID, clientID primitive.ObjectID) error
	AddRating(ctx context.Context, trainerID primitive.ObjectID, rating float64, count int) error
}

// MealRepository defines the interface for the trainer-scoped meal catalog.
type MealRepository interface {
	// Upsert saves a meal under (trainerId, name). An existing entry with
	// the same name is overwritten.
	Upsert(ctx context.Context, meal *domain.Meal) error
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Meal, error)
	GetByName(ctx context.Context, trainerID primitive.ObjectID, name string) (*domain.Meal, error)
}

// DietPlanRepository defines the interface for per-date diet plans.
type DietPlanRepository interface {
	// Upsert writes the plan for (userId, date), replacing any existing
	// document at that key.
	Upsert(ctx context.Context, plan *domain.DietPlan) error
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DietPlan, error)
	// DatesInRange returns the dates in [from, to] that have a plan, in one
	// indexed query.
	DatesInRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error)
	MarkFollowed(ctx context.Context, userID primitive.ObjectID, date string) error
}

// PostRepository defines the interface for community posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error)
	ListByCategory(ctx context.Context, category domain.PostCategory) ([]domain.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, description, imageURL string, category domain.PostCategory) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AddLike adds the user to the post's like set; adding twice is a no-op.
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) error
}

// CommentRepository defines the interface for post comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error)
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error)
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) error
}

// FollowRepository defines the interface for the follow graph.
type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	Delete(ctx context.Context, followerID, followeeID primitive.ObjectID) error
	Exists(ctx context.Context, followerID, followeeID primitive.ObjectID) (bool, error)
	CountFollowers(ctx context.Context, userID primitive.ObjectID) (int64, error)
	CountFollowing(ctx context.Context, userID primitive.ObjectID) (int64, error)
	ListFollowing(ctx context.Context, followerID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// ChatRepository defines the interface for chats and their messages.
type ChatRepository interface {
	// EnsureChat creates the chat document if it doesn't exist yet and
	// returns its deterministic id.
	EnsureChat(ctx context.Context, userID, trainerID primitive.ObjectID) (string, error)
	GetChat(ctx context.Context, chatID string) (*domain.Chat, error)
	CreateMessage(ctx context.Context, message *domain.Message) (primitive.ObjectID, error)
	ListMessages(ctx context.Context, chatID string, since time.Time, limit int64) ([]domain.Message, error)
}

// PaidPlanRepository defines the interface for purchasable plans.
type PaidPlanRepository interface {
	List(ctx context.Context) ([]domain.PaidPlan, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PaidPlan, error)
}
