package mongo

import (
	"context"
	"errors"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const paidPlanCollectionName = "paid_plans"

// mongoPaidPlanRepository implements repository.PaidPlanRepository.
// Plans are seeded out of band; the app only reads them.
type mongoPaidPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPaidPlanRepository creates a new PaidPlan repository backed by MongoDB.
func NewMongoPaidPlanRepository(db *mongo.Database) repository.PaidPlanRepository {
	return &mongoPaidPlanRepository{
		collection: db.Collection(paidPlanCollectionName),
	}
}

// List retrieves every purchasable plan.
func (r *mongoPaidPlanRepository) List(ctx context.Context) ([]domain.PaidPlan, error) {
	var plans []domain.PaidPlan
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetByID retrieves a plan by its ID.
func (r *mongoPaidPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PaidPlan, error) {
	var plan domain.PaidPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}
