package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dietPlanCollectionName = "diet_plans"

// mongoDietPlanRepository implements repository.DietPlanRepository
type mongoDietPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoDietPlanRepository creates a new DietPlan repository backed by MongoDB.
func NewMongoDietPlanRepository(db *mongo.Database) repository.DietPlanRepository {
	return &mongoDietPlanRepository{
		collection: db.Collection(dietPlanCollectionName),
	}
}

// Upsert writes the plan for (userId, date). Last writer wins: any existing
// document at that key is replaced wholesale, including its followed flag.
func (r *mongoDietPlanRepository) Upsert(ctx context.Context, plan *domain.DietPlan) error {
	if plan.UserID == primitive.NilObjectID || plan.Date == "" {
		return errors.New("user ID and date are required")
	}
	if _, err := time.Parse(domain.PlanDateLayout, plan.Date); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": plan.UserID, "date": plan.Date}
	update := bson.M{
		"$set": bson.M{
			"trainerId":     plan.TrainerID,
			"meals":         plan.Meals,
			"totalCalories": plan.TotalCalories,
			"followed":      plan.Followed,
			"updatedAt":     now,
		},
		"$setOnInsert": bson.M{
			"userId":    plan.UserID,
			"date":      plan.Date,
			"createdAt": now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByDate retrieves the plan for one date, or ErrNotFound if none exists.
func (r *mongoDietPlanRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DietPlan, error) {
	var plan domain.DietPlan
	filter := bson.M{"userId": userID, "date": date}

	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// DatesInRange returns the dates in [from, to] that have a plan, ascending.
// One indexed query covers a whole calendar month; the date string format
// sorts lexicographically in calendar order.
func (r *mongoDietPlanRepository) DatesInRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error) {
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from, "$lte": to},
	}
	findOptions := options.Find().
		SetProjection(bson.M{"date": 1, "_id": 0}).
		SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Date string `bson:"date"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	dates := make([]string, len(docs))
	for i, d := range docs {
		dates[i] = d.Date
	}
	return dates, nil
}

// MarkFollowed sets followed=true on the plan for (userId, date). Marking an
// already-followed plan matches but modifies nothing, which is fine; a
// missing plan is ErrNotFound.
func (r *mongoDietPlanRepository) MarkFollowed(ctx context.Context, userID primitive.ObjectID, date string) error {
	filter := bson.M{"userId": userID, "date": date}
	update := bson.M{
		"$set": bson.M{
			"followed":  true,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureDietPlanIndexes creates necessary indexes for the diet_plans collection.
func EnsureDietPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// (userId, date) is the plan identity and serves the range query.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
