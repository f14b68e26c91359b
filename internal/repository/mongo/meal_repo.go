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

const mealCollectionName = "meals"

// mongoMealRepository implements repository.MealRepository
type mongoMealRepository struct {
	collection *mongo.Collection
}

// NewMongoMealRepository creates a new Meal repository backed by MongoDB.
func NewMongoMealRepository(db *mongo.Database) repository.MealRepository {
	return &mongoMealRepository{
		collection: db.Collection(mealCollectionName),
	}
}

// Upsert saves the meal under (trainerId, name). Re-saving the same name
// replaces the entry in place, keeping its original _id and createdAt.
func (r *mongoMealRepository) Upsert(ctx context.Context, meal *domain.Meal) error {
	if meal.Name == "" || meal.TrainerID == primitive.NilObjectID {
		return errors.New("meal name and trainer ID are required")
	}

	now := time.Now().UTC()
	filter := bson.M{"trainerId": meal.TrainerID, "name": meal.Name}
	update := bson.M{
		"$set": bson.M{
			"calories":    meal.Calories,
			"protein":     meal.Protein,
			"carbs":       meal.Carbs,
			"fat":         meal.Fat,
			"macroUnit":   meal.MacroUnit,
			"ingredients": meal.Ingredients,
			"recipe":      meal.Recipe,
			"time":        meal.Time,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"trainerId": meal.TrainerID,
			"name":      meal.Name,
			"createdAt": now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByTrainerID retrieves the full catalog of one trainer, newest first.
func (r *mongoMealRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Meal, error) {
	var meals []domain.Meal
	filter := bson.M{"trainerId": trainerID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// GetByName retrieves a single catalog entry by its exact name.
func (r *mongoMealRepository) GetByName(ctx context.Context, trainerID primitive.ObjectID, name string) (*domain.Meal, error) {
	var meal domain.Meal
	filter := bson.M{"trainerId": trainerID, "name": name}

	err := r.collection.FindOne(ctx, filter).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// EnsureMealIndexes creates necessary indexes for the meals collection.
func EnsureMealIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// (trainerId, name) is the catalog identity.
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
