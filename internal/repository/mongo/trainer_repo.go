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

const trainerCollectionName = "trainers"

// mongoTrainerRepository implements repository.TrainerRepository
type mongoTrainerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainerRepository creates a new Trainer repository backed by MongoDB.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

// Create inserts a new trainer into the database.
func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	if trainer.Email == "" || trainer.PasswordHash == "" || trainer.Name == "" {
		return primitive.NilObjectID, errors.New("trainer email, name and password hash are required")
	}
	if trainer.TrainerType == "" {
		trainer.TrainerType = domain.TrainerTypeFitness
	}

	trainer.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, trainer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByEmail retrieves a trainer by their email address.
func (r *mongoTrainerRepository) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// GetByID retrieves a trainer by their MongoDB ObjectID.
func (r *mongoTrainerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// List retrieves all trainers, newest first.
func (r *mongoTrainerRepository) List(ctx context.Context) ([]domain.Trainer, error) {
	return r.find(ctx, bson.M{})
}

// ListByType retrieves all trainers of the given type (e.g. dietitians).
func (r *mongoTrainerRepository) ListByType(ctx context.Context, trainerType domain.TrainerType) ([]domain.Trainer, error) {
	return r.find(ctx, bson.M{"trainerType": trainerType})
}

func (r *mongoTrainerRepository) find(ctx context.Context, filter bson.M) ([]domain.Trainer, error) {
	var trainers []domain.Trainer
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// UpdateProfile sets the given public profile fields on the trainer document.
func (r *mongoTrainerRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddClient adds the user to both membership sets. $addToSet keeps both
// lists duplicate-free when a client re-books the same trainer.
func (r *mongoTrainerRepository) AddClient(ctx context.Context, trainerID, clientID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{
			"clients":        clientID,
			"currentClients": clientID,
		},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": trainerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RemoveCurrentClient drops the user from the trainer's active set only.
// Permanent membership in "clients" is kept.
func (r *mongoTrainerRepository) RemoveCurrentClient(ctx context.Context, trainerID, clientID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"currentClients": clientID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": trainerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddRating replaces the running average and count in one update. The new
// values are computed by the service from the current document.
func (r *mongoTrainerRepository) AddRating(ctx context.Context, trainerID primitive.ObjectID, rating float64, count int) error {
	update := bson.M{
		"$set": bson.M{
			"rating":      rating,
			"ratingCount": count,
			"updatedAt":   time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": trainerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTrainerIndexes creates necessary indexes for the trainers collection.
func EnsureTrainerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "trainerType", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
