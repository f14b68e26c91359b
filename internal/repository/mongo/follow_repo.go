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

const followCollectionName = "follows"

// mongoFollowRepository implements repository.FollowRepository.
// One document per relationship keeps follow/unfollow atomic; the unique
// (followerId, followeeId) index guards against double-follows.
type mongoFollowRepository struct {
	collection *mongo.Collection
}

// NewMongoFollowRepository creates a new Follow repository backed by MongoDB.
func NewMongoFollowRepository(db *mongo.Database) repository.FollowRepository {
	return &mongoFollowRepository{
		collection: db.Collection(followCollectionName),
	}
}

// Create inserts the relationship. Creating an existing edge returns
// ErrDuplicate rather than a second document.
func (r *mongoFollowRepository) Create(ctx context.Context, follow *domain.Follow) error {
	if follow.FollowerID == primitive.NilObjectID || follow.FolloweeID == primitive.NilObjectID {
		return errors.New("follower and followee IDs are required")
	}
	if follow.FollowerID == follow.FolloweeID {
		return errors.New("users cannot follow themselves")
	}

	follow.ID = primitive.NewObjectID()
	follow.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, follow)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes the relationship.
func (r *mongoFollowRepository) Delete(ctx context.Context, followerID, followeeID primitive.ObjectID) error {
	filter := bson.M{"followerId": followerID, "followeeId": followeeID}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Exists reports whether follower already follows followee.
func (r *mongoFollowRepository) Exists(ctx context.Context, followerID, followeeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"followerId": followerID, "followeeId": followeeID}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountFollowers counts edges pointing at the user.
func (r *mongoFollowRepository) CountFollowers(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"followeeId": userID})
}

// CountFollowing counts edges originating from the user.
func (r *mongoFollowRepository) CountFollowing(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"followerId": userID})
}

// ListFollowing returns the IDs the user follows.
func (r *mongoFollowRepository) ListFollowing(ctx context.Context, followerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"followerId": followerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var edges []domain.Follow
	if err = cursor.All(ctx, &edges); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(edges))
	for i, e := range edges {
		ids[i] = e.FolloweeID
	}
	return ids, nil
}

// EnsureFollowIndexes creates necessary indexes for the follows collection.
func EnsureFollowIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "followerId", Value: 1}, {Key: "followeeId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Reverse index serves follower counts and listings.
			Keys:    bson.D{{Key: "followeeId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
