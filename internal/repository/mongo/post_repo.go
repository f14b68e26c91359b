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

const postCollectionName = "posts"

// mongoPostRepository implements repository.PostRepository
type mongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new Post repository backed by MongoDB.
func NewMongoPostRepository(db *mongo.Database) repository.PostRepository {
	return &mongoPostRepository{
		collection: db.Collection(postCollectionName),
	}
}

// Create inserts a new post into the database.
func (r *mongoPostRepository) Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if post.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("post author is required")
	}

	post.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a post by its ID.
func (r *mongoPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	var post domain.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List retrieves the global feed, newest first.
func (r *mongoPostRepository) List(ctx context.Context) ([]domain.Post, error) {
	return r.find(ctx, bson.M{})
}

// ListByUser retrieves one author's posts, newest first.
func (r *mongoPostRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// ListByCategory retrieves posts in one category, newest first.
func (r *mongoPostRepository) ListByCategory(ctx context.Context, category domain.PostCategory) ([]domain.Post, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *mongoPostRepository) find(ctx context.Context, filter bson.M) ([]domain.Post, error) {
	var posts []domain.Post
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update overwrites the editable fields of a post. Ownership is checked at
// the service layer; here only existence matters.
func (r *mongoPostRepository) Update(ctx context.Context, id primitive.ObjectID, description, imageURL string, category domain.PostCategory) error {
	update := bson.M{
		"$set": bson.M{
			"description": description,
			"imageUrl":    imageURL,
			"category":    category,
			"updatedAt":   time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a post. Hard delete.
func (r *mongoPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddLike adds the user to the post's like set. $addToSet makes the add
// idempotent: liking twice leaves the set unchanged.
func (r *mongoPostRepository) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"likes": userID},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePostIndexes creates necessary indexes for the posts collection.
func EnsurePostIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
