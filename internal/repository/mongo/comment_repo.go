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

const commentCollectionName = "comments"

// mongoCommentRepository implements repository.CommentRepository
type mongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new Comment repository backed by MongoDB.
func NewMongoCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &mongoCommentRepository{
		collection: db.Collection(commentCollectionName),
	}
}

// Create appends a comment to a post's thread.
func (r *mongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error) {
	if comment.PostID == primitive.NilObjectID || comment.Text == "" {
		return primitive.NilObjectID, errors.New("post ID and comment text are required")
	}

	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// ListByPost retrieves a post's comments oldest first.
func (r *mongoCommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error) {
	var comments []domain.Comment
	filter := bson.M{"postId": postID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteByPost removes every comment of a post. Used when the post itself
// is deleted.
func (r *mongoCommentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"postId": postID})
	return err
}

// EnsureCommentIndexes creates necessary indexes for the comments collection.
func EnsureCommentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
