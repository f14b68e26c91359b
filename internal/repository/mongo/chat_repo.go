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

const (
	chatCollectionName    = "chats"
	messageCollectionName = "messages"
)

// mongoChatRepository implements repository.ChatRepository
type mongoChatRepository struct {
	chats    *mongo.Collection
	messages *mongo.Collection
}

// NewMongoChatRepository creates a new Chat repository backed by MongoDB.
func NewMongoChatRepository(db *mongo.Database) repository.ChatRepository {
	return &mongoChatRepository{
		chats:    db.Collection(chatCollectionName),
		messages: db.Collection(messageCollectionName),
	}
}

// EnsureChat creates the chat document on first contact. The deterministic
// "{userId}_{trainerId}" key makes the upsert idempotent, so concurrent
// first messages from both sides land in the same conversation.
func (r *mongoChatRepository) EnsureChat(ctx context.Context, userID, trainerID primitive.ObjectID) (string, error) {
	if userID == primitive.NilObjectID || trainerID == primitive.NilObjectID {
		return "", errors.New("user ID and trainer ID are required")
	}

	chatID := domain.ChatID(userID, trainerID)
	update := bson.M{
		"$setOnInsert": bson.M{
			"userId":    userID,
			"trainerId": trainerID,
			"createdAt": time.Now().UTC(),
		},
	}

	_, err := r.chats.UpdateByID(ctx, chatID, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", err
	}
	return chatID, nil
}

// GetChat retrieves a chat by its deterministic id.
func (r *mongoChatRepository) GetChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	var chat domain.Chat
	err := r.chats.FindOne(ctx, bson.M{"_id": chatID}).Decode(&chat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// CreateMessage appends a message to a chat.
func (r *mongoChatRepository) CreateMessage(ctx context.Context, message *domain.Message) (primitive.ObjectID, error) {
	if message.ChatID == "" || message.SenderID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("chat ID and sender ID are required")
	}

	message.ID = primitive.NewObjectID()
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	result, err := r.messages.InsertOne(ctx, message)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// ListMessages retrieves a chat's messages after the given time, ascending
// by timestamp. A zero since returns from the beginning; limit 0 means no
// limit.
func (r *mongoChatRepository) ListMessages(ctx context.Context, chatID string, since time.Time, limit int64) ([]domain.Message, error) {
	filter := bson.M{"chatId": chatID}
	if !since.IsZero() {
		filter["timestamp"] = bson.M{"$gt": since}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.messages.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []domain.Message
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// EnsureChatIndexes creates necessary indexes for the messages collection.
// Chats themselves are keyed by _id and need nothing extra.
func EnsureChatIndexes(ctx context.Context, messages *mongo.Collection) {
	_, err := messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "chatId", Value: 1}, {Key: "timestamp", Value: 1}},
			Options: options.Index(),
		},
	})
	if err != nil {
		// Non-fatal.
	}
}
