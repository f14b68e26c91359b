package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageType distinguishes the payload of a chat message.
type MessageType string

const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageDocument MessageType = "document"
)

// ChatID builds the deterministic chat key for a user/trainer pair, so the
// same pair always lands in the same conversation.
func ChatID(userID, trainerID primitive.ObjectID) string {
	return fmt.Sprintf("%s_%s", userID.Hex(), trainerID.Hex())
}

// Chat is a conversation between one client and one trainer.
type Chat struct {
	ID        string             `bson:"_id" json:"id"` // "{userId}_{trainerId}"
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Message is a single chat message. Text messages carry Text; image and
// document messages carry MediaURL (and FileName for documents).
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChatID    string             `bson:"chatId" json:"chatId"`
	SenderID  primitive.ObjectID `bson:"senderId" json:"senderId"`
	Type      MessageType        `bson:"type" json:"type"`
	Text      string             `bson:"text,omitempty" json:"text,omitempty"`
	MediaURL  string             `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	FileName  string             `bson:"fileName,omitempty" json:"fileName,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
