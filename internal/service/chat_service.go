package service

import (
	"context"
	"errors"
	"time"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrChatNotFound    = errors.New("chat not found")
	ErrNotChatMember   = errors.New("sender is not part of this chat")
	ErrEmptyMessage    = errors.New("text message needs a body")
	ErrMissingMediaURL = errors.New("media message needs a url")
	ErrBadMessageType  = errors.New("message type must be text, image or document")
	ErrMissingFileName = errors.New("document message needs a file name")
)

const defaultMessageLimit int64 = 50

// MessageInput is the client payload for sending one chat message.
type MessageInput struct {
	Type     domain.MessageType
	Text     string
	MediaURL string
	FileName string
}

// ChatService manages user/trainer conversations.
type ChatService interface {
	// OpenChat returns the chat id for a user/trainer pair, creating the
	// conversation on first use.
	OpenChat(ctx context.Context, userID, trainerID primitive.ObjectID) (string, error)
	SendMessage(ctx context.Context, chatID string, senderID primitive.ObjectID, input MessageInput) (*domain.Message, error)
	Messages(ctx context.Context, chatID string, callerID primitive.ObjectID, since time.Time, limit int64) ([]domain.Message, error)
}

type chatService struct {
	chatRepo repository.ChatRepository
}

// NewChatService creates a new instance of chatService.
func NewChatService(chatRepo repository.ChatRepository) ChatService {
	return &chatService{chatRepo: chatRepo}
}

func (s *chatService) OpenChat(ctx context.Context, userID, trainerID primitive.ObjectID) (string, error) {
	return s.chatRepo.EnsureChat(ctx, userID, trainerID)
}

// SendMessage validates the payload against its type and stores it. The
// sender must be one of the chat's two members.
func (s *chatService) SendMessage(ctx context.Context, chatID string, senderID primitive.ObjectID, input MessageInput) (*domain.Message, error) {
	chat, err := s.chatRepo.GetChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	if senderID != chat.UserID && senderID != chat.TrainerID {
		return nil, ErrNotChatMember
	}

	switch input.Type {
	case domain.MessageText:
		if input.Text == "" {
			return nil, ErrEmptyMessage
		}
	case domain.MessageImage:
		if input.MediaURL == "" {
			return nil, ErrMissingMediaURL
		}
	case domain.MessageDocument:
		if input.MediaURL == "" {
			return nil, ErrMissingMediaURL
		}
		if input.FileName == "" {
			return nil, ErrMissingFileName
		}
	default:
		return nil, ErrBadMessageType
	}

	message := &domain.Message{
		ChatID:   chatID,
		SenderID: senderID,
		Type:     input.Type,
		Text:     input.Text,
		MediaURL: input.MediaURL,
		FileName: input.FileName,
	}

	messageID, err := s.chatRepo.CreateMessage(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = messageID
	return message, nil
}

// Messages lists a chat's messages in send order, optionally only those
// after `since`. A non-positive limit falls back to the default page size.
// The caller must be one of the chat's two members.
func (s *chatService) Messages(ctx context.Context, chatID string, callerID primitive.ObjectID, since time.Time, limit int64) ([]domain.Message, error) {
	chat, err := s.chatRepo.GetChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	if callerID != chat.UserID && callerID != chat.TrainerID {
		return nil, ErrNotChatMember
	}
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	return s.chatRepo.ListMessages(ctx, chatID, since, limit)
}
