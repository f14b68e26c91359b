package service

import (
	"context"
	"testing"
	"time"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestChatID_Deterministic(t *testing.T) {
	userID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()

	id := domain.ChatID(userID, trainerID)
	assert.Equal(t, userID.Hex()+"_"+trainerID.Hex(), id)
	assert.Equal(t, id, domain.ChatID(userID, trainerID))
}

func TestSendMessage_ValidatesPayloadByType(t *testing.T) {
	userID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()
	chatID := domain.ChatID(userID, trainerID)
	chat := &domain.Chat{ID: chatID, UserID: userID, TrainerID: trainerID}

	tests := []struct {
		name    string
		input   MessageInput
		wantErr error
	}{
		{"text without body", MessageInput{Type: domain.MessageText}, ErrEmptyMessage},
		{"image without url", MessageInput{Type: domain.MessageImage}, ErrMissingMediaURL},
		{"document without url", MessageInput{Type: domain.MessageDocument, FileName: "plan.pdf"}, ErrMissingMediaURL},
		{"document without file name", MessageInput{Type: domain.MessageDocument, MediaURL: "chat_media/x.pdf"}, ErrMissingFileName},
		{"unknown type", MessageInput{Type: "voice", Text: "hi"}, ErrBadMessageType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatRepo := new(ChatRepoMock)
			chatRepo.On("GetChat", mock.Anything, chatID).Return(chat, nil)
			svc := NewChatService(chatRepo)

			_, err := svc.SendMessage(context.Background(), chatID, userID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSendMessage_RejectsNonMembers(t *testing.T) {
	userID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()
	chatID := domain.ChatID(userID, trainerID)

	chatRepo := new(ChatRepoMock)
	chatRepo.On("GetChat", mock.Anything, chatID).Return(&domain.Chat{ID: chatID, UserID: userID, TrainerID: trainerID}, nil)
	svc := NewChatService(chatRepo)

	_, err := svc.SendMessage(context.Background(), chatID, primitive.NewObjectID(), MessageInput{
		Type: domain.MessageText,
		Text: "hello",
	})
	assert.ErrorIs(t, err, ErrNotChatMember)
}

func TestSendMessage_StoresTextMessage(t *testing.T) {
	userID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()
	chatID := domain.ChatID(userID, trainerID)

	chatRepo := new(ChatRepoMock)
	chatRepo.On("GetChat", mock.Anything, chatID).Return(&domain.Chat{ID: chatID, UserID: userID, TrainerID: trainerID}, nil)
	messageID := primitive.NewObjectID()
	chatRepo.On("CreateMessage", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(messageID, nil)
	svc := NewChatService(chatRepo)

	message, err := svc.SendMessage(context.Background(), chatID, trainerID, MessageInput{
		Type: domain.MessageText,
		Text: "keep the protein up",
	})
	require.NoError(t, err)

	assert.Equal(t, messageID, message.ID)
	assert.Equal(t, chatID, message.ChatID)
	assert.Equal(t, trainerID, message.SenderID)
	assert.Equal(t, "keep the protein up", message.Text)
}

func TestMessages_DefaultsLimit(t *testing.T) {
	userID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()
	chatID := domain.ChatID(userID, trainerID)

	chatRepo := new(ChatRepoMock)
	chatRepo.On("GetChat", mock.Anything, chatID).Return(&domain.Chat{ID: chatID, UserID: userID, TrainerID: trainerID}, nil)
	chatRepo.On("ListMessages", mock.Anything, chatID, time.Time{}, defaultMessageLimit).Return([]domain.Message{}, nil)
	svc := NewChatService(chatRepo)

	_, err := svc.Messages(context.Background(), chatID, userID, time.Time{}, 0)
	require.NoError(t, err)
	chatRepo.AssertExpectations(t)
}

func TestMessages_UnknownChat(t *testing.T) {
	chatRepo := new(ChatRepoMock)
	chatRepo.On("GetChat", mock.Anything, "nope").Return(nil, repository.ErrNotFound)
	svc := NewChatService(chatRepo)

	_, err := svc.Messages(context.Background(), "nope", primitive.NewObjectID(), time.Time{}, 10)
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestMessages_RejectsNonMembers(t *testing.T) {
	userID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()
	chatID := domain.ChatID(userID, trainerID)

	chatRepo := new(ChatRepoMock)
	chatRepo.On("GetChat", mock.Anything, chatID).Return(&domain.Chat{ID: chatID, UserID: userID, TrainerID: trainerID}, nil)
	svc := NewChatService(chatRepo)

	_, err := svc.Messages(context.Background(), chatID, primitive.NewObjectID(), time.Time{}, 10)
	assert.ErrorIs(t, err, ErrNotChatMember)
	chatRepo.AssertNotCalled(t, "ListMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
