package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatHandler serves user/trainer conversations.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// --- Request Structs ---

type OpenChatRequest struct {
	UserID    string `json:"userId" binding:"required"`
	TrainerID string `json:"trainerId" binding:"required"`
}

type SendMessageRequest struct {
	Type     domain.MessageType `json:"type" binding:"required,oneof=text image document"`
	Text     string             `json:"text"`
	MediaURL string             `json:"mediaUrl"`
	FileName string             `json:"fileName"`
}

// --- Handler Methods ---

// OpenChat returns the chat id for a user/trainer pair, creating the
// conversation on first use. The caller must be one of the two members.
func (h *ChatHandler) OpenChat(c *gin.Context) {
	callerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req OpenChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}
	trainerID, err := primitive.ObjectIDFromHex(req.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}
	if callerID != userID && callerID != trainerID {
		abortWithError(c, http.StatusForbidden, "Caller is not part of this chat")
		return
	}

	chatID, err := h.chatService.OpenChat(c.Request.Context(), userID, trainerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to open chat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"chatId": chatID})
}

// SendMessage posts one message into a chat.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	senderID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), c.Param("chatId"), senderID, service.MessageInput{
		Type:     req.Type,
		Text:     req.Text,
		MediaURL: req.MediaURL,
		FileName: req.FileName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChatNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotChatMember):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrEmptyMessage),
			errors.Is(err, service.ErrMissingMediaURL),
			errors.Is(err, service.ErrMissingFileName),
			errors.Is(err, service.ErrBadMessageType):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}
	c.JSON(http.StatusCreated, message)
}

// GetMessages lists a chat's messages in send order. ?since= (RFC 3339)
// limits to newer messages; ?limit= caps the page size.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	callerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var since time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Query parameter 'since' must be RFC 3339")
			return
		}
		since = parsed
	}

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			abortWithError(c, http.StatusBadRequest, "Query parameter 'limit' must be a non-negative integer")
			return
		}
		limit = parsed
	}

	messages, err := h.chatService.Messages(c.Request.Context(), c.Param("chatId"), callerID, since, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChatNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotChatMember):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch messages")
		}
		return
	}
	c.JSON(http.StatusOK, messages)
}
