package api

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/Aman-1313/fitealthy/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Object key prefixes per upload kind.
const (
	postImagePrefix = "images"
	chatMediaPrefix = "chat_media"
)

// UploadHandler hands out presigned URLs so clients upload media straight
// to object storage.
type UploadHandler struct {
	fileStorage storage.FileStorage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(fileStorage storage.FileStorage) *UploadHandler {
	return &UploadHandler{fileStorage: fileStorage}
}

type PresignUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type PresignUploadResponse struct {
	UploadURL   string `json:"uploadUrl"`
	DownloadURL string `json:"downloadUrl"`
	ObjectKey   string `json:"objectKey"`
}

// PresignPostImage issues upload and download URLs for a post image.
func (h *UploadHandler) PresignPostImage(c *gin.Context) {
	h.presign(c, postImagePrefix)
}

// PresignChatMedia issues upload and download URLs for a chat attachment.
func (h *UploadHandler) PresignChatMedia(c *gin.Context) {
	h.presign(c, chatMediaPrefix)
}

func (h *UploadHandler) presign(c *gin.Context, prefix string) {
	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	// Random keys keep uploads from clobbering each other; the original
	// extension is preserved so content sniffing stays sane.
	ext := strings.ToLower(path.Ext(req.FileName))
	objectKey := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)

	ctx := c.Request.Context()
	uploadURL, err := h.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}
	downloadURL, err := h.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL")
		return
	}

	c.JSON(http.StatusOK, PresignUploadResponse{
		UploadURL:   uploadURL,
		DownloadURL: downloadURL,
		ObjectKey:   objectKey,
	})
}
