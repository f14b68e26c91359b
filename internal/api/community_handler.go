package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommunityHandler serves the social feed: posts, likes, comments, and the
// follow graph.
type CommunityHandler struct {
	communityService service.CommunityService
	userService      service.UserService
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(communityService service.CommunityService, userService service.UserService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService, userService: userService}
}

// --- Request Structs ---

type CreatePostRequest struct {
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	// ImageKey is the objectKey from the presign response, kept with the
	// post so deleting it can delete the object.
	ImageKey string              `json:"imageKey"`
	Category domain.PostCategory `json:"category" binding:"omitempty,oneof=Diet General"`
}

type UpdatePostRequest struct {
	Description string              `json:"description" binding:"required"`
	ImageURL    string              `json:"imageUrl"`
	Category    domain.PostCategory `json:"category" binding:"omitempty,oneof=Diet General"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// --- Posts ---

// CreatePost publishes a feed entry under the caller's identity.
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	post, err := h.communityService.CreatePost(c.Request.Context(), userID, req.Description, req.ImageURL, req.ImageKey, req.Category)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPostBody) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetFeed lists posts newest first. ?category= restricts to one category;
// ?user= lists a single author's posts.
func (h *CommunityHandler) GetFeed(c *gin.Context) {
	if userHex := c.Query("user"); userHex != "" {
		userID, err := primitive.ObjectIDFromHex(userHex)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid user ID format")
			return
		}
		posts, err := h.communityService.PostsByUser(c.Request.Context(), userID)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch posts")
			return
		}
		c.JSON(http.StatusOK, posts)
		return
	}

	posts, err := h.communityService.Feed(c.Request.Context(), domain.PostCategory(c.Query("category")))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch feed")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// UpdatePost edits one of the caller's posts.
func (h *CommunityHandler) UpdatePost(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.communityService.UpdatePost(c.Request.Context(), postID, userID, req.Description, req.ImageURL, req.Category); err != nil {
		respondCommunityError(c, err, "Failed to update post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated"})
}

// DeletePost removes one of the caller's posts and its comments.
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	if err := h.communityService.DeletePost(c.Request.Context(), postID, userID); err != nil {
		respondCommunityError(c, err, "Failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// LikePost adds the caller to the post's like set. Liking twice is a no-op.
func (h *CommunityHandler) LikePost(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	if err := h.communityService.LikePost(c.Request.Context(), postID, userID); err != nil {
		respondCommunityError(c, err, "Failed to like post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post liked"})
}

// --- Comments ---

// AddComment appends a comment to a post.
func (h *CommunityHandler) AddComment(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	// Comments carry the author's name at write time, same as posts.
	username := ""
	if user, err := h.userService.GetUser(c.Request.Context(), userID); err == nil {
		username = user.Username
	}

	comment, err := h.communityService.AddComment(c.Request.Context(), postID, userID, username, req.Text)
	if err != nil {
		respondCommunityError(c, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetComments lists a post's comments oldest first.
func (h *CommunityHandler) GetComments(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	comments, err := h.communityService.Comments(c.Request.Context(), postID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// --- Follow Graph ---

// ToggleFollow follows or unfollows the target user and returns the new
// state with fresh counters.
func (h *CommunityHandler) ToggleFollow(c *gin.Context) {
	followerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	followeeID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	state, err := h.communityService.ToggleFollow(c.Request.Context(), followerID, followeeID)
	if err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to toggle follow")
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetFollowState reports whether the caller follows the target user.
func (h *CommunityHandler) GetFollowState(c *gin.Context) {
	followerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	followeeID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	following, err := h.communityService.IsFollowing(c.Request.Context(), followerID, followeeID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch follow state")
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// GetFollowing lists the ids of the users a user follows.
func (h *CommunityHandler) GetFollowing(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	following, err := h.communityService.Following(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch following list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// GetFollowCounts returns a user's follower and following counts.
func (h *CommunityHandler) GetFollowCounts(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	followers, following, err := h.communityService.FollowCounts(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch follow counts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"followerCount": followers, "followingCount": following})
}

func respondCommunityError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotPostOwner):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrEmptyPostBody), errors.Is(err, service.ErrEmptyComment):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
