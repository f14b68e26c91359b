package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"
	"github.com/Aman-1313/fitealthy/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostOwner  = errors.New("only the author can modify this post")
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrEmptyPostBody = errors.New("post description cannot be empty")
	ErrEmptyComment  = errors.New("comment text cannot be empty")
)

// FollowState is the result of a follow toggle plus the current counters.
type FollowState struct {
	Following      bool  `json:"following"`
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
}

// CommunityService covers the social feed: posts, likes, comments, and the
// follow graph.
type CommunityService interface {
	CreatePost(ctx context.Context, userID primitive.ObjectID, description, imageURL, imageKey string, category domain.PostCategory) (*domain.Post, error)
	Feed(ctx context.Context, category domain.PostCategory) ([]domain.Post, error)
	PostsByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error)
	UpdatePost(ctx context.Context, postID, userID primitive.ObjectID, description, imageURL string, category domain.PostCategory) error
	DeletePost(ctx context.Context, postID, userID primitive.ObjectID) error
	LikePost(ctx context.Context, postID, userID primitive.ObjectID) error

	AddComment(ctx context.Context, postID, userID primitive.ObjectID, username, text string) (*domain.Comment, error)
	Comments(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error)

	ToggleFollow(ctx context.Context, followerID, followeeID primitive.ObjectID) (*FollowState, error)
	IsFollowing(ctx context.Context, followerID, followeeID primitive.ObjectID) (bool, error)
	FollowCounts(ctx context.Context, userID primitive.ObjectID) (followers, following int64, err error)
	Following(ctx context.Context, followerID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type communityService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewCommunityService creates a new instance of communityService.
func NewCommunityService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, followRepo repository.FollowRepository, userRepo repository.UserRepository, fileStorage storage.FileStorage) CommunityService {
	return &communityService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// CreatePost creates a feed entry, denormalizing the author's current
// username and profile picture into it.
func (s *communityService) CreatePost(ctx context.Context, userID primitive.ObjectID, description, imageURL, imageKey string, category domain.PostCategory) (*domain.Post, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyPostBody
	}
	if category != domain.CategoryDiet && category != domain.CategoryGeneral {
		category = domain.CategoryGeneral
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	post := &domain.Post{
		UserID:      userID,
		Username:    user.Username,
		ProfilePic:  user.ProfileImage,
		Description: description,
		ImageURL:    imageURL,
		ImageKey:    imageKey,
		Category:    category,
		Likes:       []primitive.ObjectID{},
	}

	postID, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = postID
	return post, nil
}

// Feed lists posts newest first, optionally restricted to one category.
func (s *communityService) Feed(ctx context.Context, category domain.PostCategory) ([]domain.Post, error) {
	if category == "" {
		return s.postRepo.List(ctx)
	}
	return s.postRepo.ListByCategory(ctx, category)
}

func (s *communityService) PostsByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	return s.postRepo.ListByUser(ctx, userID)
}

// UpdatePost edits a post after checking the caller is its author.
func (s *communityService) UpdatePost(ctx context.Context, postID, userID primitive.ObjectID, description, imageURL string, category domain.PostCategory) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyPostBody
	}
	post, err := s.ownedPost(ctx, postID, userID)
	if err != nil {
		return err
	}
	if category == "" {
		category = post.Category
	}
	return s.postRepo.Update(ctx, postID, description, imageURL, category)
}

// DeletePost removes a post, its comments, and its image object. Only the
// author may delete.
func (s *communityService) DeletePost(ctx context.Context, postID, userID primitive.ObjectID) error {
	post, err := s.ownedPost(ctx, postID, userID)
	if err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	// Comments of a deleted post are orphaned otherwise.
	if err := s.commentRepo.DeleteByPost(ctx, postID); err != nil {
		return err
	}
	if post.ImageKey != "" {
		return s.fileStorage.DeleteObject(ctx, post.ImageKey)
	}
	return nil
}

// LikePost adds the user to the post's like set. Liking twice is a no-op.
func (s *communityService) LikePost(ctx context.Context, postID, userID primitive.ObjectID) error {
	err := s.postRepo.AddLike(ctx, postID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func (s *communityService) AddComment(ctx context.Context, postID, userID primitive.ObjectID, username, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   postID,
		UserID:   userID,
		Username: username,
		Text:     text,
	}
	commentID, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = commentID
	return comment, nil
}

func (s *communityService) Comments(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// ToggleFollow flips the follow edge between two users and returns the
// resulting state with fresh counters.
func (s *communityService) ToggleFollow(ctx context.Context, followerID, followeeID primitive.ObjectID) (*FollowState, error) {
	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	exists, err := s.followRepo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	if exists {
		if err := s.followRepo.Delete(ctx, followerID, followeeID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	} else {
		follow := &domain.Follow{FollowerID: followerID, FolloweeID: followeeID}
		if err := s.followRepo.Create(ctx, follow); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			// A concurrent toggle may have created the edge first; the
			// unique index makes that harmless.
			return nil, err
		}
	}

	followers, err := s.followRepo.CountFollowers(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, followerID)
	if err != nil {
		return nil, err
	}

	return &FollowState{
		Following:      !exists,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}

// IsFollowing reports whether the follow edge exists.
func (s *communityService) IsFollowing(ctx context.Context, followerID, followeeID primitive.ObjectID) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followeeID)
}

func (s *communityService) FollowCounts(ctx context.Context, userID primitive.ObjectID) (int64, int64, error) {
	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}

func (s *communityService) Following(ctx context.Context, followerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return s.followRepo.ListFollowing(ctx, followerID)
}

func (s *communityService) ownedPost(ctx context.Context, postID, userID primitive.ObjectID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}
	return post, nil
}
