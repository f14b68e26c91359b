package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostCategory is the feed category of a community post.
type PostCategory string

const (
	CategoryDiet    PostCategory = "Diet"
	CategoryGeneral PostCategory = "General"
)

// Post is a community feed entry. Author identity (username, profile
// picture) is denormalized at creation time.
type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Username   string             `bson:"username" json:"username"`
	ProfilePic string             `bson:"profilePic,omitempty" json:"profilePic,omitempty"`

	Description string `bson:"description" json:"description"`
	ImageURL    string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	// ImageKey is the storage object key behind ImageURL, kept so deleting
	// the post can delete the object too.
	ImageKey string       `bson:"imageKey,omitempty" json:"imageKey,omitempty"`
	Category PostCategory `bson:"category" json:"category"`

	// Likes is a set: adds go through $addToSet so the same user never
	// counts twice. There is no unlike path.
	Likes []primitive.ObjectID `bson:"likes" json:"likes"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Comment lives in its own collection keyed by post, with a server-side
// timestamp. This is the single source of truth for comments.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Username  string             `bson:"username" json:"username"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Follow is one follower-to-followee relationship. A single document models
// the edge so creating or removing it is atomic; follower and following
// views are both index-backed queries over this collection.
type Follow struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FollowerID primitive.ObjectID `bson:"followerId" json:"followerId"`
	FolloweeID primitive.ObjectID `bson:"followeeId" json:"followeeId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
