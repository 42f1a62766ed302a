package comments

import (
	"time"

	"github.com/google/uuid"
)

// MaxImagePathLen bounds the stored image path length.
const MaxImagePathLen = 512

// CommentType tells whether a comment sits directly under a post or
// replies to another comment. It is derived from the parent reference,
// never settable on its own.
type CommentType string

const (
	// TypePost marks a top-level comment attached directly to a post
	TypePost CommentType = "POST"

	// TypeComment marks a reply to another comment
	TypeComment CommentType = "COMMENT"
)

// TypeOf derives the comment type from the parent reference.
func TypeOf(parentCommentID *uuid.UUID) CommentType {
	if parentCommentID != nil {
		return TypeComment
	}
	return TypePost
}

// Comment represents a threaded comment row. LikeAmount and
// CommentsCount are denormalized aggregates maintained by atomic
// in-database increments.
type Comment struct {
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
	CommentText     string      `json:"commentText" db:"comment_text"`
	ImagePath       string      `json:"imagePath,omitempty" db:"image_path"`
	CommentType     CommentType `json:"commentType" db:"-"`
	ParentCommentID *uuid.UUID  `json:"parentId,omitempty" db:"parent_comment_id"`
	ID              uuid.UUID   `json:"id" db:"id"`
	PostID          uuid.UUID   `json:"postId" db:"post_id"`
	AuthorID        uuid.UUID   `json:"authorId" db:"author_id"`
	LikeAmount      int         `json:"likeAmount" db:"like_amount"`
	CommentsCount   int         `json:"commentsCount" db:"comments_count"`
	IsBlocked       bool        `json:"isBlocked" db:"is_blocked"`
	IsDeleted       bool        `json:"isDeleted" db:"is_deleted"`
	MyLike          bool        `json:"myLike" db:"my_like"`
}

// CreateCommentRequest contains parameters for creating a comment.
// Client-supplied id, flags, and counters are ignored; the server
// controls all of them.
type CreateCommentRequest struct {
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	CommentText string     `json:"commentText"`
	ImagePath   string     `json:"imagePath,omitempty"`
}

// Validate checks the request at the service boundary.
func (r CreateCommentRequest) Validate() error {
	if r.CommentText == "" {
		return ErrTextRequired
	}
	if len(r.ImagePath) > MaxImagePathLen {
		return ErrImagePathTooLong
	}
	return nil
}

// UpdateCommentRequest contains parameters for updating a comment.
// ID must match the path id. ParentID/PostID, when present and
// different, re-parent or re-assign the comment after the target is
// verified to exist. UpdatedAt defaults to now when not supplied.
type UpdateCommentRequest struct {
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	PostID      *uuid.UUID `json:"postId,omitempty"`
	CommentText string     `json:"commentText"`
	ImagePath   string     `json:"imagePath,omitempty"`
	ID          uuid.UUID  `json:"id"`
}

// Validate checks the request at the service boundary.
func (r UpdateCommentRequest) Validate() error {
	if r.CommentText == "" {
		return ErrTextRequired
	}
	if len(r.ImagePath) > MaxImagePathLen {
		return ErrImagePathTooLong
	}
	return nil
}
