package posts

import (
	"time"

	"github.com/google/uuid"
)

// MaxTags bounds the number of tags a single post may carry.
const MaxTags = 50

// Post represents a post row with its denormalized aggregates.
// ReactionsCount and CommentsCount are maintained by atomic in-database
// increments, never by read-modify-write at the application layer.
type Post struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	PublishDate    time.Time `json:"publishDate" db:"publish_date"`
	Title          string    `json:"title" db:"title"`
	PostText       string    `json:"postText" db:"post_text"`
	Tags           []string  `json:"tags,omitempty" db:"tags"`
	ID             uuid.UUID `json:"id" db:"id"`
	AuthorID       uuid.UUID `json:"authorId" db:"author_id"`
	ReactionsCount int       `json:"reactionsCount" db:"reactions_count"`
	CommentsCount  int       `json:"commentsCount" db:"comments_count"`
	IsBlocked      bool      `json:"isBlocked" db:"is_blocked"`
	IsDeleted      bool      `json:"isDeleted" db:"is_deleted"`
	MyReaction     bool      `json:"myReaction" db:"my_reaction"`
}

// CreatePostRequest represents input for creating a new post.
// The author is never taken from the body; it comes from the
// authenticated caller.
type CreatePostRequest struct {
	PublishDate *time.Time `json:"publishDate,omitempty"`
	Title       string     `json:"title"`
	PostText    string     `json:"postText"`
	Tags        []string   `json:"tags,omitempty"`
}

// Validate checks the request at the service boundary.
func (r CreatePostRequest) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	if r.PostText == "" {
		return ErrTextRequired
	}
	if len(r.Tags) > MaxTags {
		return ErrTooManyTags
	}
	return nil
}

// UpdatePostRequest represents input for updating an existing post.
// Nil fields are left untouched (merge semantics).
type UpdatePostRequest struct {
	Title       *string    `json:"title,omitempty"`
	PostText    *string    `json:"postText,omitempty"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Validate checks the request at the service boundary.
func (r UpdatePostRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return ErrTitleRequired
	}
	if r.PostText != nil && *r.PostText == "" {
		return ErrTextRequired
	}
	if len(r.Tags) > MaxTags {
		return ErrTooManyTags
	}
	return nil
}
