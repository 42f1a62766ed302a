package posts

import (
	"context"

	"github.com/google/uuid"

	"Murmur/internal/core/paging"
)

// Service defines the business logic interface for posts
type Service interface {
	// GetByID retrieves a single post, ErrPostNotFound if absent
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// Search runs the paged, filtered post search for the given caller.
	// The caller's own posts are excluded unless the criteria explicitly
	// list the caller among AccountIDs.
	Search(ctx context.Context, callerID uuid.UUID, criteria SearchCriteria, page paging.Request) (paging.Page[*Post], error)

	// Create persists a new post authored by the caller and publishes a
	// new-post notification
	Create(ctx context.Context, callerID uuid.UUID, req CreatePostRequest) (*Post, error)

	// Update merges the non-nil request fields into an existing post
	Update(ctx context.Context, id uuid.UUID, req UpdatePostRequest) (*Post, error)

	// Delete removes a post row entirely (hard delete)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository defines the data access interface for posts.
// Counter mutations are single atomic UPDATE statements in the store;
// they are exposed here so the comment and reaction services can keep
// the denormalized aggregates in step with their own writes.
type Repository interface {
	// GetByID retrieves a post by id, ErrPostNotFound if absent
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// Search returns the matching page of posts plus the total match count.
	// The filter embeds the caller-exclusion rule, so callerID is required.
	Search(ctx context.Context, callerID uuid.UUID, criteria SearchCriteria, page paging.Request) ([]*Post, int64, error)

	// Create inserts a new post row
	Create(ctx context.Context, post *Post) error

	// Update rewrites the mutable columns of an existing post
	Update(ctx context.Context, post *Post) error

	// Delete hard-deletes a post by id
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementReactionsCount atomically adds delta to reactions_count.
	// When setMyReaction is non-nil the my_reaction flag is set in the
	// same statement, so flag and counter can never diverge mid-flight.
	// The counter is clamped at zero by the statement itself.
	IncrementReactionsCount(ctx context.Context, id uuid.UUID, delta int, setMyReaction *bool) error

	// IncrementCommentsCount atomically adds delta to comments_count
	IncrementCommentsCount(ctx context.Context, id uuid.UUID, delta int) error
}
