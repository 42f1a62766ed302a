package comments

import (
	"context"

	"github.com/google/uuid"

	"Murmur/internal/core/paging"
)

// Service defines the business logic interface for comments
type Service interface {
	// GetByPostID returns the top-level comments of a post, filtered by
	// the caller-supplied criteria
	GetByPostID(ctx context.Context, postID uuid.UUID, criteria SearchCriteria, page paging.Request) (paging.Page[*Comment], error)

	// GetSubcomments returns the paged replies to one comment, scoped to
	// the owning post. Both the post and the parent comment must exist.
	GetSubcomments(ctx context.Context, postID, parentCommentID uuid.UUID, page paging.Request) (paging.Page[*Comment], error)

	// Create persists a new comment authored by the caller, atomically
	// bumping the post's comment counter, then publishes a new-comment
	// notification
	Create(ctx context.Context, callerID, postID uuid.UUID, req CreateCommentRequest) (*Comment, error)

	// Update rewrites an existing comment. The body id must match
	// commentID and the comment must belong to the addressed post.
	Update(ctx context.Context, postID, commentID uuid.UUID, req UpdateCommentRequest) (*Comment, error)

	// Delete soft-deletes. The current behavior marks every comment of
	// the post as deleted, not only the addressed one; see DESIGN.md.
	Delete(ctx context.Context, postID, commentID uuid.UUID) error
}

// Repository defines the data access interface for comments
type Repository interface {
	// GetByID retrieves a comment by id, ErrCommentNotFound if absent
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// Search returns the matching page of comments plus the total match count
	Search(ctx context.Context, criteria SearchCriteria, page paging.Request) ([]*Comment, int64, error)

	// Create inserts a new comment row
	Create(ctx context.Context, comment *Comment) error

	// Update rewrites the mutable columns of an existing comment
	Update(ctx context.Context, comment *Comment) error

	// MarkAllDeletedByPost flips is_deleted on every comment of the post
	// in one statement
	MarkAllDeletedByPost(ctx context.Context, postID uuid.UUID) error

	// IncrementLikeAmount atomically adds delta to like_amount. When
	// setMyLike is non-nil the my_like flag is set in the same statement.
	// The counter is clamped at zero by the statement itself.
	IncrementLikeAmount(ctx context.Context, id uuid.UUID, delta int, setMyLike *bool) error
}

// TxRunner runs a function inside one all-or-nothing store transaction.
// The transaction travels in the context, so repository methods called
// from fn join it transparently.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
