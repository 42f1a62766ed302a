package reactions

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for reactions.
// Every mutation runs inside one all-or-nothing store transaction
// spanning the existence check, the row write, and the counter update;
// the notification publish happens after commit.
type Service interface {
	// AddToPost records the caller's reaction to a post. A second
	// reaction from the same caller fails with ErrReactionAlreadyExists.
	AddToPost(ctx context.Context, callerID, postID uuid.UUID, req AddReactionRequest) (*Summary, error)

	// RemoveFromPost removes the caller's post-level reaction, refusing
	// with ErrNoReactionsToRemove when the counter is already zero
	RemoveFromPost(ctx context.Context, callerID, postID uuid.UUID) error

	// AddToComment records the caller's reaction to a comment under the
	// post. A duplicate is a silent no-op, unlike the post path.
	AddToComment(ctx context.Context, callerID, postID, commentID uuid.UUID) error

	// RemoveFromComment removes the caller's comment-level reaction,
	// refusing with ErrNoLikesToRemove when the counter is already zero
	RemoveFromComment(ctx context.Context, callerID, postID, commentID uuid.UUID) error
}

// Repository defines the data access interface for reactions.
//
// The application-level existence checks are only a fast path: the
// store carries a uniqueness constraint on the (post, author,
// comment-or-null) key, and Create converts a constraint violation
// into ErrReactionAlreadyExists so concurrent duplicates collapse into
// the same conflict.
type Repository interface {
	// Create inserts a new reaction row
	Create(ctx context.Context, reaction *Reaction) error

	// ExistsForPost reports whether the author already has a post-level
	// reaction (comment id null) on the post
	ExistsForPost(ctx context.Context, postID, authorID uuid.UUID) (bool, error)

	// ExistsForComment reports whether the author already has a reaction
	// on the comment
	ExistsForComment(ctx context.Context, commentID, authorID uuid.UUID) (bool, error)

	// DeleteForPost deletes the author's post-level reaction row.
	// Deleting an absent row is a no-op.
	DeleteForPost(ctx context.Context, postID, authorID uuid.UUID) error

	// DeleteForComment deletes the author's reaction row on the comment.
	// Deleting an absent row is a no-op.
	DeleteForComment(ctx context.Context, commentID, authorID uuid.UUID) error

	// CountByTypeForPost counts post-level reactions of one reaction type
	CountByTypeForPost(ctx context.Context, postID uuid.UUID, reactionType string) (int, error)

	// CountByTypeForComment counts reactions of one reaction type on a comment
	CountByTypeForComment(ctx context.Context, commentID uuid.UUID, reactionType string) (int, error)
}

// TxRunner runs a function inside one all-or-nothing store transaction.
// The transaction travels in the context, so repository methods called
// from fn join it transparently.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
