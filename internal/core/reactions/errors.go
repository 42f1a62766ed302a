package reactions

import "errors"

var (
	// ErrReactionAlreadyExists indicates the author already reacted to this post
	ErrReactionAlreadyExists = errors.New("like already exists")

	// ErrNoReactionsToRemove indicates the post's reaction counter is already zero
	ErrNoReactionsToRemove = errors.New("cannot remove reaction, count already zero")

	// ErrNoLikesToRemove indicates the comment's like counter is already zero
	ErrNoLikesToRemove = errors.New("cannot remove like, count already zero")

	// ErrInvalidReaction indicates the reaction input is missing or malformed
	ErrInvalidReaction = errors.New("invalid reaction input")
)

// IsConflict checks if an error is a conflict/illegal-state error
func IsConflict(err error) bool {
	return errors.Is(err, ErrReactionAlreadyExists) ||
		errors.Is(err, ErrNoReactionsToRemove) ||
		errors.Is(err, ErrNoLikesToRemove)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidReaction)
}
