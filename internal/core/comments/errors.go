package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrParentCommentNotFound indicates the referenced parent comment doesn't exist
	ErrParentCommentNotFound = errors.New("parent comment not found")

	// ErrCommentPostMismatch indicates the comment doesn't belong to the addressed post
	ErrCommentPostMismatch = errors.New("comment does not belong to this post")

	// ErrIDMismatch indicates the path id and the body id disagree
	ErrIDMismatch = errors.New("comment id in path does not match id in body")

	// ErrTextRequired indicates the comment text is missing or blank
	ErrTextRequired = errors.New("comment text is required")

	// ErrImagePathTooLong indicates the image path exceeds 512 characters
	ErrImagePathTooLong = errors.New("image path exceeds maximum length")
)

// IsNotFound checks if an error is a "not found" error.
// A post/comment ownership mismatch surfaces as not-found as well.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrParentCommentNotFound) ||
		errors.Is(err, ErrCommentPostMismatch)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTextRequired) ||
		errors.Is(err, ErrImagePathTooLong)
}
