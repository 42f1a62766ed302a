package posts

import "errors"

var (
	// ErrPostNotFound indicates the requested post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrTitleRequired indicates the post title is missing or blank
	ErrTitleRequired = errors.New("post title is required")

	// ErrTextRequired indicates the post body text is missing or blank
	ErrTextRequired = errors.New("post text is required")

	// ErrTooManyTags indicates the post carries more than MaxTags tags
	ErrTooManyTags = errors.New("post exceeds maximum number of tags")

	// ErrInvalidDateRange indicates a publish-date filter bound could not
	// be parsed as epoch milliseconds
	ErrInvalidDateRange = errors.New("invalid publish date filter")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrTextRequired) ||
		errors.Is(err, ErrTooManyTags) ||
		errors.Is(err, ErrInvalidDateRange)
}
