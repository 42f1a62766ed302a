package comments

import (
	"errors"
	"log"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/comments"
	"Murmur/internal/core/posts"
)

// handleServiceError converts comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comments.ErrIDMismatch):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
	case comments.IsNotFound(err), posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, err.Error())
	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
